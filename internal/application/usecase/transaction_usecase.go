package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

// TransactionUseCase registro y consulta de ingresos y gastos.
type TransactionUseCase struct {
	repo      repository.TransactionRepository
	formatter *money.Formatter
	now       func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, formatter *money.Formatter) *TransactionUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &TransactionUseCase{repo: repo, formatter: formatter, now: time.Now}
}

// Create registra una transacción. El monto debe ser positivo; el tipo da el signo.
func (uc *TransactionUseCase) Create(ctx context.Context, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	typ := strings.ToLower(strings.TrimSpace(in.Type))
	if typ != entity.TransactionIncome && typ != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	date, err := parseDate(in.Date, now)
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = uc.formatter.Home
	}
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        typ,
		Category:    strings.TrimSpace(in.Category),
		Amount:      in.Amount.Decimal,
		Currency:    currency,
		Description: in.Description,
		Date:        date,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	res := uc.toResponse(tx)
	return &res, nil
}

// List transacciones en [from, to], más recientes primero.
func (uc *TransactionUseCase) List(ctx context.Context, userID string, from, to time.Time) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, uc.toResponse(tx))
	}
	return out, nil
}

func (uc *TransactionUseCase) toResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Category:      tx.Category,
		Amount:        tx.Amount,
		AmountDisplay: uc.formatter.FormatCurrency(tx.Amount, tx.Currency),
		Currency:      tx.Currency,
		Description:   tx.Description,
		Date:          tx.Date,
	}
}
