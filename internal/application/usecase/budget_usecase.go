package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/finance"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

// BudgetUseCase presupuestos por categoría y su consumo.
type BudgetUseCase struct {
	repo      repository.BudgetRepository
	txRepo    repository.TransactionRepository
	formatter *money.Formatter
}

// NewBudgetUseCase construye el caso de uso.
func NewBudgetUseCase(repo repository.BudgetRepository, txRepo repository.TransactionRepository, formatter *money.Formatter) *BudgetUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &BudgetUseCase{repo: repo, txRepo: txRepo, formatter: formatter}
}

// Create crea un presupuesto. El rango es inclusivo en ambos extremos.
func (uc *BudgetUseCase) Create(ctx context.Context, userID string, in dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" || !in.Limit.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	start, err := parseDate(in.StartDate, time.Time{})
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.EndDate, time.Time{})
	if err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	b := &entity.Budget{
		ID:        uuid.New().String(),
		UserID:    userID,
		Category:  category,
		Limit:     in.Limit.Decimal,
		StartDate: start,
		EndDate:   endOfDay(end),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	res := uc.ToResponse(b, decimal.Zero)
	return &res, nil
}

// List presupuestos del usuario con el gasto acumulado de cada uno.
func (uc *BudgetUseCase) List(ctx context.Context, userID string) ([]dto.BudgetResponse, error) {
	budgets, err := uc.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []dto.BudgetResponse{}, nil
	}
	from, to := budgets[0].StartDate, budgets[0].EndDate
	for _, b := range budgets[1:] {
		if b.StartDate.Before(from) {
			from = b.StartDate
		}
		if b.EndDate.After(to) {
			to = b.EndDate
		}
	}
	txs, err := uc.txRepo.ListByOwner(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return uc.Usage(budgets, txs), nil
}

// Usage calcula el consumo de cada presupuesto sobre transacciones ya cargadas.
func (uc *BudgetUseCase) Usage(budgets []*entity.Budget, txs []*entity.Transaction) []dto.BudgetResponse {
	out := make([]dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, uc.ToResponse(b, finance.BudgetSpent(b, txs)))
	}
	return out
}

// ToResponse arma la respuesta de un presupuesto con su gasto.
func (uc *BudgetUseCase) ToResponse(b *entity.Budget, spent decimal.Decimal) dto.BudgetResponse {
	f := uc.formatter
	remaining := b.Limit.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	progress := money.FormatProgress(spent, b.Limit)
	return dto.BudgetResponse{
		ID:              b.ID,
		Category:        b.Category,
		Limit:           b.Limit,
		Spent:           spent,
		Remaining:       remaining,
		Progress:        progress,
		ProgressDisplay: money.FormatPercent(progress),
		LimitDisplay:    f.FormatCurrency(b.Limit, f.Home),
		SpentDisplay:    f.FormatCurrency(spent, f.Home),
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
	}
}
