package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

// GoalUseCase metas de ahorro.
type GoalUseCase struct {
	repo      repository.GoalRepository
	formatter *money.Formatter
}

// NewGoalUseCase construye el caso de uso.
func NewGoalUseCase(repo repository.GoalRepository, formatter *money.Formatter) *GoalUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &GoalUseCase{repo: repo, formatter: formatter}
}

// Create crea una meta con objetivo positivo.
func (uc *GoalUseCase) Create(ctx context.Context, userID string, in dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Target.IsPositive() || in.Saved.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var deadline *time.Time
	if strings.TrimSpace(in.Deadline) != "" {
		d, err := parseDate(in.Deadline, time.Time{})
		if err != nil {
			return nil, err
		}
		deadline = &d
	}
	now := time.Now()
	g := &entity.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Target:    in.Target.Decimal,
		Saved:     in.Saved.Decimal,
		Deadline:  deadline,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	res := uc.ToResponse(g)
	return &res, nil
}

// List metas del usuario.
func (uc *GoalUseCase) List(ctx context.Context, userID string) ([]dto.GoalResponse, error) {
	goals, err := uc.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, uc.ToResponse(g))
	}
	return out, nil
}

// Contribute suma un aporte positivo al ahorro de la meta. Puede superar el objetivo;
// el avance se muestra recortado a 100%.
func (uc *GoalUseCase) Contribute(ctx context.Context, userID, goalID string, in dto.ContributeGoalRequest) (*dto.GoalResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	g, err := uc.repo.GetByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("goal: obtener meta: %w", err)
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if g.UserID != userID {
		return nil, domain.ErrForbidden
	}
	g.Saved = g.Saved.Add(in.Amount.Decimal)
	g.UpdatedAt = time.Now()
	if err := uc.repo.UpdateSaved(ctx, g.ID, g.Saved, g.UpdatedAt); err != nil {
		return nil, fmt.Errorf("goal: guardar aporte: %w", err)
	}
	res := uc.ToResponse(g)
	return &res, nil
}

// ToResponse arma la respuesta con el avance de la meta.
func (uc *GoalUseCase) ToResponse(g *entity.Goal) dto.GoalResponse {
	f := uc.formatter
	progress := money.FormatProgress(g.Saved, g.Target)
	return dto.GoalResponse{
		ID:              g.ID,
		Name:            g.Name,
		Target:          g.Target,
		Saved:           g.Saved,
		Progress:        progress,
		ProgressDisplay: money.FormatPercent(progress),
		TargetDisplay:   f.FormatCurrency(g.Target, f.Home),
		SavedDisplay:    f.FormatCurrency(g.Saved, f.Home),
		Deadline:        g.Deadline,
	}
}
