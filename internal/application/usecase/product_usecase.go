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

// ProductUseCase casos de uso CRUD para productos del punto de venta.
// El stock también cambia por conciliación al colocar o cancelar órdenes.
type ProductUseCase struct {
	repo      repository.ProductRepository
	formatter *money.Formatter
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, formatter *money.Formatter) *ProductUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &ProductUseCase{repo: repo, formatter: formatter}
}

// Create crea un nuevo producto. Precio y stock negativos se rechazan.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		UserID:      userID,
		SKU:         strings.TrimSpace(in.SKU),
		Name:        name,
		Description: in.Description,
		Price:       in.Price.Decimal,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto del usuario.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Update actualiza los campos presentes en la entrada.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SKU != nil {
		product.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Decimal
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// List lista productos del usuario con paginación.
func (uc *ProductUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.ProductListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.repo.ListByOwner(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *ProductUseCase) owned(ctx context.Context, userID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		PriceDisplay: uc.formatter.FormatCurrency(p.Price, uc.formatter.Home),
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
