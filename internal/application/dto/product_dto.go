package dto

import (
	"time"

	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU         string        `json:"sku" validate:"max=100"`
	Name        string        `json:"name" validate:"required,min=1,max=200"`
	Description string        `json:"description"`
	Price       money.Lenient `json:"price"`
	Stock       int64         `json:"stock"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string        `json:"description"`
	SKU         *string        `json:"sku"`
	Price       *money.Lenient `json:"price"`
	Stock       *int64         `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Stock        int64           `json:"stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
