package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget límite de gasto para una categoría en un rango de fechas.
type Budget struct {
	ID        string
	UserID    string
	Category  string
	Limit     decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}
