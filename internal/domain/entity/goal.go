package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal meta de ahorro.
type Goal struct {
	ID        string
	UserID    string
	Name      string
	Target    decimal.Decimal
	Saved     decimal.Decimal
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
