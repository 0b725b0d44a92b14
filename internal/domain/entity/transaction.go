package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction ingreso o gasto registrado por el usuario.
type Transaction struct {
	ID          string
	UserID      string
	Type        string
	Category    string
	Amount      decimal.Decimal // siempre positivo; Type define el signo
	Currency    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
