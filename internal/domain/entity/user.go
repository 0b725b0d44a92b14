package entity

import "time"

// Estados de User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User dueño de los datos financieros.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Currency     string // moneda preferida para mostrar montos
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
