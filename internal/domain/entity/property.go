package entity

import "github.com/shopspring/decimal"

// Estados de cobro de un imóvel en el mes en curso.
const (
	PropertyStatusPaid    = "paid"
	PropertyStatusLate    = "late"
	PropertyStatusPending = "pending"
)

// Property representa un imóvel que genera renta para un propietario.
// PaymentDay es el día del mes (1–31) en que vence la renta; 0 si no está definido.
type Property struct {
	ID         string
	UserID     string
	Address    string
	Title      string
	PaymentDay int
	RentAmount decimal.Decimal
	Status     string
}
