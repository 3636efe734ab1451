package entity

import "github.com/shopspring/decimal"

// Tenant representa un inquilino. PropertyID, RentAmount y PaymentDay son opcionales;
// sin PaymentDay no hay aviso de pago (no se usa el día del imóvel).
type Tenant struct {
	ID         string
	UserID     string
	Name       string
	PropertyID *string
	RentAmount *decimal.Decimal
	PaymentDay *int
}
