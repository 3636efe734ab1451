package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary (tarjetas de estadísticas).
type DashboardSummaryDTO struct {
	PropertiesCount         int             `json:"properties_count"`
	TenantsCount            int             `json:"tenants_count"`
	DocumentsCount          int             `json:"documents_count"`
	MaintenancePendingCount int             `json:"maintenance_pending_count"`
	TotalRent               decimal.Decimal `json:"total_rent"` // suma de rent_amount de los imóveis
	LateCount               int             `json:"late_count"`
	PaidCount               int             `json:"paid_count"`
	UpcomingInboxCount      int             `json:"upcoming_inbox_count"` // eventos a 0..5 días

	// Próximos 5 pagos ordenados por fecha
	NextPayments []NextPaymentDTO `json:"next_payments"`
}

// NextPaymentDTO próximo vencimiento de un imóvel para el widget del dashboard.
type NextPaymentDTO struct {
	PropertyID string          `json:"property_id"`
	Label      string          `json:"label"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	PaymentDay int             `json:"payment_day"`
	DueDate    time.Time       `json:"due_date"`
	DaysLeft   int             `json:"days_left"`
	Status     string          `json:"status"`
}
