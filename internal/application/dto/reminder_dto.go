package dto

import "time"

// ReminderEventDTO evento de recordatorio con los campos derivados para la vista de calendario.
type ReminderEventDTO struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // Pagamento | FimContrato
	Date       time.Time `json:"date"`
	Title      string    `json:"title"`
	Line       string    `json:"description"`
	PropertyID string    `json:"property_id,omitempty"`
	TenantName string    `json:"tenant_name,omitempty"`
	DaysLeft   int       `json:"days_left"`
	DueLabel   string    `json:"due_label"` // Passado | Hoje | Em N dias
	Urgent     bool      `json:"urgent"`
}

// RemindersResponse respuesta de GET /api/reminders.
type RemindersResponse struct {
	Events     []ReminderEventDTO `json:"events"`
	Inbox      []ReminderEventDTO `json:"inbox"`
	InboxCount int                `json:"inbox_count"`
	TotalCount int                `json:"total_count"`
}
