package dto

// NotificationSettingsResponse preferencias de aviso de un propietario.
type NotificationSettingsResponse struct {
	EmailEnabled bool   `json:"email_enabled"`
	Notify5Days  bool   `json:"notify_5days"`
	Notify1Day   bool   `json:"notify_1day"`
	Email        string `json:"email"`
	SendTo       string `json:"send_to"` // destino efectivo: email alternativo o el de la cuenta
}

// UpdateNotificationSettingsRequest actualización parcial: solo se aplican los campos presentes.
type UpdateNotificationSettingsRequest struct {
	EmailEnabled *bool   `json:"email_enabled"`
	Notify5Days  *bool   `json:"notify_5days"`
	Notify1Day   *bool   `json:"notify_1day"`
	Email        *string `json:"email"`
}
