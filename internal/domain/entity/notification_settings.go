package entity

import "strings"

// NotificationSettings preferencias de aviso por email de un propietario.
// Email es un destino alternativo; vacío = email de la cuenta.
type NotificationSettings struct {
	UserID       string
	EmailEnabled bool
	Notify5Days  bool
	Notify1Day   bool
	Email        string
}

// DefaultNotificationSettings valores con los que se crea la fila la primera vez.
func DefaultNotificationSettings(userID string) NotificationSettings {
	return NotificationSettings{
		UserID:       userID,
		EmailEnabled: false,
		Notify5Days:  true,
		Notify1Day:   true,
	}
}

// OverrideEmail devuelve el destino alternativo sin espacios ("" si no hay).
func (s NotificationSettings) OverrideEmail() string {
	return strings.TrimSpace(s.Email)
}
