package reminder

import (
	"strconv"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// Umbrales de aviso por email (coincidencia exacta de días restantes).
const (
	ThresholdFiveDays = 5
	ThresholdOneDay   = 1

	// InboxWindowDays ventana de la bandeja del dashboard: 0 <= días <= 5.
	InboxWindowDays = 5
	// UrgentWithinDays a partir de aquí un aviso se marca como urgente.
	UrgentWithinDays = 2
)

// Notifiable indica si un evento a `days` días cruza hoy alguno de los umbrales activos.
// Es coincidencia exacta, no un rango: un aviso de 5 días no se envía a los 4.
func Notifiable(days int, settings entity.NotificationSettings) bool {
	return (days == ThresholdFiveDays && settings.Notify5Days) ||
		(days == ThresholdOneDay && settings.Notify1Day)
}

// Threshold devuelve el umbral (5 o 1) que representa `days`, o 0 si no es ninguno.
func Threshold(days int) int {
	switch days {
	case ThresholdFiveDays, ThresholdOneDay:
		return days
	}
	return 0
}

// SelectNotifiable filtra los eventos que hoy cruzan un umbral según las preferencias.
// Conserva el orden de entrada.
func (e *Engine) SelectNotifiable(events []Event, settings entity.NotificationSettings) []Event {
	out := make([]Event, 0)
	for _, ev := range events {
		if Notifiable(e.DaysUntil(ev.Date), settings) {
			out = append(out, ev)
		}
	}
	return out
}

// Inbox devuelve los eventos que ocurren entre hoy y dentro de 5 días (inclusive).
func (e *Engine) Inbox(events []Event) []Event {
	out := make([]Event, 0)
	for _, ev := range events {
		if d := e.DaysUntil(ev.Date); d >= 0 && d <= InboxWindowDays {
			out = append(out, ev)
		}
	}
	return out
}

// DueLabel texto relativo de un evento: "Passado", "Hoje" o "Em N dias".
func DueLabel(days int) string {
	switch {
	case days < 0:
		return "Passado"
	case days == 0:
		return "Hoje"
	default:
		return "Em " + strconv.Itoa(days) + " dias"
	}
}

// IsUrgent indica si un evento de la bandeja debe destacarse.
func IsUrgent(days int) bool {
	return days <= UrgentWithinDays
}
