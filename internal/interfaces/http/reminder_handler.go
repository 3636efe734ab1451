package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/rentcare/rentcare-api/internal/application/dto"
)

// RemindersLister caso de uso de calendario (calendar.UseCase).
type RemindersLister interface {
	List(ctx context.Context, userID string) (*dto.RemindersResponse, error)
}

// ReminderHandler maneja el calendario de eventos del propietario.
type ReminderHandler struct {
	uc RemindersLister
}

// NewReminderHandler construye el handler.
func NewReminderHandler(uc RemindersLister) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// List godoc
// @Summary      Eventos de recordatorio (pagos y fin de contrato)
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RemindersResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reminders [get]
func (h *ReminderHandler) List(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
