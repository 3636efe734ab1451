package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rentcare/rentcare-api/internal/application/dto"
	"github.com/rentcare/rentcare-api/internal/domain"
)

// TriggerRunner disparador de resúmenes (notification.TriggerUseCase).
type TriggerRunner interface {
	Run(ctx context.Context) (*dto.TriggerResponse, error)
}

// NotificationHandler expone el disparador para un cron externo.
type NotificationHandler struct {
	uc       TriggerRunner
	presence func() map[string]bool
}

// NewNotificationHandler construye el handler. presence describe la configuración en modo debug.
func NewNotificationHandler(uc TriggerRunner, presence func() map[string]bool) *NotificationHandler {
	return &NotificationHandler{uc: uc, presence: presence}
}

// Trigger ejecuta una pasada completa y devuelve el resultado por propietario.
// GET /api/notifications/trigger[?debug=1]
//
// 200 {ok:true, results:{<user_id>:{sent,count,reason?,message?}}}
// 500 {ok:false, error} si falta configuración; con debug=1 incluye details.
func (h *NotificationHandler) Trigger(c *fiber.Ctx) error {
	debug := c.Query("debug") == "1"

	out, err := h.uc.Run(c.Context())
	if err != nil {
		resp := dto.TriggerErrorResponse{OK: false, Error: err.Error()}
		if debug && h.presence != nil && errors.Is(err, domain.ErrNotConfigured) {
			resp.Details = h.presence()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
	return c.JSON(out)
}
