package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/rentcare/rentcare-api/internal/application/dto"
)

// SettingsService caso de uso de preferencias (settings.UseCase).
type SettingsService interface {
	Get(ctx context.Context, userID string) (*dto.NotificationSettingsResponse, error)
	Update(ctx context.Context, userID string, in dto.UpdateNotificationSettingsRequest) (*dto.NotificationSettingsResponse, error)
}

// SettingsHandler maneja las preferencias de aviso por email.
type SettingsHandler struct {
	uc SettingsService
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc SettingsService) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Preferencias de aviso (se crean por defecto si no existen)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationSettingsResponse
// @Router       /api/settings/notifications [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	if out.SendTo == "" {
		out.SendTo = GetUserEmail(c)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar preferencias (parcial)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateNotificationSettingsRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.NotificationSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/notifications [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	var in dto.UpdateNotificationSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	if out.SendTo == "" {
		out.SendTo = GetUserEmail(c)
	}
	return c.JSON(out)
}
