package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/rentcare/rentcare-api/internal/application/dto"
)

// DashboardSummarizer caso de uso del dashboard (analytics.DashboardUseCase).
type DashboardSummarizer interface {
	GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error)
}

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc DashboardSummarizer
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardSummarizer) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las tarjetas de estadísticas del propietario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (contadores, renta total, atrasos, manutenção por resolver,
// próximos 5 pagos). Los eventos se calculan en el servidor con la fecha actual.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	summary, err := h.uc.GetSummary(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
