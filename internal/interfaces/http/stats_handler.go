package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-api/internal/application/analytics"
)

// StatsHandler expone los agregados globales del dashboard.
type StatsHandler struct {
	uc *analytics.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *analytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get GET /stats (público, agregados globales)
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	snapshot, err := h.uc.GetSnapshot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}
