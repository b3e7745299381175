package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dashboard"
)

// DashboardHandler sirve la instantánea del tablero que mantiene el poller.
type DashboardHandler struct {
	poller *dashboard.Poller
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(poller *dashboard.Poller) *DashboardHandler {
	return &DashboardHandler{poller: poller}
}

// Stats godoc
// @Summary      Instantánea del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /console/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.poller.Stats())
}

// Refresh godoc
// @Summary      Forzar un refresco inmediato del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /console/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	h.poller.Refresh(c.UserContext())
	return c.JSON(h.poller.Stats())
}
