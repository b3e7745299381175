package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// AnalyticsHandler expone las vistas de analítica: predicciones de demanda,
// órdenes automatizadas, riesgos de quiebre y tendencias estacionales.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) DemandPredictions(c *fiber.Ctx) error {
	out, err := h.uc.DemandPredictions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) GenerateDemandPredictions(c *fiber.Ctx) error {
	out, err := h.uc.GenerateDemandPredictions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) ProductPredictions(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ProductPredictions(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) PurchaseOrders(c *fiber.Ctx) error {
	out, err := h.uc.PurchaseOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) PendingOrders(c *fiber.Ctx) error {
	out, err := h.uc.PendingOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) CreateOrder(c *fiber.Ctx) error {
	out, err := h.uc.CreateOrder(c.UserContext(), c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AnalyticsHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateOrder(c.UserContext(), id, c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) GenerateAutomatedOrders(c *fiber.Ctx) error {
	out, err := h.uc.GenerateAutomatedOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateOrderStatus godoc
// @Summary      Avanzar el estado de una orden de compra
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  object{status=string}  true  "Nuevo estado"
// @Success      200   {object}  entity.PurchaseOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/analytics/purchase_orders/{id}/status [put]
func (h *AnalyticsHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateOrderStatus(c.UserContext(), id, entity.PurchaseOrderStatus(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) StockoutPredictions(c *fiber.Ctx) error {
	out, err := h.uc.StockoutPredictions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) GenerateStockoutPredictions(c *fiber.Ctx) error {
	out, err := h.uc.GenerateStockoutPredictions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) CriticalRisks(c *fiber.Ctx) error {
	out, err := h.uc.CriticalRisks(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) SeasonalTrends(c *fiber.Ctx) error {
	out, err := h.uc.SeasonalTrends(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) AnalyzeSeasonalTrends(c *fiber.Ctx) error {
	out, err := h.uc.AnalyzeSeasonalTrends(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

// Forecast godoc
// @Summary      Proyección de demanda a N días
// @Tags         analytics
// @Produce      json
// @Param        days  query  int  false  "Horizonte en días"  default(30)
// @Success      200   {object}  object
// @Router       /console/analytics/forecast [get]
func (h *AnalyticsHandler) Forecast(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	out, err := h.uc.Forecast(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
