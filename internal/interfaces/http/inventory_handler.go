package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
)

// InventoryHandler maneja las vistas de inventario y el libro de movimientos.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /console/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar reserva o ubicación
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos editables"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/inventory/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Libro de movimientos de stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  entity.StockTransaction
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /console/transactions [get]
func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	out, err := h.uc.Transactions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transaction godoc
// @Summary      Detalle de un movimiento de stock
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  entity.StockTransaction
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/transactions/{id} [get]
func (h *InventoryHandler) Transaction(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Transaction(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
