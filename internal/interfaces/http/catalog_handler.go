package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
)

// CatalogHandler maneja proveedores, categorías y ubicaciones. CRUD delgado:
// el cuerpo va casi directo al backend, con validación mínima local.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetSupplier(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in restapi.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSupplier(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in restapi.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSupplier(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteSupplier(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetCategory(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in restapi.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in restapi.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCategory(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteCategory(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetLocation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetLocation(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in restapi.LocationInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateLocation(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in restapi.LocationInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateLocation(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteLocation(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
