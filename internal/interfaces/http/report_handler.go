package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ReportHandler expone la generación, consulta y descarga de reportes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
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

// Generate godoc
// @Summary      Solicitar la generación de un reporte
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "Parámetros"
// @Success      202   {object}  entity.Report
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Generate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// Download godoc
// @Summary      Descargar el artefacto de un reporte
// @Tags         reports
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  int  true  "ID del reporte"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/reports/{id}/download [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	dl, err := h.uc.Download(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, dl.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", dl.Filename))
	return c.Send(dl.Data)
}

func (h *ReportHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.UserContext(), c.QueryInt("days", 7))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) Failed(c *fiber.Ctx) error {
	out, err := h.uc.Failed(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) Templates(c *fiber.Ctx) error {
	out, err := h.uc.Templates(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) CreateTemplate(c *fiber.Ctx) error {
	var in entity.ReportTemplate
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateTemplate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReportHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in entity.ReportTemplate
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateTemplate(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteTemplate(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

func (h *ReportHandler) Cleanup(c *fiber.Ctx) error {
	out, err := h.uc.Cleanup(c.UserContext(), c.QueryInt("days", 30))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
