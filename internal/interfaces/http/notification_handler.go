package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// NotificationHandler expone preferencias de notificación, reglas de alerta
// y los historiales de envío por email y SMS.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) Settings(c *fiber.Ctx) error {
	out, err := h.uc.Settings(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) UpdateSettings(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in entity.NotificationSettings
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSettings(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) CheckAlerts(c *fiber.Ctx) error {
	out, err := h.uc.CheckAlerts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

func (h *NotificationHandler) Emails(c *fiber.Ctx) error {
	out, err := h.uc.Emails(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) RecentEmails(c *fiber.Ctx) error {
	out, err := h.uc.RecentEmails(c.UserContext(), c.QueryInt("days", 7))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) FailedEmails(c *fiber.Ctx) error {
	out, err := h.uc.FailedEmails(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) SMS(c *fiber.Ctx) error {
	out, err := h.uc.SMS(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) RecentSMS(c *fiber.Ctx) error {
	out, err := h.uc.RecentSMS(c.UserContext(), c.QueryInt("days", 7))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) FailedSMS(c *fiber.Ctx) error {
	out, err := h.uc.FailedSMS(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) AlertRules(c *fiber.Ctx) error {
	out, err := h.uc.AlertRules(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) CreateAlertRule(c *fiber.Ctx) error {
	var in entity.AlertRule
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateAlertRule(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *NotificationHandler) UpdateAlertRule(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in entity.AlertRule
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateAlertRule(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) DeleteAlertRule(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteAlertRule(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

func (h *NotificationHandler) TestEmail(c *fiber.Ctx) error {
	out, err := h.uc.TestEmail(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) TestSMS(c *fiber.Ctx) error {
	out, err := h.uc.TestSMS(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
