package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// TestSendResult respuesta de los endpoints de envío de prueba.
type TestSendResult struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// ── Preferencias ──────────────────────────────────────────────────────────────

func (c *Client) ListNotificationSettings(ctx context.Context) ([]entity.NotificationSettings, error) {
	var out []entity.NotificationSettings
	if err := c.get(ctx, "/notifications/notification-settings/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateNotificationSettings(ctx context.Context, id int64, in entity.NotificationSettings) (*entity.NotificationSettings, error) {
	var out entity.NotificationSettings
	path := fmt.Sprintf("/notifications/notification-settings/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckAlerts pide al backend evaluar las reglas de alerta ahora.
func (c *Client) CheckAlerts(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/notifications/notification-settings/check_alerts/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Historial de correos ──────────────────────────────────────────────────────

func (c *Client) ListEmailNotifications(ctx context.Context) ([]entity.EmailNotification, error) {
	var out []entity.EmailNotification
	if err := c.get(ctx, "/notifications/email-notifications/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecentEmails(ctx context.Context, days int) ([]entity.EmailNotification, error) {
	var out []entity.EmailNotification
	path := fmt.Sprintf("/notifications/email-notifications/recent/?days=%d", days)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FailedEmails(ctx context.Context) ([]entity.EmailNotification, error) {
	var out []entity.EmailNotification
	if err := c.get(ctx, "/notifications/email-notifications/failed/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Historial de SMS ──────────────────────────────────────────────────────────

func (c *Client) ListSMSNotifications(ctx context.Context) ([]entity.SMSNotification, error) {
	var out []entity.SMSNotification
	if err := c.get(ctx, "/notifications/sms-notifications/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecentSMS(ctx context.Context, days int) ([]entity.SMSNotification, error) {
	var out []entity.SMSNotification
	path := fmt.Sprintf("/notifications/sms-notifications/recent/?days=%d", days)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FailedSMS(ctx context.Context) ([]entity.SMSNotification, error) {
	var out []entity.SMSNotification
	if err := c.get(ctx, "/notifications/sms-notifications/failed/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Reglas de alerta ──────────────────────────────────────────────────────────

func (c *Client) ListAlertRules(ctx context.Context) ([]entity.AlertRule, error) {
	var out []entity.AlertRule
	if err := c.get(ctx, "/notifications/alert-rules/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAlertRule(ctx context.Context, in entity.AlertRule) (*entity.AlertRule, error) {
	var out entity.AlertRule
	if err := c.do(ctx, http.MethodPost, "/notifications/alert-rules/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAlertRule(ctx context.Context, id int64, in entity.AlertRule) (*entity.AlertRule, error) {
	var out entity.AlertRule
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/alert-rules/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAlertRule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/alert-rules/%d/", id), nil, nil)
}

// ── Gestión ───────────────────────────────────────────────────────────────────

// NotificationSummary resumen agregado de notificaciones.
func (c *Client) NotificationSummary(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "/notifications/notifications/summary/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TestEmail dispara un correo de prueba desde el backend.
func (c *Client) TestEmail(ctx context.Context) (*TestSendResult, error) {
	var out TestSendResult
	if err := c.do(ctx, http.MethodPost, "/notifications/notifications/test_email/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestSMS dispara un SMS de prueba desde el backend.
func (c *Client) TestSMS(ctx context.Context) (*TestSendResult, error) {
	var out TestSendResult
	if err := c.do(ctx, http.MethodPost, "/notifications/notifications/test_sms/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
