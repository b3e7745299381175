package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// NotificationUseCase casos de uso de notificaciones: preferencias, reglas
// de alerta y los historiales de envío por email y SMS.
type NotificationUseCase struct {
	notifications NotificationGateway
	log           *logger.Logger
}

// NewNotificationUseCase crea el caso de uso de notificaciones.
func NewNotificationUseCase(notifications NotificationGateway, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, log: log}
}

func (uc *NotificationUseCase) Settings(ctx context.Context) ([]entity.NotificationSettings, error) {
	return uc.notifications.ListNotificationSettings(ctx)
}

func (uc *NotificationUseCase) UpdateSettings(ctx context.Context, id int64, in entity.NotificationSettings) (*entity.NotificationSettings, error) {
	s, err := uc.notifications.UpdateNotificationSettings(ctx, id, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("settings_id", id).Msg("preferencias de notificación actualizadas")
	return s, nil
}

// CheckAlerts dispara la evaluación inmediata de alertas en el backend.
func (uc *NotificationUseCase) CheckAlerts(ctx context.Context) (json.RawMessage, error) {
	return uc.notifications.CheckAlerts(ctx)
}

func (uc *NotificationUseCase) Emails(ctx context.Context) ([]entity.EmailNotification, error) {
	return uc.notifications.ListEmailNotifications(ctx)
}

func (uc *NotificationUseCase) RecentEmails(ctx context.Context, days int) ([]entity.EmailNotification, error) {
	if days < 1 {
		days = 7
	}
	return uc.notifications.RecentEmails(ctx, days)
}

func (uc *NotificationUseCase) FailedEmails(ctx context.Context) ([]entity.EmailNotification, error) {
	return uc.notifications.FailedEmails(ctx)
}

func (uc *NotificationUseCase) SMS(ctx context.Context) ([]entity.SMSNotification, error) {
	return uc.notifications.ListSMSNotifications(ctx)
}

func (uc *NotificationUseCase) RecentSMS(ctx context.Context, days int) ([]entity.SMSNotification, error) {
	if days < 1 {
		days = 7
	}
	return uc.notifications.RecentSMS(ctx, days)
}

func (uc *NotificationUseCase) FailedSMS(ctx context.Context) ([]entity.SMSNotification, error) {
	return uc.notifications.FailedSMS(ctx)
}

func (uc *NotificationUseCase) AlertRules(ctx context.Context) ([]entity.AlertRule, error) {
	return uc.notifications.ListAlertRules(ctx)
}

// CreateAlertRule registra una regla de alerta. Nombre y tipo son
// obligatorios; las condiciones se pasan opacas al backend.
func (uc *NotificationUseCase) CreateAlertRule(ctx context.Context, in entity.AlertRule) (*entity.AlertRule, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.AlertType) == "" {
		return nil, fmt.Errorf("%w: name y alert_type son obligatorios", domain.ErrInvalidInput)
	}
	r, err := uc.notifications.CreateAlertRule(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", r.Name).Str("alert_type", r.AlertType).Msg("regla de alerta creada")
	return r, nil
}

func (uc *NotificationUseCase) UpdateAlertRule(ctx context.Context, id int64, in entity.AlertRule) (*entity.AlertRule, error) {
	return uc.notifications.UpdateAlertRule(ctx, id, in)
}

func (uc *NotificationUseCase) DeleteAlertRule(ctx context.Context, id int64) error {
	return uc.notifications.DeleteAlertRule(ctx, id)
}

func (uc *NotificationUseCase) Summary(ctx context.Context) (json.RawMessage, error) {
	return uc.notifications.NotificationSummary(ctx)
}

// TestEmail y TestSMS piden al backend un envío de prueba para verificar la
// configuración de los canales.
func (uc *NotificationUseCase) TestEmail(ctx context.Context) (*restapi.TestSendResult, error) {
	return uc.notifications.TestEmail(ctx)
}

func (uc *NotificationUseCase) TestSMS(ctx context.Context) (*restapi.TestSendResult, error) {
	return uc.notifications.TestSMS(ctx)
}
