package entity

import (
	"encoding/json"
	"time"
)

// NotificationSettings preferencias de alertas del usuario (propiedad del backend).
type NotificationSettings struct {
	ID                     int64  `json:"id"`
	EmailNotifications     bool   `json:"email_notifications"`
	SMSNotifications       bool   `json:"sms_notifications"`
	CriticalStockoutAlerts bool   `json:"critical_stockout_alerts"`
	ReorderPointAlerts     bool   `json:"reorder_point_alerts"`
	PurchaseOrderUpdates   bool   `json:"purchase_order_updates"`
	DailySummary           bool   `json:"daily_summary"`
	PhoneNumber            string `json:"phone_number,omitempty"`
}

// EmailNotification registro de un correo enviado (o fallido) por el backend.
type EmailNotification struct {
	ID               int64      `json:"id"`
	NotificationType string     `json:"notification_type"`
	Subject          string     `json:"subject"`
	Message          string     `json:"message"`
	Status           string     `json:"status"` // pending, sent, failed
	SentAt           *time.Time `json:"sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	RelatedProduct   *int64     `json:"related_product,omitempty"`
}

// SMSNotification registro de un SMS enviado por el backend.
type SMSNotification struct {
	ID               int64      `json:"id"`
	NotificationType string     `json:"notification_type"`
	Message          string     `json:"message"`
	PhoneNumber      string     `json:"phone_number"`
	Status           string     `json:"status"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	RelatedProduct   *int64     `json:"related_product,omitempty"`
}

// AlertRule regla de alerta configurable; Conditions es JSON opaco del backend.
type AlertRule struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	AlertType   string          `json:"alert_type"`
	Conditions  json.RawMessage `json:"conditions,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
