package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandPrediction predicción de demanda generada por los jobs ML del backend.
type DemandPrediction struct {
	ID              int64           `json:"id"`
	Product         int64           `json:"product"`
	ProductName     string          `json:"product_name,omitempty"`
	PredictedDate   string          `json:"predicted_date"` // YYYY-MM-DD
	PredictedDemand int             `json:"predicted_demand"`
	ConfidenceLevel decimal.Decimal `json:"confidence_level"` // 0-100%
	ModelVersion    string          `json:"model_version"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PurchaseOrderStatus estados del ciclo de vida de una orden de compra.
type PurchaseOrderStatus string

const (
	POStatusDraft     PurchaseOrderStatus = "draft"
	POStatusPending   PurchaseOrderStatus = "pending"
	POStatusApproved  PurchaseOrderStatus = "approved"
	POStatusOrdered   PurchaseOrderStatus = "ordered"
	POStatusReceived  PurchaseOrderStatus = "received"
	POStatusCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrder orden de compra (posiblemente generada automáticamente
// a partir de las predicciones de stockout).
type PurchaseOrder struct {
	ID                   int64               `json:"id"`
	PONumber             string              `json:"po_number"`
	Supplier             int64               `json:"supplier"`
	SupplierName         string              `json:"supplier_name,omitempty"`
	Status               PurchaseOrderStatus `json:"status"`
	OrderDate            time.Time           `json:"order_date"`
	ExpectedDeliveryDate string              `json:"expected_delivery_date"`
	ActualDeliveryDate   string              `json:"actual_delivery_date,omitempty"`
	TotalAmount          decimal.Decimal     `json:"total_amount"`
	Notes                string              `json:"notes,omitempty"`
	IsAutomated          bool                `json:"is_automated"`
	Items                []PurchaseOrderItem `json:"items,omitempty"`
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ID         int64           `json:"id"`
	Product    int64           `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// StockoutPrediction predicción de quiebre de stock.
type StockoutPrediction struct {
	ID                    int64           `json:"id"`
	Product               int64           `json:"product"`
	ProductName           string          `json:"product_name,omitempty"`
	PredictedStockoutDate string          `json:"predicted_stockout_date"`
	CurrentStockLevel     int             `json:"current_stock_level"`
	DailyConsumptionRate  decimal.Decimal `json:"daily_consumption_rate"`
	ConfidenceLevel       decimal.Decimal `json:"confidence_level"`
	IsCritical            bool            `json:"is_critical"`
	CreatedAt             time.Time       `json:"created_at"`
}

// SeasonalTrend factor estacional mensual por producto.
type SeasonalTrend struct {
	ID              int64           `json:"id"`
	Product         int64           `json:"product"`
	ProductName     string          `json:"product_name,omitempty"`
	Month           int             `json:"month"` // 1-12
	AverageDemand   decimal.Decimal `json:"average_demand"`
	TrendFactor     decimal.Decimal `json:"trend_factor"`
	ConfidenceLevel decimal.Decimal `json:"confidence_level"`
	LastUpdated     time.Time       `json:"last_updated"`
}
