package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// GenerateResult respuesta de los endpoints que disparan jobs ML en el
// backend (la consola solo los lanza; el cómputo es responsabilidad remota).
type GenerateResult struct {
	Message string `json:"message"`
	Count   int    `json:"predictions_generated,omitempty"`
}

// ── Predicciones de demanda ───────────────────────────────────────────────────

func (c *Client) ListDemandPredictions(ctx context.Context) ([]entity.DemandPrediction, error) {
	var out []entity.DemandPrediction
	if err := c.get(ctx, "/analytics/demand-predictions/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateDemandPredictions dispara la generación de predicciones de demanda.
func (c *Client) GenerateDemandPredictions(ctx context.Context) (*GenerateResult, error) {
	var out GenerateResult
	if err := c.do(ctx, http.MethodPost, "/analytics/demand-predictions/generate_predictions/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductPredictions(ctx context.Context, productID int64) ([]entity.DemandPrediction, error) {
	var out []entity.DemandPrediction
	path := fmt.Sprintf("/analytics/demand-predictions/product_predictions/?product_id=%d", productID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Órdenes de compra ─────────────────────────────────────────────────────────

func (c *Client) ListPurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	if err := c.get(ctx, "/analytics/purchase-orders/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePurchaseOrder(ctx context.Context, in json.RawMessage) (*entity.PurchaseOrder, error) {
	var out entity.PurchaseOrder
	if err := c.do(ctx, http.MethodPost, "/analytics/purchase-orders/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePurchaseOrder(ctx context.Context, id int64, in json.RawMessage) (*entity.PurchaseOrder, error) {
	var out entity.PurchaseOrder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/analytics/purchase-orders/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateAutomatedOrders pide al backend crear órdenes automáticas desde
// las predicciones de stockout.
func (c *Client) GenerateAutomatedOrders(ctx context.Context) (*GenerateResult, error) {
	var out GenerateResult
	if err := c.do(ctx, http.MethodPost, "/analytics/purchase-orders/generate_automated_orders/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PendingOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	if err := c.get(ctx, "/analytics/purchase-orders/pending_orders/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status entity.PurchaseOrderStatus) (*entity.PurchaseOrder, error) {
	var out entity.PurchaseOrder
	body := map[string]entity.PurchaseOrderStatus{"status": status}
	path := fmt.Sprintf("/analytics/purchase-orders/%d/update_status/", id)
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Predicciones de stockout ──────────────────────────────────────────────────

func (c *Client) ListStockoutPredictions(ctx context.Context) ([]entity.StockoutPrediction, error) {
	var out []entity.StockoutPrediction
	if err := c.get(ctx, "/analytics/stockout-predictions/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GenerateStockoutPredictions(ctx context.Context) (*GenerateResult, error) {
	var out GenerateResult
	if err := c.do(ctx, http.MethodPost, "/analytics/stockout-predictions/generate_predictions/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriticalRisks(ctx context.Context) ([]entity.StockoutPrediction, error) {
	var out []entity.StockoutPrediction
	if err := c.get(ctx, "/analytics/stockout-predictions/critical_risks/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Tendencias estacionales ───────────────────────────────────────────────────

func (c *Client) ListSeasonalTrends(ctx context.Context) ([]entity.SeasonalTrend, error) {
	var out []entity.SeasonalTrend
	if err := c.get(ctx, "/analytics/seasonal-trends/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AnalyzeSeasonalTrends(ctx context.Context) (*GenerateResult, error) {
	var out GenerateResult
	if err := c.do(ctx, http.MethodPost, "/analytics/seasonal-trends/analyze_trends/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Resumen y pronóstico ──────────────────────────────────────────────────────

// AnalyticsSummary resumen agregado del dashboard de analítica; la forma
// exacta la define el backend, la consola lo reenvía sin interpretar.
func (c *Client) AnalyticsSummary(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "/analytics/analytics/dashboard_summary/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DemandForecast pronóstico de demanda a days días.
func (c *Client) DemandForecast(ctx context.Context, days int) (json.RawMessage, error) {
	var out json.RawMessage
	path := fmt.Sprintf("/analytics/analytics/demand_forecast/?days=%d", days)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
