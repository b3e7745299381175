package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// AnalyticsUseCase casos de uso de analítica: predicciones de demanda,
// órdenes automatizadas, riesgos de quiebre y tendencias estacionales. El
// cómputo vive en el backend; la consola dispara los jobs y lee resultados.
type AnalyticsUseCase struct {
	analytics AnalyticsGateway
	log       *logger.Logger
}

// NewAnalyticsUseCase crea el caso de uso de analítica.
func NewAnalyticsUseCase(analytics AnalyticsGateway, log *logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{analytics: analytics, log: log}
}

func (uc *AnalyticsUseCase) DemandPredictions(ctx context.Context) ([]entity.DemandPrediction, error) {
	return uc.analytics.ListDemandPredictions(ctx)
}

func (uc *AnalyticsUseCase) GenerateDemandPredictions(ctx context.Context) (*restapi.GenerateResult, error) {
	res, err := uc.analytics.GenerateDemandPredictions(ctx)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Msg("predicciones de demanda regeneradas")
	return res, nil
}

func (uc *AnalyticsUseCase) ProductPredictions(ctx context.Context, productID int64) ([]entity.DemandPrediction, error) {
	return uc.analytics.ProductPredictions(ctx, productID)
}

func (uc *AnalyticsUseCase) PurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return uc.analytics.ListPurchaseOrders(ctx)
}

func (uc *AnalyticsUseCase) PendingOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return uc.analytics.PendingOrders(ctx)
}

// CreateOrder y UpdateOrder pasan el cuerpo opaco al backend: el esquema de
// la orden manual lo valida el dueño del dato.
func (uc *AnalyticsUseCase) CreateOrder(ctx context.Context, body json.RawMessage) (*entity.PurchaseOrder, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	return uc.analytics.CreatePurchaseOrder(ctx, body)
}

func (uc *AnalyticsUseCase) UpdateOrder(ctx context.Context, id int64, body json.RawMessage) (*entity.PurchaseOrder, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	return uc.analytics.UpdatePurchaseOrder(ctx, id, body)
}

func (uc *AnalyticsUseCase) GenerateAutomatedOrders(ctx context.Context) (*restapi.GenerateResult, error) {
	res, err := uc.analytics.GenerateAutomatedOrders(ctx)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Msg("órdenes de compra automatizadas generadas")
	return res, nil
}

// UpdateOrderStatus avanza el ciclo de vida de una orden de compra. El enum
// se valida localmente para no mandar estados inventados al backend.
func (uc *AnalyticsUseCase) UpdateOrderStatus(ctx context.Context, id int64, status entity.PurchaseOrderStatus) (*entity.PurchaseOrder, error) {
	switch status {
	case entity.POStatusDraft, entity.POStatusPending, entity.POStatusApproved,
		entity.POStatusOrdered, entity.POStatusReceived, entity.POStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: estado de orden inválido %q", domain.ErrInvalidInput, status)
	}
	return uc.analytics.UpdateOrderStatus(ctx, id, status)
}

func (uc *AnalyticsUseCase) StockoutPredictions(ctx context.Context) ([]entity.StockoutPrediction, error) {
	return uc.analytics.ListStockoutPredictions(ctx)
}

func (uc *AnalyticsUseCase) GenerateStockoutPredictions(ctx context.Context) (*restapi.GenerateResult, error) {
	return uc.analytics.GenerateStockoutPredictions(ctx)
}

func (uc *AnalyticsUseCase) CriticalRisks(ctx context.Context) ([]entity.StockoutPrediction, error) {
	return uc.analytics.CriticalRisks(ctx)
}

func (uc *AnalyticsUseCase) SeasonalTrends(ctx context.Context) ([]entity.SeasonalTrend, error) {
	return uc.analytics.ListSeasonalTrends(ctx)
}

func (uc *AnalyticsUseCase) AnalyzeSeasonalTrends(ctx context.Context) (*restapi.GenerateResult, error) {
	return uc.analytics.AnalyzeSeasonalTrends(ctx)
}

// Summary devuelve el resumen agregado de analítica tal como lo arma el
// backend; la consola lo reenvía sin interpretar.
func (uc *AnalyticsUseCase) Summary(ctx context.Context) (json.RawMessage, error) {
	return uc.analytics.AnalyticsSummary(ctx)
}

// Forecast devuelve la proyección de demanda a N días (1..365).
func (uc *AnalyticsUseCase) Forecast(ctx context.Context, days int) (json.RawMessage, error) {
	if days < 1 || days > 365 {
		return nil, fmt.Errorf("%w: days debe estar entre 1 y 365", domain.ErrInvalidInput)
	}
	return uc.analytics.DemandForecast(ctx, days)
}
