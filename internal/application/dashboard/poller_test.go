package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/dashboard"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/currency"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

type fakeGateway struct {
	products     []entity.Product
	productsErr  error
	inventory    []entity.Inventory
	inventoryErr error
	txs          []entity.StockTransaction
	txsErr       error
}

func (f *fakeGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeGateway) ListInventory(ctx context.Context) ([]entity.Inventory, error) {
	return f.inventory, f.inventoryErr
}

func (f *fakeGateway) ListTransactions(ctx context.Context) ([]entity.StockTransaction, error) {
	return f.txs, f.txsErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestRefresh_InstantaneaCompleta(t *testing.T) {
	now := time.Now()
	gw := &fakeGateway{
		products: []entity.Product{
			{ID: 1, SKU: "A", Price: decimal.RequireFromString("100")},
			{ID: 2, SKU: "B", Price: decimal.RequireFromString("50")},
		},
		inventory: []entity.Inventory{
			{ID: 1, Product: 1, QuantityOnHand: 2, IsBelowReorderPoint: true},
			{ID: 2, Product: 2, QuantityOnHand: 4},
		},
		txs: []entity.StockTransaction{
			{ID: 1, CreatedAt: now.Add(-time.Hour)},
			{ID: 2, CreatedAt: now.Add(-48 * time.Hour)}, // fuera de la ventana
		},
	}
	p := dashboard.NewPoller(gw, currency.INR, 30*time.Second, testLogger())
	p.Refresh(context.Background())

	stats := p.Stats()
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockItems)
	// 2*100 + 4*50 = 400 INR
	assert.Equal(t, "₹400.00", stats.TotalInventoryValue)
	assert.Equal(t, 1, stats.RecentTransactions)
	assert.False(t, stats.Degraded)
	assert.False(t, stats.RefreshedAt.IsZero())
}

func TestRefresh_InventarioCaidoDegradaParcial(t *testing.T) {
	gw := &fakeGateway{
		products:     []entity.Product{{ID: 1, SKU: "A"}},
		inventoryErr: domain.ErrBackendUnavailable,
		txsErr:       domain.ErrBackendUnavailable,
	}
	p := dashboard.NewPoller(gw, currency.INR, 30*time.Second, testLogger())
	p.Refresh(context.Background())

	stats := p.Stats()
	assert.Equal(t, 1, stats.TotalProducts)
	assert.True(t, stats.Degraded)
	assert.Empty(t, stats.TotalInventoryValue)
}

func TestRefresh_CatalogoCaidoConservaAnterior(t *testing.T) {
	gw := &fakeGateway{products: []entity.Product{{ID: 1, SKU: "A"}}}
	p := dashboard.NewPoller(gw, currency.INR, 30*time.Second, testLogger())
	p.Refresh(context.Background())
	require.Equal(t, 1, p.Stats().TotalProducts)

	gw.productsErr = domain.ErrBackendUnavailable
	p.Refresh(context.Background())

	// La última instantánea buena sigue disponible.
	assert.Equal(t, 1, p.Stats().TotalProducts)
}

func TestRun_SeDetieneConElContexto(t *testing.T) {
	gw := &fakeGateway{}
	p := dashboard.NewPoller(gw, currency.INR, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("el poller no se detuvo al cancelar el contexto")
	}
}
