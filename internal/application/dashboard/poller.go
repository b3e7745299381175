// Package dashboard mantiene la instantánea agregada del tablero. Un poller
// en segundo plano refresca las cifras a intervalo fijo contra el backend;
// las lecturas son idempotentes y nada se persiste localmente.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain/currency"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// recentWindow ventana de "movimientos recientes" del tablero.
const recentWindow = 24 * time.Hour

// Gateway lecturas del backend que alimentan el tablero.
type Gateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListInventory(ctx context.Context) ([]entity.Inventory, error)
	ListTransactions(ctx context.Context) ([]entity.StockTransaction, error)
}

// Poller refresca la instantánea del tablero a intervalo fijo. La última
// instantánea buena queda disponible aunque un refresco falle.
type Poller struct {
	gateway  Gateway
	display  currency.Code
	interval time.Duration
	log      *logger.Logger
	now      func() time.Time

	mu    sync.RWMutex
	stats dto.DashboardStats
}

// NewPoller crea el poller del tablero. El intervalo mínimo es un segundo.
func NewPoller(gateway Gateway, display currency.Code, interval time.Duration, log *logger.Logger) *Poller {
	if interval < time.Second {
		interval = 30 * time.Second
	}
	return &Poller{
		gateway:  gateway,
		display:  display,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Run refresca de inmediato y luego a cada tick hasta que el contexto se
// cancele. Pensado para correr en una goroutine propia.
func (p *Poller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Stats devuelve la última instantánea calculada.
func (p *Poller) Stats() dto.DashboardStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}

// Refresh recalcula la instantánea una vez. Si el catálogo no responde se
// conserva la instantánea anterior; si solo falla el inventario o el libro
// de movimientos, se publica una instantánea parcial marcada como degradada.
func (p *Poller) Refresh(ctx context.Context) {
	products, err := p.gateway.ListProducts(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("refresco de tablero omitido: catálogo no disponible")
		return
	}

	stats := dto.DashboardStats{
		TotalProducts: len(products),
		RefreshedAt:   p.now(),
	}

	prices := make(map[int64]decimal.Decimal, len(products))
	for _, prod := range products {
		prices[prod.ID] = prod.Price
	}

	records, err := p.gateway.ListInventory(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("inventario no disponible, tablero parcial")
		stats.Degraded = true
	} else {
		total := decimal.Zero
		for _, inv := range records {
			if inv.IsBelowReorderPoint {
				stats.LowStockItems++
			}
			if price, ok := prices[inv.Product]; ok {
				total = total.Add(price.Mul(decimal.NewFromInt(int64(inv.QuantityOnHand))))
			}
		}
		if formatted, err := currency.Format(total, p.display); err == nil {
			stats.TotalInventoryValue = formatted
		}
	}

	txs, err := p.gateway.ListTransactions(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("movimientos no disponibles, tablero parcial")
		stats.Degraded = true
	} else {
		cutoff := p.now().Add(-recentWindow)
		for _, tx := range txs {
			if tx.CreatedAt.After(cutoff) {
				stats.RecentTransactions++
			}
		}
	}

	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()

	p.log.Debug().
		Int("total_products", stats.TotalProducts).
		Int("low_stock_items", stats.LowStockItems).
		Bool("degraded", stats.Degraded).
		Msg("tablero refrescado")
}
