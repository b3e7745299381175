package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// InventoryPatch actualización parcial de un registro de inventario.
// Solo cantidad reservada y ubicación son editables directamente; el stock
// en mano se mueve únicamente vía transacciones.
type InventoryPatch struct {
	QuantityReserved *int    `json:"quantity_reserved,omitempty"`
	Location         *string `json:"location,omitempty"`
}

// ListInventory lista los registros de inventario.
func (c *Client) ListInventory(ctx context.Context) ([]entity.Inventory, error) {
	var out []entity.Inventory
	if err := c.get(ctx, "/inventory/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInventory obtiene un registro de inventario por ID.
func (c *Client) GetInventory(ctx context.Context, id int64) (*entity.Inventory, error) {
	var out entity.Inventory
	if err := c.get(ctx, fmt.Sprintf("/inventory/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchInventory actualiza parcialmente un registro de inventario.
func (c *Client) PatchInventory(ctx context.Context, id int64, in InventoryPatch) (*entity.Inventory, error) {
	var out entity.Inventory
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/inventory/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions lista el libro de movimientos.
func (c *Client) ListTransactions(ctx context.Context) ([]entity.StockTransaction, error) {
	var out []entity.StockTransaction
	if err := c.get(ctx, "/transactions/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTransaction obtiene un movimiento por ID.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*entity.StockTransaction, error) {
	var out entity.StockTransaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
