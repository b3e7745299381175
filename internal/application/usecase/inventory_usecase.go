package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// InventoryUseCase casos de uso de inventario y libro de movimientos.
type InventoryUseCase struct {
	inventory InventoryGateway
	products  *ProductUseCase
	log       *logger.Logger
}

// NewInventoryUseCase crea el caso de uso de inventario.
func NewInventoryUseCase(inventory InventoryGateway, products *ProductUseCase, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory, products: products, log: log}
}

// inventoryResponse da forma de display a un registro de inventario. Los
// campos derivados vienen del backend; aquí solo se les pone etiqueta.
func inventoryResponse(inv entity.Inventory, productView func(entity.Product) dto.ProductResponse) dto.InventoryResponse {
	resp := dto.InventoryResponse{
		ID:                  inv.ID,
		Product:             inv.Product,
		QuantityOnHand:      inv.QuantityOnHand,
		QuantityReserved:    inv.QuantityReserved,
		Location:            inv.Location,
		AvailableQuantity:   inv.AvailableQuantity,
		IsBelowReorderPoint: inv.IsBelowReorderPoint,
		StockStatus:         "ok",
	}
	if inv.IsBelowReorderPoint {
		resp.StockStatus = "low"
	}
	if inv.ProductDetail != nil && productView != nil {
		pv := productView(*inv.ProductDetail)
		resp.ProductDetail = &pv
	}
	return resp
}

// List devuelve todos los registros de inventario con el conteo de bajos.
func (uc *InventoryUseCase) List(ctx context.Context) (*dto.InventoryListResponse, error) {
	records, err := uc.inventory.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryListResponse{Items: make([]dto.InventoryResponse, 0, len(records))}
	for _, inv := range records {
		resp := inventoryResponse(inv, uc.products.toResponse)
		if resp.StockStatus == "low" {
			out.LowStockCount++
		}
		out.Items = append(out.Items, resp)
	}
	out.Total = len(out.Items)
	return out, nil
}

// Get devuelve un registro de inventario por ID.
func (uc *InventoryUseCase) Get(ctx context.Context, id int64) (*dto.InventoryResponse, error) {
	inv, err := uc.inventory.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := inventoryResponse(*inv, uc.products.toResponse)
	return &resp, nil
}

// Update edita los únicos campos editables directamente: cantidad reservada
// y ubicación. El stock en mano solo se mueve vía transacciones.
func (uc *InventoryUseCase) Update(ctx context.Context, id int64, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if req.QuantityReserved == nil && req.Location == nil {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput)
	}
	if req.QuantityReserved != nil && *req.QuantityReserved < 0 {
		return nil, fmt.Errorf("%w: quantity_reserved no puede ser negativa", domain.ErrInvalidInput)
	}
	inv, err := uc.inventory.PatchInventory(ctx, id, restapi.InventoryPatch{
		QuantityReserved: req.QuantityReserved,
		Location:         req.Location,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("inventory_id", id).Msg("inventario actualizado")
	resp := inventoryResponse(*inv, uc.products.toResponse)
	return &resp, nil
}

// Transactions devuelve el libro de movimientos completo, del más reciente
// al más antiguo según lo ordena el backend.
func (uc *InventoryUseCase) Transactions(ctx context.Context) ([]entity.StockTransaction, error) {
	return uc.inventory.ListTransactions(ctx)
}

// Transaction devuelve una entrada puntual del libro de movimientos.
func (uc *InventoryUseCase) Transaction(ctx context.Context, id int64) (*entity.StockTransaction, error) {
	return uc.inventory.GetTransaction(ctx, id)
}
