package dto

// InventoryResponse registro de inventario listo para renderizar. Los campos
// derivados vienen calculados del backend; la consola solo les da forma.
type InventoryResponse struct {
	ID                  int64            `json:"id"`
	Product             int64            `json:"product"`
	ProductDetail       *ProductResponse `json:"product_detail,omitempty"`
	QuantityOnHand      int              `json:"quantity_on_hand"`
	QuantityReserved    int              `json:"quantity_reserved"`
	Location            string           `json:"location,omitempty"`
	AvailableQuantity   int              `json:"available_quantity"`
	IsBelowReorderPoint bool             `json:"is_below_reorder_point"`
	StockStatus         string           `json:"stock_status"` // "low" | "ok"
}

// InventoryListResponse listado de inventario con el conteo de bajos.
type InventoryListResponse struct {
	Items         []InventoryResponse `json:"items"`
	Total         int                 `json:"total"`
	LowStockCount int                 `json:"low_stock_count"`
}

// UpdateInventoryRequest edición directa permitida: solo cantidad reservada
// y ubicación; el stock en mano se mueve únicamente vía transacciones.
type UpdateInventoryRequest struct {
	QuantityReserved *int    `json:"quantity_reserved"`
	Location         *string `json:"location"`
}
