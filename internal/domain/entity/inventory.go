package entity

import "time"

// Inventory representa el nivel de stock de un producto. Los campos derivados
// (AvailableQuantity, IsBelowReorderPoint) los calcula el backend; la consola
// solo los muestra, nunca los recalcula.
type Inventory struct {
	ID                  int64    `json:"id"`
	Product             int64    `json:"product"`
	ProductDetail       *Product `json:"product_detail,omitempty"`
	QuantityOnHand      int      `json:"quantity_on_hand"`
	QuantityReserved    int      `json:"quantity_reserved"`
	Location            string   `json:"location,omitempty"`
	AvailableQuantity   int      `json:"available_quantity"`
	IsBelowReorderPoint bool     `json:"is_below_reorder_point"`
}

// TransactionReason motivo de un movimiento de stock.
type TransactionReason string

const (
	ReasonPurchase   TransactionReason = "purchase"
	ReasonSale       TransactionReason = "sale"
	ReasonAdjustment TransactionReason = "adjustment"
	ReasonReturn     TransactionReason = "return"
	ReasonTransfer   TransactionReason = "transfer"
)

// ValidReason reporta si el motivo pertenece al enum del backend.
func ValidReason(r TransactionReason) bool {
	switch r {
	case ReasonPurchase, ReasonSale, ReasonAdjustment, ReasonReturn, ReasonTransfer:
		return true
	}
	return false
}

// StockTransaction entrada inmutable del libro de movimientos. Desde la
// consola es append-only: se crea vía transact y nunca se edita.
type StockTransaction struct {
	ID             int64             `json:"id"`
	Product        int64             `json:"product"`
	ProductSKU     string            `json:"product_sku,omitempty"`
	ProductName    string            `json:"product_name,omitempty"`
	QuantityChange int               `json:"quantity_change"` // con signo, nunca cero
	Reason         TransactionReason `json:"reason"`
	Reference      string            `json:"reference,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
