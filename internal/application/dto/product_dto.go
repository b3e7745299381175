package dto

import "github.com/jhoicas/Inventario-console/internal/domain/entity"

// ProductResponse producto listo para renderizar: además de la copia remota,
// lleva el precio ya convertido a la moneda de visualización. La conversión
// es puro display, se recalcula en cada render y no se persiste.
type ProductResponse struct {
	entity.Product
	DisplayPrice    string `json:"display_price"`
	DisplayCurrency string `json:"display_currency"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CreateProductRequest datos de alta de producto desde la consola.
type CreateProductRequest struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        int64   `json:"category"`
	Supplier        *int64  `json:"supplier"`
	Barcode         string  `json:"barcode"`
	QRCode          string  `json:"qr_code"`
	Unit            string  `json:"unit"`
	Price           string  `json:"price"`
	ReorderPoint    *int    `json:"reorder_point"`
	ReorderQuantity *int    `json:"reorder_quantity"`
}

// UpdateProductRequest datos de edición parcial; los nil no se tocan.
type UpdateProductRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Category        *int64  `json:"category"`
	Supplier        *int64  `json:"supplier"`
	Barcode         *string `json:"barcode"`
	QRCode          *string `json:"qr_code"`
	Unit            *string `json:"unit"`
	Price           *string `json:"price"`
	ReorderPoint    *int    `json:"reorder_point"`
	ReorderQuantity *int    `json:"reorder_quantity"`
	IsActive        *bool   `json:"is_active"`
}

// TransactRequest movimiento de stock a registrar contra un producto.
type TransactRequest struct {
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason"`
	Reference      string `json:"reference"`
}
