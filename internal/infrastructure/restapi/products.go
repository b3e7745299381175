package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ProductInput cuerpo de creación/actualización de un producto. Los campos
// nil se omiten en PATCH (actualización parcial).
type ProductInput struct {
	SKU             *string `json:"sku,omitempty"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Category        *int64  `json:"category,omitempty"`
	Supplier        *int64  `json:"supplier,omitempty"`
	Barcode         *string `json:"barcode,omitempty"`
	QRCode          *string `json:"qr_code,omitempty"`
	Unit            *string `json:"unit,omitempty"`
	Price           *string `json:"price,omitempty"`
	ReorderPoint    *int    `json:"reorder_point,omitempty"`
	ReorderQuantity *int    `json:"reorder_quantity,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// TransactionInput cuerpo del endpoint transact: registra un movimiento de
// stock contra el libro inmutable del backend.
type TransactionInput struct {
	QuantityChange int                      `json:"quantity_change"`
	Reason         entity.TransactionReason `json:"reason"`
	Reference      string                   `json:"reference,omitempty"`
}

// ListProducts lista el catálogo completo.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/products/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct obtiene un producto por ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out entity.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct crea un producto nuevo.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/products/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct reemplaza un producto (PUT).
func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchProduct actualiza parcialmente un producto.
func (c *Client) PatchProduct(ctx context.Context, id int64, in ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/", id), nil, nil)
}

// ProductInventory obtiene el registro de inventario de un producto.
func (c *Client) ProductInventory(ctx context.Context, id int64) (*entity.Inventory, error) {
	var out entity.Inventory
	if err := c.get(ctx, fmt.Sprintf("/products/%d/inventory/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transact registra un movimiento de stock para el producto.
func (c *Client) Transact(ctx context.Context, id int64, in TransactionInput) (*entity.StockTransaction, error) {
	var out entity.StockTransaction
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/transact/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupByCode resuelve un código escaneado o tecleado a un producto.
// El backend intenta primero por barcode, luego por qr_code y por último por
// el SKU embebido en la URL del QR; un 404 llega aquí como domain.ErrNotFound.
// El código viaja tal cual lo entregó el adaptador de captura.
func (c *Client) LookupByCode(ctx context.Context, code string) (*entity.Product, error) {
	var out entity.Product
	path := "/products/lookup_by_code/?code=" + url.QueryEscape(code)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductQRCode obtiene el payload QR canónico del producto, con la imagen
// en base64 que genera el backend.
func (c *Client) ProductQRCode(ctx context.Context, id int64) (*entity.QRCodeInfo, error) {
	var out entity.QRCodeInfo
	if err := c.get(ctx, fmt.Sprintf("/products/%d/qr_code/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
