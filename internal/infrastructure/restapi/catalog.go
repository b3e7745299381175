package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// SupplierInput cuerpo de creación/actualización de proveedor.
type SupplierInput struct {
	Name        *string `json:"name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CategoryInput cuerpo de creación/actualización de categoría.
type CategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// LocationInput cuerpo de creación/actualización de ubicación.
type LocationInput struct {
	Name        *string `json:"name,omitempty"`
	Warehouse   *string `json:"warehouse,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (c *Client) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := c.get(ctx, "/suppliers/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := c.get(ctx, fmt.Sprintf("/suppliers/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, in SupplierInput) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int64, in SupplierInput) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/suppliers/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/suppliers/%d/", id), nil, nil)
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := c.get(ctx, "/categories/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	var out entity.Category
	if err := c.get(ctx, fmt.Sprintf("/categories/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := c.do(ctx, http.MethodPost, "/categories/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d/", id), nil, nil)
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

func (c *Client) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var out []entity.Location
	if err := c.get(ctx, "/locations/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLocation(ctx context.Context, id int64) (*entity.Location, error) {
	var out entity.Location
	if err := c.get(ctx, fmt.Sprintf("/locations/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLocation(ctx context.Context, in LocationInput) (*entity.Location, error) {
	var out entity.Location
	if err := c.do(ctx, http.MethodPost, "/locations/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id int64, in LocationInput) (*entity.Location, error) {
	var out entity.Location
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/locations/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/locations/%d/", id), nil, nil)
}
