package entity

// Supplier proveedor registrado en el backend.
type Supplier struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// Category categoría de productos.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Location ubicación física de bodega.
type Location struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Warehouse   string `json:"warehouse,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
