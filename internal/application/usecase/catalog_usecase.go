package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// CatalogUseCase casos de uso de las entidades de soporte del catálogo:
// proveedores, categorías y ubicaciones. CRUD delgado contra el backend con
// la única validación local de nombre obligatorio.
type CatalogUseCase struct {
	catalog CatalogGateway
	log     *logger.Logger
}

// NewCatalogUseCase crea el caso de uso de catálogo.
func NewCatalogUseCase(catalog CatalogGateway, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, log: log}
}

func requireName(in restapi.SupplierInput) error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	return nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return uc.catalog.ListSuppliers(ctx)
}

func (uc *CatalogUseCase) GetSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	return uc.catalog.GetSupplier(ctx, id)
}

func (uc *CatalogUseCase) CreateSupplier(ctx context.Context, in restapi.SupplierInput) (*entity.Supplier, error) {
	if err := requireName(in); err != nil {
		return nil, err
	}
	s, err := uc.catalog.CreateSupplier(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", s.Name).Msg("proveedor creado")
	return s, nil
}

func (uc *CatalogUseCase) UpdateSupplier(ctx context.Context, id int64, in restapi.SupplierInput) (*entity.Supplier, error) {
	return uc.catalog.UpdateSupplier(ctx, id, in)
}

func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	return uc.catalog.DeleteSupplier(ctx, id)
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return uc.catalog.ListCategories(ctx)
}

func (uc *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	return uc.catalog.GetCategory(ctx, id)
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in restapi.CategoryInput) (*entity.Category, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	c, err := uc.catalog.CreateCategory(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", c.Name).Msg("categoría creada")
	return c, nil
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, in restapi.CategoryInput) (*entity.Category, error) {
	return uc.catalog.UpdateCategory(ctx, id, in)
}

func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.catalog.DeleteCategory(ctx, id)
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

func (uc *CatalogUseCase) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return uc.catalog.ListLocations(ctx)
}

func (uc *CatalogUseCase) GetLocation(ctx context.Context, id int64) (*entity.Location, error) {
	return uc.catalog.GetLocation(ctx, id)
}

func (uc *CatalogUseCase) CreateLocation(ctx context.Context, in restapi.LocationInput) (*entity.Location, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	l, err := uc.catalog.CreateLocation(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", l.Name).Msg("ubicación creada")
	return l, nil
}

func (uc *CatalogUseCase) UpdateLocation(ctx context.Context, id int64, in restapi.LocationInput) (*entity.Location, error) {
	return uc.catalog.UpdateLocation(ctx, id, in)
}

func (uc *CatalogUseCase) DeleteLocation(ctx context.Context, id int64) error {
	return uc.catalog.DeleteLocation(ctx, id)
}
