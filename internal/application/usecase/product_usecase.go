package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/currency"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// ProductUseCase casos de uso del catálogo de productos. No persiste nada:
// cada operación es una llamada al backend más la transformación de display
// (precio formateado en la moneda de visualización).
type ProductUseCase struct {
	products ProductGateway
	labels   LabelGenerator
	display  currency.Code
	log      *logger.Logger
}

// NewProductUseCase crea el caso de uso de productos.
func NewProductUseCase(products ProductGateway, labels LabelGenerator, display currency.Code, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		products: products,
		labels:   labels,
		display:  display,
		log:      log,
	}
}

// toResponse arma la vista de un producto, con el precio ya convertido.
// Si la moneda configurada fuese inválida cae a INR para no romper el render.
func (uc *ProductUseCase) toResponse(p entity.Product) dto.ProductResponse {
	display := uc.display
	formatted, err := currency.Format(p.Price, display)
	if err != nil {
		formatted, _ = currency.Format(p.Price, currency.INR)
		display = currency.INR
	}
	return dto.ProductResponse{
		Product:         p,
		DisplayPrice:    formatted,
		DisplayCurrency: string(display),
	}
}

// View arma la vista de display de un producto ya cargado. La usan las
// pantallas que obtienen el producto por otra vía (escáner, inventario).
func (uc *ProductUseCase) View(p entity.Product) dto.ProductResponse {
	return uc.toResponse(p)
}

// List devuelve el catálogo completo con precios de display.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, uc.toResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Get devuelve el detalle de un producto.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(*p)
	return &resp, nil
}

// Create da de alta un producto. SKU y nombre son obligatorios; el resto de
// validaciones (unicidad de SKU, categoría existente) las hace el backend.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(req.SKU)
	name := strings.TrimSpace(req.Name)
	if sku == "" || name == "" {
		return nil, fmt.Errorf("%w: sku y name son obligatorios", domain.ErrInvalidInput)
	}

	in := restapi.ProductInput{
		SKU:      &sku,
		Name:     &name,
		Category: &req.Category,
		Supplier: req.Supplier,
	}
	if req.Description != "" {
		in.Description = &req.Description
	}
	if req.Barcode != "" {
		in.Barcode = &req.Barcode
	}
	if req.QRCode != "" {
		in.QRCode = &req.QRCode
	}
	if req.Unit != "" {
		in.Unit = &req.Unit
	}
	if req.Price != "" {
		in.Price = &req.Price
	}
	in.ReorderPoint = req.ReorderPoint
	in.ReorderQuantity = req.ReorderQuantity

	p, err := uc.products.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sku", p.SKU).Int64("id", p.ID).Msg("producto creado")
	resp := uc.toResponse(*p)
	return &resp, nil
}

// Replace reemplaza un producto completo (PUT). Mismas reglas de alta.
func (uc *ProductUseCase) Replace(ctx context.Context, id int64, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(req.SKU)
	name := strings.TrimSpace(req.Name)
	if sku == "" || name == "" {
		return nil, fmt.Errorf("%w: sku y name son obligatorios", domain.ErrInvalidInput)
	}
	in := restapi.ProductInput{
		SKU:             &sku,
		Name:            &name,
		Description:     &req.Description,
		Category:        &req.Category,
		Supplier:        req.Supplier,
		Barcode:         &req.Barcode,
		QRCode:          &req.QRCode,
		Unit:            &req.Unit,
		Price:           &req.Price,
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
	}
	p, err := uc.products.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(*p)
	return &resp, nil
}

// Update edita parcialmente un producto; los campos nil no se tocan.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	in := restapi.ProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Supplier:        req.Supplier,
		Barcode:         req.Barcode,
		QRCode:          req.QRCode,
		Unit:            req.Unit,
		Price:           req.Price,
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
		IsActive:        req.IsActive,
	}
	p, err := uc.products.PatchProduct(ctx, id, in)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(*p)
	return &resp, nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.products.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Msg("producto eliminado")
	return nil
}

// Inventory devuelve el registro de inventario del producto.
func (uc *ProductUseCase) Inventory(ctx context.Context, id int64) (*dto.InventoryResponse, error) {
	inv, err := uc.products.ProductInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := inventoryResponse(*inv, uc.toResponse)
	return &resp, nil
}

// Transact registra un movimiento de stock contra el producto. La cantidad
// no puede ser cero y el motivo debe pertenecer al enum del backend.
func (uc *ProductUseCase) Transact(ctx context.Context, id int64, req dto.TransactRequest) (*entity.StockTransaction, error) {
	if req.QuantityChange == 0 {
		return nil, fmt.Errorf("%w: quantity_change no puede ser cero", domain.ErrInvalidInput)
	}
	reason := entity.TransactionReason(req.Reason)
	if !entity.ValidReason(reason) {
		return nil, fmt.Errorf("%w: reason inválido %q", domain.ErrInvalidInput, req.Reason)
	}
	tx, err := uc.products.Transact(ctx, id, restapi.TransactionInput{
		QuantityChange: req.QuantityChange,
		Reason:         reason,
		Reference:      req.Reference,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("product_id", id).
		Int("quantity_change", tx.QuantityChange).
		Str("reason", string(tx.Reason)).
		Msg("movimiento de stock registrado")
	return tx, nil
}

// QRCode devuelve la imagen QR del producto generada por el backend.
func (uc *ProductUseCase) QRCode(ctx context.Context, id int64) (*entity.QRCodeInfo, error) {
	return uc.products.ProductQRCode(ctx, id)
}

// Label genera la etiqueta imprimible del producto (PDF con nombre, SKU,
// precio, código de barras y QR).
func (uc *ProductUseCase) Label(ctx context.Context, id int64) (*dto.ReportDownload, error) {
	p, err := uc.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.labels.ProductLabel(p)
	if err != nil {
		return nil, fmt.Errorf("generando etiqueta del producto %d: %w", id, err)
	}
	return &dto.ReportDownload{
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("label_%s.pdf", p.SKU),
		Data:        data,
	}, nil
}
