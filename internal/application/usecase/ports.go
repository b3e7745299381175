package usecase

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
)

// Puertos de salida de los casos de uso. El cliente REST los implementa
// todos; los tests inyectan dobles. La consola no tiene repositorios propios:
// su "capa de datos" es el backend remoto.

// ProductGateway operaciones de producto contra el backend.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, in restapi.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, in restapi.ProductInput) (*entity.Product, error)
	PatchProduct(ctx context.Context, id int64, in restapi.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ProductInventory(ctx context.Context, id int64) (*entity.Inventory, error)
	Transact(ctx context.Context, id int64, in restapi.TransactionInput) (*entity.StockTransaction, error)
	ProductQRCode(ctx context.Context, id int64) (*entity.QRCodeInfo, error)
}

// InventoryGateway operaciones de inventario y libro de movimientos.
type InventoryGateway interface {
	ListInventory(ctx context.Context) ([]entity.Inventory, error)
	GetInventory(ctx context.Context, id int64) (*entity.Inventory, error)
	PatchInventory(ctx context.Context, id int64, in restapi.InventoryPatch) (*entity.Inventory, error)
	ListTransactions(ctx context.Context) ([]entity.StockTransaction, error)
	GetTransaction(ctx context.Context, id int64) (*entity.StockTransaction, error)
}

// CatalogGateway CRUD de proveedores, categorías y ubicaciones.
type CatalogGateway interface {
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*entity.Supplier, error)
	CreateSupplier(ctx context.Context, in restapi.SupplierInput) (*entity.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, in restapi.SupplierInput) (*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, in restapi.CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, in restapi.CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListLocations(ctx context.Context) ([]entity.Location, error)
	GetLocation(ctx context.Context, id int64) (*entity.Location, error)
	CreateLocation(ctx context.Context, in restapi.LocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, id int64, in restapi.LocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// AnalyticsGateway disparo y consulta de los jobs ML del backend.
type AnalyticsGateway interface {
	ListDemandPredictions(ctx context.Context) ([]entity.DemandPrediction, error)
	GenerateDemandPredictions(ctx context.Context) (*restapi.GenerateResult, error)
	ProductPredictions(ctx context.Context, productID int64) ([]entity.DemandPrediction, error)
	ListPurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, in json.RawMessage) (*entity.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, id int64, in json.RawMessage) (*entity.PurchaseOrder, error)
	GenerateAutomatedOrders(ctx context.Context) (*restapi.GenerateResult, error)
	PendingOrders(ctx context.Context) ([]entity.PurchaseOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status entity.PurchaseOrderStatus) (*entity.PurchaseOrder, error)
	ListStockoutPredictions(ctx context.Context) ([]entity.StockoutPrediction, error)
	GenerateStockoutPredictions(ctx context.Context) (*restapi.GenerateResult, error)
	CriticalRisks(ctx context.Context) ([]entity.StockoutPrediction, error)
	ListSeasonalTrends(ctx context.Context) ([]entity.SeasonalTrend, error)
	AnalyzeSeasonalTrends(ctx context.Context) (*restapi.GenerateResult, error)
	AnalyticsSummary(ctx context.Context) (json.RawMessage, error)
	DemandForecast(ctx context.Context, days int) (json.RawMessage, error)
}

// NotificationGateway preferencias, historiales y envíos de prueba.
type NotificationGateway interface {
	ListNotificationSettings(ctx context.Context) ([]entity.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, id int64, in entity.NotificationSettings) (*entity.NotificationSettings, error)
	CheckAlerts(ctx context.Context) (json.RawMessage, error)
	ListEmailNotifications(ctx context.Context) ([]entity.EmailNotification, error)
	RecentEmails(ctx context.Context, days int) ([]entity.EmailNotification, error)
	FailedEmails(ctx context.Context) ([]entity.EmailNotification, error)
	ListSMSNotifications(ctx context.Context) ([]entity.SMSNotification, error)
	RecentSMS(ctx context.Context, days int) ([]entity.SMSNotification, error)
	FailedSMS(ctx context.Context) ([]entity.SMSNotification, error)
	ListAlertRules(ctx context.Context) ([]entity.AlertRule, error)
	CreateAlertRule(ctx context.Context, in entity.AlertRule) (*entity.AlertRule, error)
	UpdateAlertRule(ctx context.Context, id int64, in entity.AlertRule) (*entity.AlertRule, error)
	DeleteAlertRule(ctx context.Context, id int64) error
	NotificationSummary(ctx context.Context) (json.RawMessage, error)
	TestEmail(ctx context.Context) (*restapi.TestSendResult, error)
	TestSMS(ctx context.Context) (*restapi.TestSendResult, error)
}

// ReportGateway generación y descarga de reportes.
type ReportGateway interface {
	ListReports(ctx context.Context) ([]entity.Report, error)
	GetReport(ctx context.Context, id int64) (*entity.Report, error)
	GenerateReport(ctx context.Context, in restapi.GenerateReportInput) (*entity.Report, error)
	DownloadReport(ctx context.Context, id int64) (*entity.ReportArtifact, error)
	RecentReports(ctx context.Context, days int) ([]entity.Report, error)
	FailedReports(ctx context.Context) ([]entity.Report, error)
	ListReportTemplates(ctx context.Context) ([]entity.ReportTemplate, error)
	CreateReportTemplate(ctx context.Context, in entity.ReportTemplate) (*entity.ReportTemplate, error)
	UpdateReportTemplate(ctx context.Context, id int64, in entity.ReportTemplate) (*entity.ReportTemplate, error)
	DeleteReportTemplate(ctx context.Context, id int64) error
	ReportSummary(ctx context.Context) (json.RawMessage, error)
	CleanupOldReports(ctx context.Context, days int) (json.RawMessage, error)
}

// LabelGenerator genera la etiqueta imprimible de un producto (PDF con
// nombre, SKU, código de barras y QR).
type LabelGenerator interface {
	ProductLabel(product *entity.Product) ([]byte, error)
}
