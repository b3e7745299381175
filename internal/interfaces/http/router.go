package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dashboard"
	"github.com/jhoicas/Inventario-console/internal/application/scan"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	InventoryUC    *usecase.InventoryUseCase
	CatalogUC      *usecase.CatalogUseCase
	AnalyticsUC    *usecase.AnalyticsUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *usecase.ReportUseCase
	ScanSessions   *scan.Manager
	Dashboard      *dashboard.Poller
}

// Router registra las rutas de la consola bajo /console.
func Router(app *fiber.App, deps RouterDeps) {
	console := app.Group("/console")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	console.Get("/dashboard", dashboardHandler.Stats)
	console.Post("/dashboard/refresh", dashboardHandler.Refresh)

	// Products
	products := console.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Replace)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/inventory", productHandler.Inventory)
	products.Post("/:id/transact", productHandler.Transact)
	products.Get("/:id/qr_code", productHandler.QRCode)
	products.Get("/:id/label", productHandler.Label)

	// Inventory y libro de movimientos
	inventory := console.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Patch("/:id", inventoryHandler.Update)
	console.Get("/transactions", inventoryHandler.Transactions)
	console.Get("/transactions/:id", inventoryHandler.Transaction)

	// Catálogo de soporte
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	suppliers := console.Group("/suppliers")
	suppliers.Get("/", catalogHandler.ListSuppliers)
	suppliers.Post("/", catalogHandler.CreateSupplier)
	suppliers.Get("/:id", catalogHandler.GetSupplier)
	suppliers.Put("/:id", catalogHandler.UpdateSupplier)
	suppliers.Delete("/:id", catalogHandler.DeleteSupplier)

	categories := console.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	locations := console.Group("/locations")
	locations.Get("/", catalogHandler.ListLocations)
	locations.Post("/", catalogHandler.CreateLocation)
	locations.Get("/:id", catalogHandler.GetLocation)
	locations.Put("/:id", catalogHandler.UpdateLocation)
	locations.Delete("/:id", catalogHandler.DeleteLocation)

	// Escáner: sesiones del flujo de captura y resolución
	scanner := console.Group("/scanner/sessions")
	scannerHandler := NewScannerHandler(deps.ScanSessions, deps.ProductUC)
	scanner.Post("/", scannerHandler.Create)
	scanner.Get("/:id", scannerHandler.Get)
	scanner.Put("/:id/source", scannerHandler.SwitchSource)
	scanner.Post("/:id/manual", scannerHandler.ManualSubmit)
	scanner.Post("/:id/decode", scannerHandler.PushDecode)
	scanner.Post("/:id/error", scannerHandler.PushError)
	scanner.Post("/:id/scan_again", scannerHandler.ScanAgain)
	scanner.Post("/:id/retry", scannerHandler.RetryCapture)
	scanner.Delete("/:id", scannerHandler.Close)

	// Analítica
	analytics := console.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/summary", analyticsHandler.Summary)
	analytics.Get("/forecast", analyticsHandler.Forecast)
	analytics.Get("/demand_predictions", analyticsHandler.DemandPredictions)
	analytics.Post("/demand_predictions/generate", analyticsHandler.GenerateDemandPredictions)
	analytics.Get("/demand_predictions/product/:id", analyticsHandler.ProductPredictions)
	analytics.Get("/purchase_orders", analyticsHandler.PurchaseOrders)
	analytics.Post("/purchase_orders", analyticsHandler.CreateOrder)
	analytics.Get("/purchase_orders/pending", analyticsHandler.PendingOrders)
	analytics.Post("/purchase_orders/generate", analyticsHandler.GenerateAutomatedOrders)
	analytics.Put("/purchase_orders/:id", analyticsHandler.UpdateOrder)
	analytics.Put("/purchase_orders/:id/status", analyticsHandler.UpdateOrderStatus)
	analytics.Get("/stockout_predictions", analyticsHandler.StockoutPredictions)
	analytics.Post("/stockout_predictions/generate", analyticsHandler.GenerateStockoutPredictions)
	analytics.Get("/stockout_predictions/critical", analyticsHandler.CriticalRisks)
	analytics.Get("/seasonal_trends", analyticsHandler.SeasonalTrends)
	analytics.Post("/seasonal_trends/analyze", analyticsHandler.AnalyzeSeasonalTrends)

	// Notificaciones
	notifications := console.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/summary", notificationHandler.Summary)
	notifications.Get("/settings", notificationHandler.Settings)
	notifications.Put("/settings/:id", notificationHandler.UpdateSettings)
	notifications.Post("/check_alerts", notificationHandler.CheckAlerts)
	notifications.Get("/emails", notificationHandler.Emails)
	notifications.Get("/emails/recent", notificationHandler.RecentEmails)
	notifications.Get("/emails/failed", notificationHandler.FailedEmails)
	notifications.Get("/sms", notificationHandler.SMS)
	notifications.Get("/sms/recent", notificationHandler.RecentSMS)
	notifications.Get("/sms/failed", notificationHandler.FailedSMS)
	notifications.Get("/alert_rules", notificationHandler.AlertRules)
	notifications.Post("/alert_rules", notificationHandler.CreateAlertRule)
	notifications.Put("/alert_rules/:id", notificationHandler.UpdateAlertRule)
	notifications.Delete("/alert_rules/:id", notificationHandler.DeleteAlertRule)
	notifications.Post("/test_email", notificationHandler.TestEmail)
	notifications.Post("/test_sms", notificationHandler.TestSMS)

	// Reportes
	reports := console.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Post("/", reportHandler.Generate)
	reports.Get("/recent", reportHandler.Recent)
	reports.Get("/failed", reportHandler.Failed)
	reports.Get("/summary", reportHandler.Summary)
	reports.Post("/cleanup", reportHandler.Cleanup)
	reports.Get("/templates", reportHandler.Templates)
	reports.Post("/templates", reportHandler.CreateTemplate)
	reports.Put("/templates/:id", reportHandler.UpdateTemplate)
	reports.Delete("/templates/:id", reportHandler.DeleteTemplate)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/download", reportHandler.Download)
}
