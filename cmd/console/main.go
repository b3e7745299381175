package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-console/internal/application/dashboard"
	"github.com/jhoicas/Inventario-console/internal/application/scan"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain/currency"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/labels"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/Inventario-console/internal/interfaces/http"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola de inventario")

	display := currency.Code(cfg.Display.Currency)
	if !currency.Valid(display) {
		log.Warn().Str("currency", cfg.Display.Currency).Msg("moneda de display no soportada, usando INR")
		display = currency.INR
	}

	// Cliente del backend remoto: el único origen de datos de la consola.
	backend := restapi.New(cfg.Backend, log)

	labelGenerator := labels.NewGenerator(display)
	productUC := usecase.NewProductUseCase(backend, labelGenerator, display, log)
	inventoryUC := usecase.NewInventoryUseCase(backend, productUC, log)
	catalogUC := usecase.NewCatalogUseCase(backend, log)
	analyticsUC := usecase.NewAnalyticsUseCase(backend, log)
	notificationUC := usecase.NewNotificationUseCase(backend, log)
	reportUC := usecase.NewReportUseCase(backend, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sesiones de escaneo: el ciclo de expiración corre aparte.
	scanSessions := scan.NewManager(backend, nil, log)
	go scanSessions.Run(ctx)

	// Poller del tablero a intervalo fijo.
	poller := dashboard.NewPoller(backend, display, cfg.Display.RefreshInterval, log.Component("poller"))
	go poller.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		InventoryUC:    inventoryUC,
		CatalogUC:      catalogUC,
		AnalyticsUC:    analyticsUC,
		NotificationUC: notificationUC,
		ReportUC:       reportUC,
		ScanSessions:   scanSessions,
		Dashboard:      poller,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
