package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/logistics-panel-api/internal/application/analytics"
	"github.com/jhoicas/logistics-panel-api/internal/application/movements"
	"github.com/jhoicas/logistics-panel-api/internal/application/notify"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/metrics"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/logistics-panel-api/internal/interfaces/http"
	"github.com/jhoicas/logistics-panel-api/pkg/config"
	"github.com/jhoicas/logistics-panel-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Dataset semilla: la red de centros, los movimientos activos y las
	// incidencias abiertas
	registry := seed.NewRegistry(seed.DistributionCenters())
	m := metrics.New(cfg.App.Name)

	queue := notify.NewQueue(cfg.Notify.DefaultDuration)
	notifier := metrics.InstrumentQueue(queue, m)

	store := movements.NewStore(seed.Movements(), notifier, movements.Config{
		ApproveLatency: cfg.Store.ApproveLatency,
		RejectLatency:  cfg.Store.RejectLatency,
	})
	projector := movements.NewProjector(registry)
	dashboardUC := analytics.NewDashboardUseCase(registry, store, seed.Issues())

	// El gauge de pendientes sigue a la colección en cada cambio observable
	m.PendingMovements.Set(float64(store.PendingCount()))
	store.Subscribe(func() {
		m.PendingMovements.Set(float64(store.PendingCount()))
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Logistics Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		Projector:   projector,
		Registry:    registry,
		Queue:       queue,
		DashboardUC: dashboardUC,
		Metrics:     m,
		Logger:      log.Component("http"),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Detener temporizadores de expiración pendientes antes de salir
	queue.Clear()

	log.Info().Msg("aplicación detenida")
}
