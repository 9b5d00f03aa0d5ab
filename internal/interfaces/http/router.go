package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistics-panel-api/internal/application/analytics"
	"github.com/jhoicas/logistics-panel-api/internal/application/movements"
	"github.com/jhoicas/logistics-panel-api/internal/application/notify"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/metrics"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/seed"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *movements.Store
	Projector   *movements.Projector
	Registry    *seed.Registry
	Queue       *notify.Queue
	DashboardUC *analytics.DashboardUseCase
	Metrics     *metrics.Metrics
	Logger      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	api := app.Group("/api")

	// Movimientos: vista, acciones y exportación
	movGroup := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Store, deps.Projector, deps.Registry, deps.Metrics)
	exportHandler := NewExportHandler(deps.Store, deps.Projector, deps.Registry, deps.Metrics, deps.Logger)
	movGroup.Get("/", movementHandler.List)
	movGroup.Get("/export", exportHandler.Download)
	movGroup.Delete("/error", movementHandler.ClearError)
	movGroup.Get("/:id", movementHandler.GetByID)
	movGroup.Post("/:id/approve", movementHandler.Approve)
	movGroup.Post("/:id/reject", movementHandler.Reject)

	// Notificaciones activas
	notifGroup := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Queue)
	notifGroup.Get("/", notificationHandler.List)
	notifGroup.Delete("/", notificationHandler.Clear)
	notifGroup.Delete("/:id", notificationHandler.Dismiss)

	// Red de centros
	centers := api.Group("/distribution-centers")
	centerHandler := NewCenterHandler(deps.Registry)
	centers.Get("/", centerHandler.List)
	centers.Get("/:id", centerHandler.GetByID)

	// Widgets del panel
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/network-health", dashboardHandler.NetworkHealth)
	dashboard.Get("/issues", dashboardHandler.Issues)
	dashboard.Get("/impact", dashboardHandler.Impact)
}
