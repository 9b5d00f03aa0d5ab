package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-panel-api/internal/application/analytics"
	"github.com/jhoicas/logistics-panel-api/internal/application/dto"
	"github.com/jhoicas/logistics-panel-api/internal/application/movements"
	"github.com/jhoicas/logistics-panel-api/internal/application/notify"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/metrics"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/logistics-panel-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testEnv agrupa las piezas con estado del app de prueba.
type testEnv struct {
	app   *fiber.App
	store *movements.Store
	queue *notify.Queue
}

// buildTestApp construye la API completa sobre el dataset de demostración,
// con latencias simuladas cortas para que las acciones resuelvan rápido.
func buildTestApp(t *testing.T) testEnv {
	t.Helper()

	registry := seed.NewRegistry(seed.DistributionCenters())
	m := metrics.New("panel-test")
	// Duración larga: las pruebas no deben depender de la expiración
	queue := notify.NewQueue(time.Minute)
	store := movements.NewStore(seed.Movements(), metrics.InstrumentQueue(queue, m), movements.Config{
		ApproveLatency: time.Millisecond,
		RejectLatency:  time.Millisecond,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:       store,
		Projector:   movements.NewProjector(registry),
		Registry:    registry,
		Queue:       queue,
		DashboardUC: analytics.NewDashboardUseCase(registry, store, seed.Issues()),
		Metrics:     m,
		Logger:      zerolog.Nop(),
	})
	return testEnv{app: app, store: store, queue: queue}
}

// doJSON lanza la petición y decodifica el cuerpo JSON en out.
func doJSON(t *testing.T, app *fiber.App, method, target string, out interface{}) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	resp.Body.Close()
	return resp
}

func movementIDs(list []dto.MovementDTO) []string {
	ids := make([]string, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	return ids
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/movements — vista filtrada y ordenada
// ──────────────────────────────────────────────────────────────────────────────

func TestListarMovimientos_OrdenPorDefecto(t *testing.T) {
	env := buildTestApp(t)

	var body dto.MovementListResponse
	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, body.Total)
	assert.Equal(t, 3, body.PendingCount, "el dataset semilla tiene tres pendientes")
	assert.False(t, body.Loading)
	assert.Empty(t, body.Error)
	// Más reciente primero
	assert.Equal(t, []string{"mov-004", "mov-003", "mov-001", "mov-005", "mov-002"},
		movementIDs(body.Movements))
}

func TestListarMovimientos_NombresDeCentroResueltos(t *testing.T) {
	env := buildTestApp(t)

	var body dto.MovementListResponse
	doJSON(t, env.app, http.MethodGet, "/api/movements/?search=dhl-8834", &body)

	require.Len(t, body.Movements, 1)
	assert.Equal(t, "mov-001", body.Movements[0].ID)
	assert.Equal(t, "Chicago DC", body.Movements[0].OriginName)
	assert.Equal(t, "Los Angeles DC", body.Movements[0].DestinationName)
}

func TestListarMovimientos_FiltroPorEstado(t *testing.T) {
	env := buildTestApp(t)

	var body dto.MovementListResponse
	doJSON(t, env.app, http.MethodGet, "/api/movements/?status=approved", &body)

	assert.Equal(t, 2, body.Total)
	for _, m := range body.Movements {
		assert.Equal(t, "approved", m.Status)
	}
}

func TestListarMovimientos_EstadoInvalido_Retorna400(t *testing.T) {
	env := buildTestApp(t)

	var body dto.ErrorResponse
	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/?status=archived", &body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestListarMovimientos_OrdenPorAhorro(t *testing.T) {
	env := buildTestApp(t)

	var body dto.MovementListResponse
	doJSON(t, env.app, http.MethodGet, "/api/movements/?sort_by=estimatedSavings&sort_dir=desc", &body)

	assert.Equal(t, []string{"mov-004", "mov-001", "mov-003", "mov-002", "mov-005"},
		movementIDs(body.Movements))
}

func TestObtenerMovimiento_PorID(t *testing.T) {
	env := buildTestApp(t)

	var body dto.MovementDTO
	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/mov-003", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "DHL-9944-SM", body.SKU)
	assert.Equal(t, "Seattle DC", body.OriginName)
}

func TestObtenerMovimiento_Desconocido_Retorna404(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/mov-999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST approve / reject — acciones sobre el store
// ──────────────────────────────────────────────────────────────────────────────

func TestAprobarMovimiento_Exitoso(t *testing.T) {
	env := buildTestApp(t)

	var body dto.ActionResponse
	resp := doJSON(t, env.app, http.MethodPost, "/api/movements/mov-001/approve", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)
	assert.Equal(t, "movimiento aprobado correctamente", body.Message)

	m, ok := env.store.Get("mov-001")
	require.True(t, ok)
	assert.Equal(t, "approved", m.Status)
	require.NotNil(t, m.ApprovedAt, "la aprobación debe sellar la fecha")
}

func TestAprobarMovimiento_Desconocido_Retorna404(t *testing.T) {
	env := buildTestApp(t)

	var body dto.ErrorResponse
	resp := doJSON(t, env.app, http.MethodPost, "/api/movements/mov-999/approve", &body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestAprobarMovimiento_YaAprobado_Retorna409(t *testing.T) {
	env := buildTestApp(t)

	var body dto.ErrorResponse
	resp := doJSON(t, env.app, http.MethodPost, "/api/movements/mov-002/approve", &body)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestRechazarMovimiento_LoRetiraDeLaVista(t *testing.T) {
	env := buildTestApp(t)

	var action dto.ActionResponse
	resp := doJSON(t, env.app, http.MethodPost, "/api/movements/mov-003/reject", &action)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, action.Success)

	var list dto.MovementListResponse
	doJSON(t, env.app, http.MethodGet, "/api/movements/", &list)
	assert.Equal(t, 4, list.Total, "el movimiento rechazado sale de la colección activa")
	assert.NotContains(t, movementIDs(list.Movements), "mov-003")
}

func TestLimpiarError_Retorna204(t *testing.T) {
	env := buildTestApp(t)

	// Provocar un error de estado con un ID inexistente
	doJSON(t, env.app, http.MethodPost, "/api/movements/mov-999/approve", nil)
	require.NotEmpty(t, env.store.Err())

	resp := doJSON(t, env.app, http.MethodDelete, "/api/movements/error", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, env.store.Err())
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/movements/export — descargas
// ──────────────────────────────────────────────────────────────────────────────

func TestExportarCSV_DescargaAdjunta(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/movements/export?format=csv", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory-movements-")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	assert.Len(t, lines, 6, "cabecera más cinco movimientos")
	assert.Contains(t, lines[0], `"Estimated Savings"`)
}

func TestExportarCSV_RespetaElFiltroDeLaVista(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/movements/export?format=csv&search=dhl-8834", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "mov-001")
	assert.NotContains(t, string(body), "mov-002")
}

func TestExportarPDF_Descarga(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/movements/export?format=pdf", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"), "el cuerpo debe ser un PDF")
}

func TestExportar_VistaVacia_Retorna204(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/export?format=csv&search=sin-coincidencias", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestExportar_FormatoInvalido_Retorna400(t *testing.T) {
	env := buildTestApp(t)

	var body dto.ErrorResponse
	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/export?format=xlsx", &body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestNotificaciones_AccionesDelStoreEncolan(t *testing.T) {
	env := buildTestApp(t)

	doJSON(t, env.app, http.MethodPost, "/api/movements/mov-001/approve", nil)

	var list []dto.NotificationDTO
	doJSON(t, env.app, http.MethodGet, "/api/notifications/", &list)

	require.Len(t, list, 1)
	assert.Equal(t, "movimiento aprobado correctamente", list[0].Message)
	assert.Equal(t, "success", list[0].Severity)
}

func TestNotificaciones_DescartarPorID(t *testing.T) {
	env := buildTestApp(t)
	id := env.queue.Info("revisión de capacidad programada")

	resp := doJSON(t, env.app, http.MethodDelete, "/api/notifications/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Zero(t, env.queue.Len())
}

func TestNotificaciones_DescartarTodas(t *testing.T) {
	env := buildTestApp(t)
	env.queue.Info("uno")
	env.queue.Info("dos")

	resp := doJSON(t, env.app, http.MethodDelete, "/api/notifications/", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Zero(t, env.queue.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Centros y widgets del panel
// ──────────────────────────────────────────────────────────────────────────────

func TestCentros_ListarRed(t *testing.T) {
	env := buildTestApp(t)

	var list []dto.CenterDTO
	resp := doJSON(t, env.app, http.MethodGet, "/api/distribution-centers/", &list)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 6)
}

func TestCentros_Desconocido_Retorna404(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/distribution-centers/dc-mia-001", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard_SaludDeLaRed(t *testing.T) {
	env := buildTestApp(t)

	var body dto.NetworkHealthDTO
	doJSON(t, env.app, http.MethodGet, "/api/dashboard/network-health", &body)

	assert.Len(t, body.Centers, 6)
	assert.Equal(t, 3, body.Healthy)
	assert.Equal(t, 2, body.Warning)
	assert.Equal(t, 1, body.Critical)
	assert.Equal(t, 14, body.TotalOpenIssues)
}

func TestDashboard_ResumenDeIncidencias(t *testing.T) {
	env := buildTestApp(t)

	var body dto.IssuesSummaryDTO
	doJSON(t, env.app, http.MethodGet, "/api/dashboard/issues", &body)

	assert.Equal(t, 15, body.Total)
	require.Len(t, body.Groups, 3)
	assert.Equal(t, "orders", body.Groups[0].Group)
	assert.Equal(t, 5, body.Groups[0].Total)
	assert.Equal(t, 23, body.Groups[0].Affected)
}

func TestDashboard_ImpactoEconomico(t *testing.T) {
	env := buildTestApp(t)

	var body dto.MovementImpactDTO
	doJSON(t, env.app, http.MethodGet, "/api/dashboard/impact", &body)

	assert.Equal(t, 5, body.Movements)
	assert.Equal(t, 3, body.PendingCount)
	assert.Equal(t, "47950", body.TotalSavings.String())
	assert.Equal(t, "37000", body.PendingSavings.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestMetricas_RegistranOperaciones(t *testing.T) {
	env := buildTestApp(t)
	doJSON(t, env.app, http.MethodPost, "/api/movements/mov-001/approve", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "panel_movement_operations_total")
	assert.Contains(t, string(body), `operation="approve"`)
}
