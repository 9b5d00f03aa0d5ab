package notify_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-panel-api/internal/application/notify"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Push
// ──────────────────────────────────────────────────────────────────────────────

func TestPush_AsignaIDYRecortaTexto(t *testing.T) {
	q := notify.NewQueue(0)

	id := q.Push("  movimiento aprobado  ", entity.SeveritySuccess, 0)
	require.NotEmpty(t, id, "Push con texto válido debe devolver un ID")

	list := q.List()
	require.Len(t, list, 1)
	assert.Equal(t, "movimiento aprobado", list[0].Message, "el texto debe guardarse recortado")
	assert.Equal(t, entity.SeveritySuccess, list[0].Severity)
	assert.False(t, list[0].CreatedAt.IsZero(), "debe registrar la hora de creación")
}

func TestPush_TextoVacioNoHaceNada(t *testing.T) {
	q := notify.NewQueue(0)

	assert.Empty(t, q.Push("", entity.SeverityInfo, 0), "texto vacío no debe encolar")
	assert.Empty(t, q.Push("   ", entity.SeverityInfo, 0), "solo espacios no debe encolar")
	assert.Zero(t, q.Len(), "la cola debe seguir vacía")
}

func TestPush_SeveridadPorDefectoEsInfo(t *testing.T) {
	q := notify.NewQueue(0)
	q.Push("mensaje", "", 0)

	list := q.List()
	require.Len(t, list, 1)
	assert.Equal(t, entity.SeverityInfo, list[0].Severity)
}

// TestPush_TopeFIFO verifica el invariante central: nunca más de 3 entradas
// activas, y el desalojo siempre saca la más antigua primero.
func TestPush_TopeFIFO(t *testing.T) {
	q := notify.NewQueue(0)

	for i := 1; i <= 5; i++ {
		q.Push(fmt.Sprintf("mensaje %d", i), entity.SeverityInfo, 0)
	}

	list := q.List()
	require.Len(t, list, 3, "la cola nunca debe superar 3 entradas")
	assert.Equal(t, "mensaje 3", list[0].Message, "las más antiguas deben desalojarse primero")
	assert.Equal(t, "mensaje 4", list[1].Message)
	assert.Equal(t, "mensaje 5", list[2].Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Expiración automática
// ──────────────────────────────────────────────────────────────────────────────

func TestPush_ExpiraTrasLaDuracion(t *testing.T) {
	q := notify.NewQueue(0)
	q.Push("efímera", entity.SeveritySuccess, 20*time.Millisecond)

	require.Equal(t, 1, q.Len())

	assert.Eventually(t, func() bool { return q.Len() == 0 },
		time.Second, 5*time.Millisecond,
		"la notificación debe auto-eliminarse al vencer su duración")
}

func TestPush_DuracionCeroNoExpira(t *testing.T) {
	q := notify.NewQueue(0)
	id := q.Push("persistente", entity.SeverityInfo, 0)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, q.Len(), "con duración 0 la entrada permanece hasta descartarla")

	q.Remove(id)
	assert.Zero(t, q.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove y Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_EsIdempotente(t *testing.T) {
	q := notify.NewQueue(0)
	id := q.Push("una", entity.SeverityInfo, 0)

	q.Remove(id)
	assert.Zero(t, q.Len())

	// Segunda eliminación del mismo ID: no-op, sin pánico
	q.Remove(id)
	q.Remove("id-inexistente")
	assert.Zero(t, q.Len())
}

func TestClear_VaciaEIgnoraTimersPendientes(t *testing.T) {
	q := notify.NewQueue(0)
	q.Push("a", entity.SeveritySuccess, 30*time.Millisecond)
	q.Push("b", entity.SeverityError, 30*time.Millisecond)
	q.Push("c", entity.SeverityInfo, 0)

	q.Clear()
	assert.Zero(t, q.Len(), "Clear debe vaciar la cola de inmediato")

	// Si algún timer ya disparó, su Remove sobre un ID ausente es un no-op
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, q.Len())

	// La cola sigue siendo usable tras Clear
	q.Push("d", entity.SeverityInfo, 0)
	assert.Equal(t, 1, q.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Wrappers de severidad
// ──────────────────────────────────────────────────────────────────────────────

func TestWrappers_SeveridadYExpiracion(t *testing.T) {
	q := notify.NewQueue(0)

	q.Success("ok")
	q.Error("falló")
	q.Warning("ojo")

	list := q.List()
	require.Len(t, list, 3)
	assert.Equal(t, entity.SeveritySuccess, list[0].Severity)
	assert.Equal(t, entity.SeverityError, list[1].Severity)
	assert.Equal(t, entity.SeverityWarning, list[2].Severity)
	for _, n := range list {
		assert.Equal(t, notify.DefaultDuration, n.Duration)
	}
}

func TestWrappers_DuracionConfigurada(t *testing.T) {
	q := notify.NewQueue(45 * time.Millisecond)

	q.Success("ok")
	require.Equal(t, 1, q.Len())
	assert.Equal(t, 45*time.Millisecond, q.List()[0].Duration)

	assert.Eventually(t, func() bool { return q.Len() == 0 },
		time.Second, 5*time.Millisecond,
		"la duración configurada debe gobernar la expiración de los wrappers")
}

func TestInfo_NoExpira(t *testing.T) {
	q := notify.NewQueue(0)
	q.Info("detalle del movimiento")

	list := q.List()
	require.Len(t, list, 1)
	assert.Equal(t, entity.SeverityInfo, list[0].Severity)
	assert.Zero(t, list[0].Duration, "Info es para vistas de detalle: sin expiración automática")
}

func TestList_DevuelveCopia(t *testing.T) {
	q := notify.NewQueue(0)
	q.Push("original", entity.SeverityInfo, 0)

	list := q.List()
	list[0].Message = "mutada"

	assert.Equal(t, "original", q.List()[0].Message, "mutar la copia no debe afectar la cola")
}
