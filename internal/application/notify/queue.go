// Package notify implementa la cola de notificaciones del panel: un registro
// acotado y auto-expirable de mensajes para el usuario, desacoplado del store
// de movimientos (el store escribe en la cola; la cola no conoce al store).
package notify

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// DefaultDuration expiración por defecto de una notificación.
const DefaultDuration = 3 * time.Second

// maxActive tope de notificaciones visibles a la vez; al superarlo se
// desaloja desde el frente (FIFO), independiente de la expiración.
const maxActive = 3

// Queue cola de notificaciones acotada con expiración automática.
// Segura para uso concurrente.
type Queue struct {
	defaultDuration time.Duration

	mu      sync.Mutex
	entries []entity.Notification
	timers  map[string]*time.Timer
}

// NewQueue construye una cola vacía. defaultDuration gobierna la expiración
// de los wrappers Success/Error/Warning; en cero usa DefaultDuration.
func NewQueue(defaultDuration time.Duration) *Queue {
	if defaultDuration == 0 {
		defaultDuration = DefaultDuration
	}
	return &Queue{
		defaultDuration: defaultDuration,
		timers:          make(map[string]*time.Timer),
	}
}

// Push agrega una notificación y devuelve su ID.
// Si el texto está vacío (tras recortar espacios) no hace nada y devuelve "".
// Con duration > 0 programa la eliminación automática; con 0 la entrada
// permanece hasta un Remove o Clear explícito.
func (q *Queue) Push(message, severity string, duration time.Duration) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}
	if severity == "" {
		severity = entity.SeverityInfo
	}

	n := entity.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	q.mu.Lock()
	q.entries = append(q.entries, n)
	// Desalojo FIFO: se aplica en cada Push, no al leer
	for len(q.entries) > maxActive {
		evicted := q.entries[0]
		q.entries = q.entries[1:]
		q.stopTimerLocked(evicted.ID)
	}
	if duration > 0 {
		q.timers[n.ID] = time.AfterFunc(duration, func() {
			q.Remove(n.ID)
		})
	}
	q.mu.Unlock()

	return n.ID
}

// Remove elimina una notificación por ID. Es idempotente: un ID ausente
// (ya expirado, desalojado o limpiado) no es un error.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopTimerLocked(id)
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// Clear vacía la cola de inmediato. Los timers pendientes se detienen; si
// alguno ya disparó, su Remove posterior no encuentra el ID y no hace nada.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.entries = nil
}

// List devuelve una copia de las notificaciones activas en orden de llegada.
func (q *Queue) List() []entity.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]entity.Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len devuelve el número de notificaciones activas.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Success agrega una notificación de éxito con la duración por defecto.
func (q *Queue) Success(message string) string {
	return q.Push(message, entity.SeveritySuccess, q.defaultDuration)
}

// Error agrega una notificación de error con la duración por defecto.
func (q *Queue) Error(message string) string {
	return q.Push(message, entity.SeverityError, q.defaultDuration)
}

// Warning agrega una notificación de advertencia con la duración por defecto.
func (q *Queue) Warning(message string) string {
	return q.Push(message, entity.SeverityWarning, q.defaultDuration)
}

// Info agrega una notificación informativa sin expiración automática,
// pensada para vistas de detalle que el usuario cierra manualmente.
func (q *Queue) Info(message string) string {
	return q.Push(message, entity.SeverityInfo, 0)
}

// stopTimerLocked detiene y olvida el timer del ID, si existe.
// Requiere q.mu tomado.
func (q *Queue) stopTimerLocked(id string) {
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
}
