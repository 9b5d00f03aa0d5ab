package metrics

import "github.com/jhoicas/logistics-panel-api/internal/application/notify"

// InstrumentedQueue decora la cola de notificaciones contando cada encolado
// por severidad. Implementa movements.Notifier.
type InstrumentedQueue struct {
	queue   *notify.Queue
	metrics *Metrics
}

// InstrumentQueue envuelve la cola con los colectores.
func InstrumentQueue(queue *notify.Queue, m *Metrics) *InstrumentedQueue {
	return &InstrumentedQueue{queue: queue, metrics: m}
}

// Success encola y cuenta una notificación de éxito.
func (q *InstrumentedQueue) Success(message string) string {
	q.metrics.Notifications.WithLabelValues("success").Inc()
	return q.queue.Success(message)
}

// Error encola y cuenta una notificación de error.
func (q *InstrumentedQueue) Error(message string) string {
	q.metrics.Notifications.WithLabelValues("error").Inc()
	return q.queue.Error(message)
}

// Warning encola y cuenta una notificación de advertencia.
func (q *InstrumentedQueue) Warning(message string) string {
	q.metrics.Notifications.WithLabelValues("warning").Inc()
	return q.queue.Warning(message)
}

// Info encola y cuenta una notificación informativa.
func (q *InstrumentedQueue) Info(message string) string {
	q.metrics.Notifications.WithLabelValues("info").Inc()
	return q.queue.Info(message)
}
