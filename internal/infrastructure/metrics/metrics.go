// Package metrics expone los contadores Prometheus del panel.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics colectores del panel, sobre un registro propio (sin el registro
// global, para que las pruebas puedan crear instancias aisladas).
type Metrics struct {
	registry *prometheus.Registry

	// Desenlaces de operaciones del store, etiquetados por operación
	// (approve/reject) y resultado (success/error)
	Operations *prometheus.CounterVec

	// Notificaciones encoladas por severidad
	Notifications *prometheus.CounterVec

	// Movimientos pendientes de decisión
	PendingMovements prometheus.Gauge

	// Exportaciones por formato (csv/pdf) y resultado
	Exports *prometheus.CounterVec
}

// New construye y registra los colectores.
func New(appName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	labels := prometheus.Labels{"app": appName}

	m := &Metrics{
		registry: registry,
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "panel_movement_operations_total",
			Help:        "Desenlaces de aprobaciones y rechazos de movimientos",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "panel_notifications_total",
			Help:        "Notificaciones encoladas por severidad",
			ConstLabels: labels,
		}, []string{"severity"}),
		PendingMovements: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "panel_pending_movements",
			Help:        "Movimientos actualmente pendientes de decisión",
			ConstLabels: labels,
		}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "panel_exports_total",
			Help:        "Descargas del reporte de movimientos",
			ConstLabels: labels,
		}, []string{"format", "result"}),
	}

	registry.MustRegister(m.Operations, m.Notifications, m.PendingMovements, m.Exports)
	return m
}

// Handler devuelve el handler HTTP de /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordOperation registra el desenlace de un approve/reject.
func (m *Metrics) RecordOperation(operation string, success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	m.Operations.WithLabelValues(operation, result).Inc()
}

// RecordExport registra una descarga del reporte.
func (m *Metrics) RecordExport(format string, success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	m.Exports.WithLabelValues(format, result).Inc()
}
