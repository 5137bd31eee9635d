package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"todolist/internal/core/port"
)

// PrometheusProbe counts core events: todo operations, load/save outcomes and
// toasts by severity.
type PrometheusProbe struct {
	todoOperations *prometheus.CounterVec
	storageLoads   *prometheus.CounterVec
	storageSaves   *prometheus.CounterVec
	toastsShown    *prometheus.CounterVec
}

func NewPrometheusProbe(registry prometheus.Registerer) port.Probe {
	probe := &PrometheusProbe{
		todoOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todo_operations_total",
				Help: "Total number of todo mutation operations",
			},
			[]string{"operation"},
		),
		storageLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storage_loads_total",
				Help: "Total number of collection loads by outcome",
			},
			[]string{"outcome"},
		),
		storageSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storage_saves_total",
				Help: "Total number of collection saves by outcome",
			},
			[]string{"outcome"},
		),
		toastsShown: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toasts_shown_total",
				Help: "Total number of toasts shown by severity",
			},
			[]string{"severity"},
		),
	}

	registry.MustRegister(
		probe.todoOperations,
		probe.storageLoads,
		probe.storageSaves,
		probe.toastsShown,
	)

	return probe
}

func (p *PrometheusProbe) RecordTodoOperation(operation string) {
	p.todoOperations.WithLabelValues(operation).Inc()
}

func (p *PrometheusProbe) RecordLoad(outcome string) {
	p.storageLoads.WithLabelValues(outcome).Inc()
}

func (p *PrometheusProbe) RecordSave(outcome string) {
	p.storageSaves.WithLabelValues(outcome).Inc()
}

func (p *PrometheusProbe) RecordToast(severity string) {
	p.toastsShown.WithLabelValues(severity).Inc()
}
