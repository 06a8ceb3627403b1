// Package metrics exposes the application's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Metrics carries the application-level counters. A nil receiver is
// valid and records nothing, so callers never need to guard.
type Metrics struct {
	invoicesGenerated  prometheus.Counter
	validationFailures prometheus.Counter
	registryLookups    *prometheus.CounterVec
	documentsRendered  *prometheus.CounterVec
}

// New builds the instruments and registers them on the default registry.
func New() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer)
}

func newMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	invoicesGenerated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gstbill_invoices_generated_total",
		Help: "Invoices generated successfully.",
	})
	validationFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gstbill_validation_failures_total",
		Help: "Invoice generation attempts rejected by validation.",
	})
	registryLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gstbill_hsn_lookups_total",
		Help: "HSN registry lookups by outcome.",
	}, []string{"outcome"})
	documentsRendered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gstbill_documents_rendered_total",
		Help: "Invoice documents rendered by target.",
	}, []string{"target"})

	registerer.MustRegister(
		invoicesGenerated,
		validationFailures,
		registryLookups,
		documentsRendered,
	)

	return &Metrics{
		invoicesGenerated:  invoicesGenerated,
		validationFailures: validationFailures,
		registryLookups:    registryLookups,
		documentsRendered:  documentsRendered,
	}
}

// InvoiceGenerated records a successfully generated invoice.
func (m *Metrics) InvoiceGenerated() {
	if m == nil {
		return
	}
	m.invoicesGenerated.Inc()
}

// ValidationFailed records a generation attempt rejected by validation.
func (m *Metrics) ValidationFailed() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

// RegistryLookup records an HSN registry lookup with its outcome,
// either "hit" or "miss".
func (m *Metrics) RegistryLookup(outcome string) {
	if m == nil {
		return
	}
	m.registryLookups.WithLabelValues(outcome).Inc()
}

// DocumentRendered records a rendered invoice document by target format.
func (m *Metrics) DocumentRendered(target string) {
	if m == nil {
		return
	}
	m.documentsRendered.WithLabelValues(target).Inc()
}

var Module = fx.Module("metrics",
	fx.Provide(New),
)
