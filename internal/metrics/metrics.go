// internal/metrics/metrics.go

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rendered and rejected receipts.
type Metrics struct {
	Rendered      *prometheus.CounterVec
	Rejected      *prometheus.CounterVec
	RenderSeconds prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "receipts_rendered_total",
			Help: "Receipts rendered to PDF, by entry point.",
		}, []string{"source"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "receipts_rejected_total",
			Help: "Submissions rejected before rendering, by reason.",
		}, []string{"reason"}),
		RenderSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "receipt_render_seconds",
			Help:    "Time spent laying out and drawing one receipt.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
	}
	reg.MustRegister(m.Rendered, m.Rejected, m.RenderSeconds)
	return m
}
