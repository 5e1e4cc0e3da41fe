// Package metrics exposes a Prometheus registry tracking a DCSC run's
// progress: the iteration counter, the per-phase duration histogram,
// and the active-vertex gauge the driver sets after each
// FreezeAndReset to the number of vertices active on entry to it. Grounded on the /metrics HTTP handler pattern common
// to kubewharf-godel-rescheduler's metrics package and wyfcoding-pkg's
// observability helpers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every gauge/counter/histogram a Solve run updates.
type Metrics struct {
	Iterations     prometheus.Counter
	ActiveVertices prometheus.Gauge
	PhaseDuration  *prometheus.HistogramVec
	SCCCount       prometheus.Gauge
	LargestSCC     prometheus.Gauge
}

// New registers a fresh set of DCSC metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Iterations: factory.NewCounter(prometheus.CounterOpts{
			Name: "dscc_iterations_total",
			Help: "Number of completed DCSC iterations.",
		}),
		ActiveVertices: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dscc_active_vertices",
			Help: "Vertices that were active on entry to the last FreezeAndReset.",
		}),
		PhaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "dscc_phase_duration_seconds",
			Help: "Wall-clock duration of a single DCSC phase invocation.",
		}, []string{"phase"}),
		SCCCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dscc_scc_count",
			Help: "Number of strongly connected components found by the last completed run.",
		}),
		LargestSCC: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dscc_largest_scc_size",
			Help: "Size of the largest strongly connected component found by the last completed run.",
		}),
	}
}

// ObservePhase times fn under the named phase's histogram bucket.
func (m *Metrics) ObservePhase(phase string, fn func()) {
	timer := prometheus.NewTimer(m.PhaseDuration.WithLabelValues(phase))
	defer timer.ObserveDuration()
	fn()
}

// Handler returns the HTTP handler Serve should mount at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
