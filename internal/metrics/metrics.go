// Package metrics exposes run counters on a private prometheus
// registry. The /metrics listener only runs in interval mode; a --once
// invocation just leaves the counters unscraped.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RunsTotal      prometheus.Counter
	AdmittedTotal  *prometheus.CounterVec
	CollectErrors  *prometheus.CounterVec
	LedgerSize     prometheus.Gauge
	LastRunSeconds prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ownership_watch",
			Name:      "runs_total",
			Help:      "Completed pipeline runs.",
		}),
		AdmittedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ownership_watch",
			Name:      "events_admitted_total",
			Help:      "Newly admitted disclosure events per source.",
		}, []string{"source"}),
		CollectErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ownership_watch",
			Name:      "collect_errors_total",
			Help:      "Primary feed collection failures per source.",
		}, []string{"source"}),
		LedgerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ownership_watch",
			Name:      "ledger_size",
			Help:      "Events currently retained in the ledger.",
		}),
		LastRunSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ownership_watch",
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last completed run.",
		}),
	}
	reg.MustRegister(m.RunsTotal, m.AdmittedTotal, m.CollectErrors, m.LedgerSize, m.LastRunSeconds)
	return m
}

// ObserveRun records the bookkeeping common to every completed run.
func (m *Metrics) ObserveRun(ledgerLen int, took time.Duration) {
	m.RunsTotal.Inc()
	m.LedgerSize.Set(float64(ledgerLen))
	m.LastRunSeconds.Set(took.Seconds())
}

// Serve starts the /metrics listener; it blocks, so callers run it in a
// goroutine.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
