// Package metrics exposes pipeline activity as Prometheus collectors.
//
// Every Recorder owns a private registry so that tests and repeated runs in
// one process never collide on the global default registerer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "almanac"

// Lookup outcome label values.
const (
	OutcomeMapped   = "mapped"
	OutcomeIdentity = "identity"
)

// Recorder collects pipeline metrics. It implements pipeline.Observer and
// is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	seeds       prometheus.Counter
	lookups     *prometheus.CounterVec
	sources     *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// New builds a Recorder with its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		seeds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeds_processed_total",
			Help:      "Seeds threaded through every stage of a pipeline.",
		}),
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_lookups_total",
			Help:      "Stage lookups by stage and outcome.",
		}, []string{"stage", "outcome"}),
		sources: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sources_total",
			Help:      "Almanac sources processed by result.",
		}, []string{"result"}), // "ok" or "error"
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time to compute all final values of one source.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
	}
}

// ObserveLookup counts one stage lookup.
func (r *Recorder) ObserveLookup(stage string, matched bool) {
	outcome := OutcomeIdentity
	if matched {
		outcome = OutcomeMapped
	}
	r.lookups.WithLabelValues(stage, outcome).Inc()
}

// ObserveSeed counts one completed seed.
func (r *Recorder) ObserveSeed() {
	r.seeds.Inc()
}

// ObserveRun records the duration of one source's run.
func (r *Recorder) ObserveRun(d time.Duration) {
	r.runDuration.Observe(d.Seconds())
}

// ObserveSource counts a processed source by outcome.
func (r *Recorder) ObserveSource(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.sources.WithLabelValues(result).Inc()
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// SeedsCounter exposes the seeds counter for inspection.
func (r *Recorder) SeedsCounter() prometheus.Counter {
	return r.seeds
}

// LookupCounter exposes one stage/outcome lookup counter for inspection.
func (r *Recorder) LookupCounter(stage, outcome string) prometheus.Counter {
	return r.lookups.WithLabelValues(stage, outcome)
}

// SourcesCounter exposes the per-result sources counter for inspection.
func (r *Recorder) SourcesCounter(result string) prometheus.Counter {
	return r.sources.WithLabelValues(result)
}
