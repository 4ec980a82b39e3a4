// Package metrics exposes prometheus counters for completion outcomes.
// Each Registry is private to one composition so tests never share state.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Step labels for the per-step failure counter.
const (
	StepNotification = "notification"
	StepLoyalty      = "loyalty"
	StepReceipt      = "receipt"
)

type Registry struct {
	reg *prometheus.Registry

	CompletionsSucceeded prometheus.Counter
	CompletionsPartial   prometheus.Counter
	StepFailures         *prometheus.CounterVec
	StaleOrdersClosed    prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	succeeded := prometheus.NewCounter(prometheus.CounterOpts{Name: "completion_runs_succeeded_total"})
	partial := prometheus.NewCounter(prometheus.CounterOpts{Name: "completion_runs_partial_total"})
	stepFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "completion_step_failures_total"},
		[]string{"step"},
	)
	staleClosed := prometheus.NewCounter(prometheus.CounterOpts{Name: "completion_stale_orders_closed_total"})

	r.MustRegister(succeeded, partial, stepFailures, staleClosed)
	return &Registry{
		reg:                  r,
		CompletionsSucceeded: succeeded,
		CompletionsPartial:   partial,
		StepFailures:         stepFailures,
		StaleOrdersClosed:    staleClosed,
	}
}

// RecordCompletion counts one completion run by its aggregate outcome.
func (r *Registry) RecordCompletion(success bool) {
	if success {
		r.CompletionsSucceeded.Inc()
		return
	}
	r.CompletionsPartial.Inc()
}

// RecordStepFailure counts one failed step by name.
func (r *Registry) RecordStepFailure(step string) {
	r.StepFailures.WithLabelValues(step).Inc()
}

// RecordStaleOrdersClosed counts orders closed by the auto-close sweep.
func (r *Registry) RecordStaleOrdersClosed(n int64) {
	r.StaleOrdersClosed.Add(float64(n))
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
