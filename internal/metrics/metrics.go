// Package metrics exports SoulSync request and domain counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "soulsync"

// Coach reply outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeUnavailable = "unavailable"
	OutcomeQuota       = "quota_exceeded"
)

// Recorder holds every collector the service reports. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	assessments    prometheus.Counter
	journalEntries *prometheus.CounterVec
	coachReplies   *prometheus.CounterVec
}

// New registers the collectors on reg (the default registerer when nil).
// Registering twice against the same registry reuses the existing
// collectors.
func New(namespace string, reg prometheus.Registerer) (*Recorder, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		assessments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_submitted_total",
			Help:      "Chakra assessments stored.",
		}),
		journalEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journal_entries_total",
			Help:      "Journal entries created by sentiment label.",
		}, []string{"sentiment"}),
		coachReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coach_replies_total",
			Help:      "Coach chat turns by coach type and outcome.",
		}, []string{"coach", "outcome"}),
	}

	var err error
	if r.httpRequests, err = register(reg, r.httpRequests); err != nil {
		return nil, fmt.Errorf("register http requests counter: %w", err)
	}
	if r.httpDuration, err = register(reg, r.httpDuration); err != nil {
		return nil, fmt.Errorf("register http duration histogram: %w", err)
	}
	if r.assessments, err = register(reg, r.assessments); err != nil {
		return nil, fmt.Errorf("register assessments counter: %w", err)
	}
	if r.journalEntries, err = register(reg, r.journalEntries); err != nil {
		return nil, fmt.Errorf("register journal counter: %w", err)
	}
	if r.coachReplies, err = register(reg, r.coachReplies); err != nil {
		return nil, fmt.Errorf("register coach replies counter: %w", err)
	}
	return r, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveHTTP records one finished request. route should be the router
// pattern, not the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTP(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (r *Recorder) AssessmentSubmitted() {
	if r == nil {
		return
	}
	r.assessments.Inc()
}

func (r *Recorder) JournalEntryCreated(sentiment string) {
	if r == nil {
		return
	}
	r.journalEntries.WithLabelValues(sentiment).Inc()
}

func (r *Recorder) CoachReply(coach, outcome string) {
	if r == nil {
		return
	}
	r.coachReplies.WithLabelValues(coach, outcome).Inc()
}

// Handler serves the metrics gathered by g (the default gatherer when nil).
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
