package news

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts cascade activity per source. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	attempts *prometheus.CounterVec
	hits     *prometheus.CounterVec
	items    *prometheus.CounterVec
	misses   prometheus.Counter
}

// NewMetrics creates the cascade metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tickerpulse",
			Subsystem: "news",
			Name:      "source_attempts_total",
			Help:      "Number of times a news source was queried.",
		}, []string{"source"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tickerpulse",
			Subsystem: "news",
			Name:      "source_hits_total",
			Help:      "Number of times a news source produced the cascade result.",
		}, []string{"source"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tickerpulse",
			Subsystem: "news",
			Name:      "items_total",
			Help:      "Raw items returned by the winning source, before deduplication.",
		}, []string{"source"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tickerpulse",
			Subsystem: "news",
			Name:      "cascade_misses_total",
			Help:      "Number of cascades where no source returned items.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.attempts, m.hits, m.items, m.misses)
	}
	return m
}

func (m *Metrics) attempt(source string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(source).Inc()
}

func (m *Metrics) hit(source string, n int) {
	if m == nil {
		return
	}
	m.hits.WithLabelValues(source).Inc()
	m.items.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) miss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}
