package holiday

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts cache traffic of a Loader. A nil *Metrics records nothing.
type Metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	fetchFailures *prometheus.CounterVec
	storeErrors   *prometheus.CounterVec
}

// NewMetrics creates the loader counters and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dateaware",
			Subsystem: "holiday",
			Name:      "cache_hits_total",
			Help:      "Holiday maps served from the persisted store.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dateaware",
			Subsystem: "holiday",
			Name:      "cache_misses_total",
			Help:      "Holiday map lookups that fell through to the remote source.",
		}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dateaware",
			Subsystem: "holiday",
			Name:      "fetch_failures_total",
			Help:      "Failed remote holiday fetches by reason.",
		}, []string{"reason"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dateaware",
			Subsystem: "holiday",
			Name:      "store_errors_total",
			Help:      "Holiday store failures by operation.",
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.fetchFailures, m.storeErrors)
	}
	return m
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) fetchFailed(reason string) {
	if m != nil {
		m.fetchFailures.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) storeFailed(op string) {
	if m != nil {
		m.storeErrors.WithLabelValues(op).Inc()
	}
}
