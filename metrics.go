// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "github.com/prometheus/client_golang/prometheus"

// PrometheusSink is a [RateLimitMetrics] backed by two Prometheus
// counters, labeled by the pipe name passed to [NewPrometheusSink].
type PrometheusSink struct {
	name       string
	forwarded  prometheus.Counter
	suppressed prometheus.Counter
}

var _ RateLimitMetrics = (*PrometheusSink)(nil)

// NewPrometheusSink registers (on reg) and returns a [PrometheusSink]
// for a RateLimit segment identified by name. Pass
// [prometheus.DefaultRegisterer] to use the global registry.
func NewPrometheusSink(reg prometheus.Registerer, name string) *PrometheusSink {
	forwarded := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "pipe_ratelimit_forwarded_total",
		Help:        "Values forwarded immediately or flushed by a RateLimit segment.",
		ConstLabels: prometheus.Labels{"pipe": name},
	})
	suppressed := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "pipe_ratelimit_suppressed_total",
		Help:        "Values suppressed (deferred) by a RateLimit segment.",
		ConstLabels: prometheus.Labels{"pipe": name},
	})
	reg.MustRegister(forwarded, suppressed)
	return &PrometheusSink{name: name, forwarded: forwarded, suppressed: suppressed}
}

// IncForwarded implements [RateLimitMetrics].
func (s *PrometheusSink) IncForwarded() {
	s.forwarded.Inc()
}

// IncSuppressed implements [RateLimitMetrics].
func (s *PrometheusSink) IncSuppressed() {
	s.suppressed.Inc()
}
