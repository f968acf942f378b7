package envelope

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the envelope's operational counters.
type Metrics struct {
	invocations   *prometheus.CounterVec
	auditFailures prometheus.Counter
}

// NewMetrics creates and registers the envelope counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_invocations_total",
				Help: "Tool invocations by tool name and outcome.",
			},
			[]string{"tool", "outcome"},
		),
		auditFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tool_audit_write_failures_total",
				Help: "Audit rows that could not be persisted.",
			},
		),
	}

	reg.MustRegister(m.invocations, m.auditFailures)
	return m
}

func (m *Metrics) countInvocation(tool string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.invocations.WithLabelValues(tool, outcome).Inc()
}

func (m *Metrics) countAuditFailure() {
	if m == nil {
		return
	}
	m.auditFailures.Inc()
}
