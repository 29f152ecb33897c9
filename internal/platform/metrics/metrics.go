package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CallbacksVerified prometheus.Counter
	CallbacksRejected prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		CallbacksVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newebpay_callbacks_verified_total",
			Help: "Total number of payment callbacks that passed verification",
		}),
		CallbacksRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newebpay_callbacks_rejected_total",
			Help: "Total number of payment callbacks rejected by verification",
		}),
	}
}

func (m *Metrics) IncrementVerified() {
	m.CallbacksVerified.Inc()
}

func (m *Metrics) IncrementRejected() {
	m.CallbacksRejected.Inc()
}
