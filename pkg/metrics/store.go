package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records dispatched state actions and checkout activity.
type StoreMetrics struct {
	actions  *prometheus.CounterVec
	ignored  *prometheus.CounterVec
	orders   prometheus.Counter
	checkout prometheus.Histogram
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_actions_total",
		Help: "State actions dispatched, by slice and action.",
	}, []string{"slice", "action"})
	ignored := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_actions_ignored_total",
		Help: "Dispatched actions that resolved to a silent no-op.",
	}, []string{"slice", "action"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_orders_total",
		Help: "Orders placed through checkout.",
	})
	checkout := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_place_order_seconds",
		Help:    "Duration of place-order calls, including the artificial delay.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(actions, ignored, orders, checkout)
	return &StoreMetrics{
		actions:  actions,
		ignored:  ignored,
		orders:   orders,
		checkout: checkout,
	}
}

// ObserveAction counts a dispatched action and whether it applied.
func (m *StoreMetrics) ObserveAction(slice, action string, applied bool) {
	if m == nil || m.actions == nil {
		return
	}
	m.actions.WithLabelValues(normalizeLabel(slice), normalizeLabel(action)).Inc()
	if !applied {
		m.ignored.WithLabelValues(normalizeLabel(slice), normalizeLabel(action)).Inc()
	}
}

// IncOrders increments the placed-order counter.
func (m *StoreMetrics) IncOrders() {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.Inc()
}

// ObserveCheckout records the duration of a place-order call.
func (m *StoreMetrics) ObserveCheckout(duration time.Duration) {
	if m == nil || m.checkout == nil {
		return
	}
	m.checkout.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
