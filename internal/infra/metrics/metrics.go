package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics — счётчики предметной области. nil-значение безопасно: все методы
// превращаются в no-op, так удобно в тестах.
type Metrics struct {
	ordersSubmitted prometheus.Counter
	orderLines      prometheus.Counter
	notifications   *prometheus.CounterVec
	ledgerOps       *prometheus.CounterVec
	pinChecks       *prometheus.CounterVec
	usageRecorded   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ordersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "supplyhub",
			Name:      "orders_submitted_total",
			Help:      "Orders persisted by the submission workflow.",
		}),
		orderLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "supplyhub",
			Name:      "order_lines_total",
			Help:      "Items across all submitted orders.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supplyhub",
			Name:      "notifications_total",
			Help:      "Order notification attempts by result.",
		}, []string{"result"}),
		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supplyhub",
			Name:      "restock_ledger_ops_total",
			Help:      "Restock flag operations by action.",
		}, []string{"action"}),
		pinChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supplyhub",
			Name:      "pin_checks_total",
			Help:      "Manager PIN validations by result.",
		}, []string{"result"}),
		usageRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "supplyhub",
			Name:      "usage_records_total",
			Help:      "Items taken off the shelf.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ordersSubmitted, m.orderLines, m.notifications, m.ledgerOps, m.pinChecks, m.usageRecorded)
	}
	return m
}

func (m *Metrics) OrderSubmitted(lines int) {
	if m == nil {
		return
	}
	m.ordersSubmitted.Inc()
	m.orderLines.Add(float64(lines))
}

func (m *Metrics) Notification(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.notifications.WithLabelValues("sent").Inc()
		return
	}
	m.notifications.WithLabelValues("failed").Inc()
}

// LedgerOp action: request | clear | clear_all
func (m *Metrics) LedgerOp(action string) {
	if m == nil {
		return
	}
	m.ledgerOps.WithLabelValues(action).Inc()
}

func (m *Metrics) PinCheck(valid bool) {
	if m == nil {
		return
	}
	if valid {
		m.pinChecks.WithLabelValues("valid").Inc()
		return
	}
	m.pinChecks.WithLabelValues("invalid").Inc()
}

func (m *Metrics) UsageRecorded() {
	if m == nil {
		return
	}
	m.usageRecorded.Inc()
}
