package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestDuration observes request latency per method and status.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "servicehub",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "status"})

// RequestTransitions counts successful service request status
// transitions, labeled by the status entered.
var RequestTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "servicehub",
	Name:      "request_transitions_total",
	Help:      "Successful service request status transitions",
}, []string{"to_status"})

// InvoicesIssued counts invoices generated.
var InvoicesIssued = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "servicehub",
	Name:      "invoices_issued_total",
	Help:      "Invoices issued for completed requests",
})

// PaymentsRecorded counts ledger entries, labeled by method.
var PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "servicehub",
	Name:      "payments_recorded_total",
	Help:      "Payments recorded against invoices",
}, []string{"method"})

// CommissionsOverdue counts commissions flipped to overdue by the sweep.
var CommissionsOverdue = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "servicehub",
	Name:      "commissions_overdue_total",
	Help:      "Commissions marked overdue by the dues sweep",
})
