package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsCreated prometheus.Counter

	// Transaction metrics
	DepositsTotal    prometheus.Counter
	WithdrawalsTotal prometheus.Counter
	TransfersTotal   prometheus.Counter
	TransferAmount   prometheus.Histogram

	// Error metrics
	OperationErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		DepositsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_deposits_total",
			Help: "Total number of successful deposits",
		}),
		WithdrawalsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		TransfersTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_transfers_total",
			Help: "Total number of successful transfers",
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_operation_errors_total",
				Help: "Total number of rejected operations by type",
			},
			[]string{"operation"},
		),
	}
}
