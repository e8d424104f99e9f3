package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DepositsTotal counts deposit runs by network and outcome
	DepositsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apex_deposits_total",
			Help: "Total number of deposit runs",
		},
		[]string{"network", "status"},
	)

	// DepositDuration tracks end to end deposit run time
	DepositDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apex_deposit_duration_seconds",
			Help:    "Deposit run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"network"},
	)

	// DepositAmount tracks the amount of collateral deposited
	DepositAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apex_deposit_amount",
			Help:    "Amount of collateral submitted for deposit",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 100, 1000, 10000},
		},
		[]string{"network"},
	)

	// TransactionsSent counts chain transactions by kind (allowance, deposit)
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apex_transactions_sent_total",
			Help: "Total number of transactions sent",
		},
		[]string{"kind", "status"},
	)

	// ConfirmationWait tracks how long transactions took to be mined
	ConfirmationWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "apex_confirmation_wait_seconds",
			Help:    "Time between submission and receipt",
			Buckets: []float64{3, 6, 12, 24, 48, 96, 192},
		},
	)

	// APIRequests counts exchange API calls by endpoint and outcome
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apex_api_requests_total",
			Help: "Total number of exchange API requests",
		},
		[]string{"endpoint", "status"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apex_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// GasUsed tracks gas used for Ethereum transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apex_gas_used",
			Help:    "Gas used for Ethereum transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"operation"},
	)
)

// WriteTextfile dumps the default registry in the node_exporter textfile
// format. It is a no-op when path is empty.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
