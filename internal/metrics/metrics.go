package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClaimsTotal counts domain claims by chain, mode and outcome
	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_claims_total",
			Help: "Total number of domain claims handled",
		},
		[]string{"chain", "mode", "status"},
	)

	// ClaimDuration tracks end-to-end claim processing time
	ClaimDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fusion_claim_duration_seconds",
			Help:    "Claim processing duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"mode"},
	)

	// ProofVerifications counts proof verifications by kind and result
	ProofVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_proof_verifications_total",
			Help: "Total number of claimant proof verifications",
		},
		[]string{"kind", "result"},
	)

	// ServerProofsIssued counts server proofs issued per chain
	ServerProofsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_server_proofs_issued_total",
			Help: "Total number of server proofs issued",
		},
		[]string{"chain", "status"},
	)

	// ChainCalls counts read calls sent to each chain
	ChainCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_chain_calls_total",
			Help: "Total number of contract read calls",
		},
		[]string{"chain", "method", "status"},
	)

	// TransactionsSent counts transactions sent to each chain
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_transactions_sent_total",
			Help: "Total number of transactions sent",
		},
		[]string{"chain", "status"},
	)

	// DepositsCredited counts deposit credit attempts by outcome
	DepositsCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_deposits_credited_total",
			Help: "Total number of deposit credit attempts",
		},
		[]string{"chain", "status"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// GasUsed tracks gas used for submitted transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fusion_gas_used",
			Help:    "Gas used for submitted transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 500000, 1000000, 2000000},
		},
		[]string{"operation"},
	)

	// LastNonce tracks the last nonce assigned to the signer per chain
	LastNonce = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fusion_signer_last_nonce",
			Help: "Last nonce assigned to the server signer by chain",
		},
		[]string{"chain"},
	)
)
