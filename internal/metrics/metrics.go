// Package metrics exposes Prometheus instrumentation for the arbitrage
// scanner, following the promauto registration style of
// x/dex/keeper/metrics.go — package-level vectors built once via
// promauto, labeled by the same kind of dimensions (pool/token) the
// on-chain keeper uses, plus a scan-cycle histogram this offchain scanner
// needs that the keeper has no equivalent for.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoutesEvaluated counts every route CalculateRoute priced, labeled by
	// whether it survived simulation.
	RoutesEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_arb_routes_evaluated_total",
			Help: "Total number of candidate routes simulated",
		},
		[]string{"outcome"},
	)

	// OpportunitiesFound counts TradePlans the driver decided were
	// profitable, labeled by the borrowed token.
	OpportunitiesFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_arb_opportunities_found_total",
			Help: "Total number of profitable arbitrage opportunities emitted",
		},
		[]string{"borrow_token"},
	)

	// ScanLatency records the wall-clock cost of one full driver pass.
	ScanLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "paw_arb_scan_latency_seconds",
			Help:    "Latency of one full arbitrage scan cycle",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	// BestProfitRaw tracks the raw expected profit of the most recent
	// opportunity found, labeled by the borrowed token.
	BestProfitRaw = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "paw_arb_best_profit_raw",
			Help: "Raw expected profit (ExpectedReturn - BorrowAmount) of the most recent opportunity",
		},
		[]string{"borrow_token"},
	)

	// NonconvergentSolves counts root-finder failures surfaced up through
	// the stable-pool engine, labeled by which solve failed.
	NonconvergentSolves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_arb_nonconvergent_solves_total",
			Help: "Total number of root-finder solves that failed to converge",
		},
		[]string{"solve"},
	)
)
