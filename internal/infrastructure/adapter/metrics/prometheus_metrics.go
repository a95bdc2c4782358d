package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// PrometheusMetrics implements the Metrics interface with Prometheus collectors
type PrometheusMetrics struct {
	betsPlaced      prometheus.Counter
	betsCancelled   prometheus.Counter
	stakeCents      prometheus.Histogram
	matchesSettled  prometheus.Counter
	betsResolved    *prometheus.CounterVec
	payoutsCredited prometheus.Counter
	payoutCents     prometheus.Counter
}

// NewPrometheusMetrics creates and registers the ledger collectors
func NewPrometheusMetrics(registerer prometheus.Registerer) coreport.Metrics {
	m := &PrometheusMetrics{
		betsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wager_bets_placed_total",
			Help: "Number of bets accepted",
		}),
		betsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wager_bets_cancelled_total",
			Help: "Number of bets cancelled and refunded",
		}),
		stakeCents: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wager_stake_cents",
			Help:    "Stake distribution of accepted bets in cents",
			Buckets: prometheus.ExponentialBuckets(100000, 2, 5),
		}),
		matchesSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wager_matches_settled_total",
			Help: "Number of settlement runs completed",
		}),
		betsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_bets_resolved_total",
			Help: "Number of bets resolved by settlement, by outcome",
		}, []string{"outcome"}),
		payoutsCredited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wager_payouts_credited_total",
			Help: "Number of winning payouts credited",
		}),
		payoutCents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wager_payout_cents_total",
			Help: "Total amount credited to winners in cents",
		}),
	}

	registerer.MustRegister(
		m.betsPlaced,
		m.betsCancelled,
		m.stakeCents,
		m.matchesSettled,
		m.betsResolved,
		m.payoutsCredited,
		m.payoutCents,
	)

	return m
}

// BetPlaced records a successfully placed bet and its stake
func (m *PrometheusMetrics) BetPlaced(stakeCents int64) {
	m.betsPlaced.Inc()
	m.stakeCents.Observe(float64(stakeCents))
}

// BetCancelled records a cancelled bet and the refunded stake
func (m *PrometheusMetrics) BetCancelled(stakeCents int64) {
	m.betsCancelled.Inc()
}

// MatchSettled records a completed settlement run
func (m *PrometheusMetrics) MatchSettled(wonBets, lostBets int) {
	m.matchesSettled.Inc()
	m.betsResolved.WithLabelValues("won").Add(float64(wonBets))
	m.betsResolved.WithLabelValues("lost").Add(float64(lostBets))
}

// PayoutCredited records a winning payout applied to a balance
func (m *PrometheusMetrics) PayoutCredited(amountCents int64) {
	m.payoutsCredited.Inc()
	m.payoutCents.Add(float64(amountCents))
}
