package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors, registered on the default registry and exposed
// on /metrics by the router.
var (
	PurchasesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vending_purchases_completed_total",
		Help: "Settled purchases.",
	})

	PurchasesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vending_purchases_rejected_total",
		Help: "Rejected purchase attempts by failure kind.",
	}, []string{"reason"})

	PointsSpent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vending_points_spent_total",
		Help: "Points debited across all settled purchases.",
	})

	RechargeRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vending_recharge_runs_total",
		Help: "Completed daily recharge runs.",
	})

	PointsRecharged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vending_points_recharged_total",
		Help: "Points credited by the daily recharge job.",
	})
)
