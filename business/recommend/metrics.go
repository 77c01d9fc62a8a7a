package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StrategyContributionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_strategy_contributions_total",
			Help: "Count of recommendations admitted into merged output, by strategy.",
		},
		[]string{"strategy"},
	)

	PurchaseEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_purchase_events_total",
			Help: "Count of ingested purchase events.",
		},
	)
)

func init() {
	prometheus.MustRegister(StrategyContributionsTotal, PurchaseEventsTotal)
}
