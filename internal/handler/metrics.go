package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kaspas",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of successfully placed orders",
		},
	)

	ordersPlacementFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kaspas",
			Subsystem: "orders",
			Name:      "placement_failed_total",
			Help:      "Total number of failed order placements by reason",
		},
		[]string{"reason"},
	)

	ordersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kaspas",
			Subsystem: "orders",
			Name:      "cancelled_total",
			Help:      "Total number of cancelled orders",
		},
	)

	statusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kaspas",
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of administrative status updates by target status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		ordersPlacementFailed,
		ordersCancelled,
		statusUpdates,
	)
}
