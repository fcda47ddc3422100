package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	restockProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "restock_processed_total",
			Help:      "Total number of successfully processed restock messages",
		},
	)

	restockFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "restock_failed_total",
			Help:      "Total number of failed restock processing attempts",
		},
	)

	restockDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "restock_dlq_total",
			Help:      "Total number of restock messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	restockProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "restock_processing_duration_seconds",
			Help:      "Histogram of restock processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	restockInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "restock_in_progress",
			Help:      "Number of restock messages currently being processed",
		},
	)
)

var (
	checkoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "checkout_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	cancelTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "cancel_total",
			Help:      "Total number of order cancellations by result",
		},
		[]string{"result"},
	)

	stockConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "stock_conflicts_total",
			Help:      "Total number of checkouts rejected because of insufficient stock",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		restockProcessed,
		restockFailed,
		restockDLQ,
		commitErrors,
		restockProcessingDuration,
		restockInProgress,

		checkoutTotal,
		checkoutDuration,
		cancelTotal,
		stockConflicts,
	)
}
