package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "number of orders created",
		},
	)
	OrderEventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_events_dropped_total",
			Help: "order events lost to publish failures",
		},
	)
	StatusCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "status_cache_hits_total",
			Help: "order status reads served from cache",
		},
	)
	StatusCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "status_cache_misses_total",
			Help: "order status reads that fell through to the store",
		},
	)
	PaymentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "payments processed",
		},
	)
	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "order notifications delivered",
		},
	)
	NotificationsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "queue messages rejected without requeue",
		},
	)
	AnalyticsEvents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_total",
			Help: "payment events observed by the analytics consumer",
		},
	)
)

func Init() {
	prometheus.MustRegister(
		OrdersCreated,
		OrderEventsDropped,
		StatusCacheHits,
		StatusCacheMisses,
		PaymentsProcessed,
		NotificationsSent,
		NotificationsDropped,
		AnalyticsEvents,
	)
}
