package notify

import "github.com/zeromicro/go-zero/core/metric"

var (
	notificationsTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_welcome",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "New-user notifications by variant and result",
		Labels:    []string{"variant", "result"},
	})

	emailsSent = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_welcome",
		Subsystem: "notify",
		Name:      "emails_sent_total",
		Help:      "Total emails sent successfully",
		Labels:    []string{"kind"},
	})

	emailsFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_welcome",
		Subsystem: "notify",
		Name:      "emails_failed_total",
		Help:      "Total emails whose dispatch failed",
		Labels:    []string{"kind"},
	})

	dispatchDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_welcome",
		Subsystem: "notify",
		Name:      "dispatch_duration_seconds",
		Help:      "Email dispatch duration in seconds",
		Labels:    []string{"kind"},
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})
)
