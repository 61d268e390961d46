package mjml

import "github.com/zeromicro/go-zero/core/metric"

var renderDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
	Namespace: "plat_welcome",
	Subsystem: "layout",
	Name:      "render_duration_seconds",
	Help:      "MJML layout render duration in seconds",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
})
