package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordbreak",
			Name:      "segment_queries_total",
			Help:      "Segmentation queries answered, by outcome.",
		}, []string{"segmentable"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wordbreak",
			Name:      "segment_duration_seconds",
			Help:      "Time spent segmenting one query.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	reg.MustRegister(m.queries, m.duration)
	return m
}

func (m *metrics) observe(segmentable bool, took time.Duration) {
	m.queries.WithLabelValues(strconv.FormatBool(segmentable)).Inc()
	m.duration.Observe(took.Seconds())
}
