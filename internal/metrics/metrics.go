package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method"},
	)

	MetadataRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_metadata_requests_total",
			Help: "Total number of metadata requests by outcome",
		},
		[]string{"outcome"},
	)

	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallery_cache_hits_total",
			Help: "Metadata cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallery_cache_misses_total",
			Help: "Metadata cache misses",
		},
	)

	CachedRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gallery_cached_records",
			Help: "Number of metadata records currently cached",
		},
	)

	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gallery_decode_duration_seconds",
			Help:    "Duration of image decode and analysis in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	DecodeFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallery_decode_failures_total",
			Help: "Files that could not be decoded as images",
		},
	)

	ImagesServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallery_images_served_total",
			Help: "Raw image files served",
		},
	)

	ImagesServedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallery_images_served_bytes_total",
			Help: "Raw image bytes served",
		},
	)

	appInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gallery_app_info",
			Help: "Application version information",
		},
		[]string{"version", "environment"},
	)
)

func SetAppInfo(version, environment string) {
	appInfo.WithLabelValues(version, environment).Set(1)
}
