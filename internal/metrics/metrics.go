package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream metrics
var (
	// UpstreamRequestsTotal counts calls to third-party weather and IP services
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agri_weather_upstream_requests_total",
			Help: "Total number of requests made to upstream providers",
		},
		[]string{"provider", "status"},
	)

	// UpstreamRequestDuration tracks upstream latency
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agri_weather_upstream_request_duration_seconds",
			Help:    "Duration of upstream provider requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// CacheLookupsTotal counts forecast cache lookups by outcome
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agri_weather_cache_lookups_total",
			Help: "Forecast cache lookups by result (hit, miss, error)",
		},
		[]string{"provider", "result"},
	)
)

// Domain metrics
var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agri_weather_analyses_total",
			Help: "Agricultural analyses produced, by crop and risk level",
		},
		[]string{"crop", "risk_level"},
	)

	HistoryEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agri_weather_history_entries",
			Help: "Number of entries currently held in a rolling search history",
		},
		[]string{"history"},
	)

	// AppInfo provides static information about the application
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agri_weather_app_info",
			Help: "Application information (always 1)",
		},
		[]string{"version"},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agri_weather_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	AppStartTime.SetToCurrentTime()
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version).Set(1)
}

// RecordUpstream records one upstream request
func RecordUpstream(provider string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(provider, status).Inc()
	UpstreamRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func RecordCacheLookup(provider, result string) {
	CacheLookupsTotal.WithLabelValues(provider, result).Inc()
}

func RecordAnalysis(crop, riskLevel string) {
	AnalysesTotal.WithLabelValues(crop, riskLevel).Inc()
}

func SetHistorySize(name string, size int) {
	HistoryEntries.WithLabelValues(name).Set(float64(size))
}
