package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Pipeline Metrics
var (
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePipelineRuns,
			Help: HelpTextPipelineRuns,
		},
		[]string{LabelStatus},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePipelineDuration,
			Help:    HelpTextPipelineDuration,
			Buckets: PipelineLatencyBuckets,
		},
	)

	PipelineDiagnostics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePipelineDiagnostics,
			Help: HelpTextPipelineDiagnostics,
		},
		[]string{LabelCode, LabelSeverity},
	)

	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameDatasetRecords,
			Help: HelpTextDatasetRecords,
		},
		[]string{LabelKind},
	)
)

// Want-list Metrics
var (
	WantListExpansions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWantListExpansions,
			Help: HelpTextWantListExpansions,
		},
	)

	WantListCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWantListCacheHits,
			Help: HelpTextWantListCacheHits,
		},
	)
)
