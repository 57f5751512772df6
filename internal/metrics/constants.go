package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "arcdata_http_requests_total"
	MetricNameHTTPRequestDuration  = "arcdata_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "arcdata_http_requests_in_flight"
)

// Pipeline metric names
const (
	MetricNamePipelineRuns        = "arcdata_pipeline_runs_total"
	MetricNamePipelineDuration    = "arcdata_pipeline_duration_seconds"
	MetricNamePipelineDiagnostics = "arcdata_pipeline_diagnostics_total"
	MetricNameDatasetRecords      = "arcdata_dataset_records"
)

// Want-list metric names
const (
	MetricNameWantListExpansions = "arcdata_wantlist_expansions_total"
	MetricNameWantListCacheHits  = "arcdata_wantlist_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Pipeline metric help text
const (
	HelpTextPipelineRuns        = "Total number of pipeline runs by outcome"
	HelpTextPipelineDuration    = "Pipeline run duration in seconds"
	HelpTextPipelineDiagnostics = "Total number of data diagnostics reported by pipeline runs"
	HelpTextDatasetRecords      = "Number of records in the current canonical dataset"
)

// Want-list metric help text
const (
	HelpTextWantListExpansions = "Total number of want-list entry expansions computed"
	HelpTextWantListCacheHits  = "Total number of want-list expansions served from cache"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCode     = "code"
	LabelSeverity = "severity"
	LabelKind     = "kind"
)

// Pipeline run outcomes
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	PipelineLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
)
