package metrics

import (
	"time"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// RecordPipelineRun records the outcome of one pipeline run. counts may be
// nil for failed runs.
func RecordPipelineRun(elapsed time.Duration, err error, diags domain.Diagnostics, counts map[string]int) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	PipelineRuns.WithLabelValues(status).Inc()
	PipelineDuration.Observe(elapsed.Seconds())

	for _, d := range diags.Items {
		PipelineDiagnostics.WithLabelValues(string(d.Code), string(d.Severity)).Inc()
	}
	for kind, n := range counts {
		DatasetRecords.WithLabelValues(kind).Set(float64(n))
	}
}
