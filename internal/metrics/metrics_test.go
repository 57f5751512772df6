package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

func TestRecordPipelineRun(t *testing.T) {
	okBefore := testutil.ToFloat64(PipelineRuns.WithLabelValues(StatusSuccess))
	failBefore := testutil.ToFloat64(PipelineRuns.WithLabelValues(StatusFailure))
	cycleBefore := testutil.ToFloat64(PipelineDiagnostics.WithLabelValues(string(domain.CodeCraftingCycle), string(domain.SeverityWarning)))

	var diags domain.Diagnostics
	diags.Warn(domain.CodeCraftingCycle, "item-a", "cycle %s", "a")
	diags.Warn(domain.CodeCraftingCycle, "item-b", "cycle %s", "b")

	RecordPipelineRun(time.Second, nil, diags, map[string]int{domain.RecordKindItems: 42})
	RecordPipelineRun(time.Second, errors.New("boom"), domain.Diagnostics{}, nil)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(PipelineRuns.WithLabelValues(StatusSuccess)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(PipelineRuns.WithLabelValues(StatusFailure)))
	assert.Equal(t, cycleBefore+2, testutil.ToFloat64(PipelineDiagnostics.WithLabelValues(string(domain.CodeCraftingCycle), string(domain.SeverityWarning))))
	assert.Equal(t, 42.0, testutil.ToFloat64(DatasetRecords.WithLabelValues(domain.RecordKindItems)))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/item-screw", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
