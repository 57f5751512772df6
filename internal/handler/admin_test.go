package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

func TestHandleReload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		datasets := &MockDatasets{}
		datasets.On("Reload", mock.Anything).Return(testSnapshot(), nil)

		w := httptest.NewRecorder()
		HandleReload(datasets).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ReloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "run-1", resp.RunID)
		assert.Equal(t, 3, resp.Counts[domain.RecordKindItems])
		assert.Equal(t, 2, resp.Diagnostics)
	})

	t.Run("failure", func(t *testing.T) {
		datasets := &MockDatasets{}
		datasets.On("Reload", mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		HandleReload(datasets).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}
