package handler

import (
	"net/http"
	"time"

	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
)

// ReloadResponse summarizes an in-memory pipeline run.
type ReloadResponse struct {
	RunID       string         `json:"runId"`
	BuiltAt     time.Time      `json:"builtAt"`
	Counts      map[string]int `json:"counts"`
	Diagnostics int            `json:"diagnostics"`
}

// HandleReload reruns the pipeline over the source files and serves its result.
// Nothing is written to disk.
// @Summary Rebuild the dataset in memory
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload [post]
func HandleReload(datasets pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := datasets.Reload(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionReload, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgDatasetReloaded, "run_id", snap.RunID)
		respondJSON(w, http.StatusOK, ReloadResponse{
			RunID:       snap.RunID,
			BuiltAt:     snap.BuiltAt,
			Counts:      snap.Dataset.Counts(),
			Diagnostics: snap.Diagnostics.Len(),
		})
	}
}
