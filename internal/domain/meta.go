package domain

import "time"

// PassMeta tracks one review pass of the import pipeline.
type PassMeta struct {
	Label     string     `json:"label"`
	Batches   int        `json:"batches"`
	Records   int        `json:"records"`
	LastRunAt *time.Time `json:"lastRunAt"`
	Approved  bool       `json:"approved"`
	Notes     string     `json:"notes,omitempty"`
}

// FinalMeta summarizes the dataset written by the last run.
type FinalMeta struct {
	Items       int        `json:"items"`
	Quests      int        `json:"quests"`
	Chains      int        `json:"chains"`
	Upgrades    int        `json:"upgrades"`
	Projects    int        `json:"projects"`
	Vendors     int        `json:"vendors"`
	Diagnostics int        `json:"diagnostics"`
	RunID       string     `json:"runId,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// PipelineMeta is the persisted pipeline status document.
type PipelineMeta struct {
	Version     int                 `json:"version"`
	GeneratedAt *time.Time          `json:"generatedAt"`
	Passes      map[string]PassMeta `json:"passes"`
	Final       FinalMeta           `json:"final"`
}
