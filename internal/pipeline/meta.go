package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// NewMeta returns a meta document with every pass unrun and unapproved.
func NewMeta() *domain.PipelineMeta {
	meta := &domain.PipelineMeta{
		Version: MetaVersion,
		Passes:  make(map[string]domain.PassMeta, len(PassKeys)),
	}
	for _, key := range PassKeys {
		meta.Passes[key] = domain.PassMeta{Label: passLabels[key]}
	}
	return meta
}

// EnsureMeta upgrades a loaded document: nil or outdated documents are
// replaced and missing passes are added.
func EnsureMeta(meta *domain.PipelineMeta) *domain.PipelineMeta {
	if meta == nil || meta.Version != MetaVersion {
		return NewMeta()
	}
	if meta.Passes == nil {
		meta.Passes = make(map[string]domain.PassMeta, len(PassKeys))
	}
	for _, key := range PassKeys {
		if _, ok := meta.Passes[key]; !ok {
			meta.Passes[key] = domain.PassMeta{Label: passLabels[key]}
		}
	}
	return meta
}

// RecordRun stamps the passes that ran and the final counts of result.
func RecordRun(meta *domain.PipelineMeta, result Result, now time.Time) *domain.PipelineMeta {
	meta = EnsureMeta(meta)
	stamp := now.UTC()

	for key, records := range result.Stats {
		pass := meta.Passes[key]
		pass.Batches = 1
		pass.Records = records
		pass.LastRunAt = &stamp
		meta.Passes[key] = pass
	}

	counts := result.Dataset.Counts()
	meta.Final = domain.FinalMeta{
		Items:       counts[domain.RecordKindItems],
		Quests:      counts[domain.RecordKindQuests],
		Chains:      counts[domain.RecordKindChains],
		Upgrades:    counts[domain.RecordKindUpgrades],
		Projects:    counts[domain.RecordKindProjects],
		Vendors:     counts[domain.RecordKindVendors],
		Diagnostics: result.Diagnostics.Len(),
		RunID:       result.RunID,
		UpdatedAt:   &stamp,
	}
	meta.GeneratedAt = &stamp
	return meta
}

// Approve sets a pass's approval flag. Notes, when given, are stamped with
// the approval date. Pass keys are case-insensitive.
func Approve(meta *domain.PipelineMeta, pass string, approved bool, notes string, now time.Time) (domain.PassMeta, error) {
	if meta == nil {
		return domain.PassMeta{}, fmt.Errorf("%w: %s", domain.ErrUnknownPass, pass)
	}
	key := strings.ToUpper(strings.TrimSpace(pass))
	current, ok := meta.Passes[key]
	if !ok {
		return domain.PassMeta{}, fmt.Errorf("%w: %s", domain.ErrUnknownPass, pass)
	}

	stamp := now.UTC()
	current.Approved = approved
	current.LastRunAt = &stamp
	if notes = strings.TrimSpace(notes); notes != "" {
		current.Notes = fmt.Sprintf(approvalNotesFmt, notes, stamp.Format(time.DateOnly))
	}
	meta.Passes[key] = current
	meta.GeneratedAt = &stamp
	return current, nil
}
