// Package rawdata decodes loosely-typed game-data exports into typed raw
// records. Decoding is tolerant: a malformed entry is reported and skipped,
// malformed fields fall back to defaults.
package rawdata

import "github.com/osse101/ArcCompanion_Go/internal/localized"

// Quantity is one raw id/quantity pair, kept in source order.
type Quantity struct {
	RawID string
	Qty   int
}

// Item is a raw item definition.
type Item struct {
	ID            string
	Name          localized.Text
	Description   localized.Text
	Type          string
	Rarity        string
	Value         float64
	HasValue      bool
	Recipe        []Quantity
	RecyclesInto  []Quantity
	SalvagesInto  []Quantity
	ImageFilename string
}

// YieldMap returns the recycle map, falling back to the salvage map.
func (i Item) YieldMap() []Quantity {
	if i.RecyclesInto != nil {
		return i.RecyclesInto
	}
	return i.SalvagesInto
}

// Quest is a raw quest definition with its declared graph edges.
type Quest struct {
	ID               string
	Name             localized.Text
	Trader           localized.Text
	Objectives       []localized.Text
	RequiredItems    []Quantity
	RewardItems      []Quantity
	XP               int
	PreviousQuestIDs []string
	NextQuestIDs     []string
}

// Module is a raw hideout/workshop module with its upgrade levels.
type Module struct {
	ID     string
	Name   localized.Text
	Levels []ModuleLevel
}

// ModuleLevel is one upgrade level of a Module. Level is 0 when absent.
type ModuleLevel struct {
	Level        int
	Requirements []Quantity
}

// Project is a raw expedition project.
type Project struct {
	ID          string
	Name        localized.Text
	Description localized.Text
	Phases      []ProjectPhase
}

// ProjectPhase is one phase of a Project. Phase is 0 when absent.
type ProjectPhase struct {
	Phase        int
	Name         localized.Text
	Description  localized.Text
	Requirements []Quantity
}

// Export bundles every raw section of one pipeline run.
type Export struct {
	Items    []Item
	Quests   []Quest
	Modules  []Module
	Projects []Project
}
