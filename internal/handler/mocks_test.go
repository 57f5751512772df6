package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockDatasets mocks pipeline.Service
type MockDatasets struct {
	mock.Mock
}

func (m *MockDatasets) Current() (*pipeline.Snapshot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Snapshot), args.Error(1)
}

func (m *MockDatasets) Load(ctx context.Context) (*pipeline.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Snapshot), args.Error(1)
}

func (m *MockDatasets) Reload(ctx context.Context) (*pipeline.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Snapshot), args.Error(1)
}

// MockWantList mocks wantlist.Service
type MockWantList struct {
	mock.Mock
}

func (m *MockWantList) List(ctx context.Context) ([]domain.WantListEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.WantListEntry)
	return entries, args.Error(1)
}

func (m *MockWantList) Add(ctx context.Context, itemRef string, qty int, reason string) (*domain.WantListEntry, error) {
	args := m.Called(ctx, itemRef, qty, reason)
	entry, _ := args.Get(0).(*domain.WantListEntry)
	return entry, args.Error(1)
}

func (m *MockWantList) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWantList) Resolve(ctx context.Context, ignoredCategories []string) ([]domain.WantListResolvedEntry, error) {
	args := m.Called(ctx, ignoredCategories)
	resolved, _ := args.Get(0).([]domain.WantListResolvedEntry)
	return resolved, args.Error(1)
}

func (m *MockWantList) Expand(ctx context.Context, entries []domain.WantListEntry, ignoredCategories []string) ([]domain.WantListResolvedEntry, error) {
	args := m.Called(ctx, entries, ignoredCategories)
	resolved, _ := args.Get(0).([]domain.WantListResolvedEntry)
	return resolved, args.Error(1)
}

func (m *MockWantList) SetItems(ctx context.Context, items []domain.Item) {
	m.Called(ctx, items)
}

func testSnapshot() *pipeline.Snapshot {
	snap := &pipeline.Snapshot{
		RunID: "run-1",
		Dataset: domain.Dataset{
			Items: []domain.Item{
				{ID: "item-screw", Name: "Screw", Slug: "screw", Category: "Basic Material"},
				{ID: "item-widget", Name: "Widget", Slug: "widget", Category: "Gadget"},
				{ID: "item-trinket", Name: "Golden Trinket", Slug: "golden-trinket", Category: "Trinket"},
			},
			Quests: []domain.Quest{
				{ID: "quest-intro", Name: "Intro", ChainID: "chain-intro"},
				{ID: "quest-two", Name: "Two", ChainID: "chain-intro"},
				{ID: "quest-lone", Name: "Lone", ChainID: "chain-lone"},
			},
			QuestChains: []domain.QuestChain{
				{ID: "chain-intro", Name: "Intro", Stages: []string{"quest-intro", "quest-two"}},
				{ID: "chain-lone", Name: "Lone", Stages: []string{"quest-lone"}},
			},
			Upgrades: []domain.UpgradePack{
				{ID: "upgrade-workbench-level-1", Name: "Workbench · Level 1", Bench: "Workbench", Level: 1},
				{ID: "upgrade-scrappy-level-1", Name: "Scrappy · Level 1", Bench: "Scrappy", Level: 1},
			},
			Projects: []domain.Project{{ID: "project-tower", Name: "Signal Tower"}},
			Vendors:  []domain.Vendor{},
		},
	}
	snap.Diagnostics.Warn(domain.CodeMissingReference, "quest-intro", "missing %s", "gizmo")
	snap.Diagnostics.Add(domain.SeverityError, domain.CodeMalformedRecord, "items", "broken")
	return snap
}
