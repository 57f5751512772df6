package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
	"github.com/osse101/ArcCompanion_Go/internal/storage"
)

const (
	fixtureItems = `[
		{"id":"widget","name":{"en":"Widget"},"type":"Gadget","value":50,"recipe":{"screw":2,"plate":1}},
		{"id":"screw","name":"Screw","type":"Basic Material","value":"1"},
		{"id":"plate","name":"Plate","type":"Basic Material"}
	]`
	fixtureQuests = `[
		{"id":"q_intro","name":"Intro","trader":"Celeste","nextQuestIds":["q_two"],
		 "requiredItemIds":[{"itemId":"screw","quantity":3},{"itemId":"gizmo","quantity":1}]},
		{"id":"q_two","name":"Two","previousQuestIds":["q_intro"],
		 "requiredItemIds":[{"itemId":"screw","quantity":2}]}
	]`
	fixtureModules = `[
		{"id":"workbench","name":"Workbench","levels":[{"level":1,"requirementItemIds":[{"itemId":"plate","quantity":4}]}]}
	]`
	fixtureProjects = `[
		{"id":"tower","name":"Signal Tower","phases":[{"phase":1,"requirementItemIds":[{"itemId":"screw","qty":10}]}]}
	]`
)

func fixtureDocs() storage.RawDocuments {
	doc := func(section, data string) storage.RawDocument {
		return storage.RawDocument{Section: section, Data: []byte(data), Found: true}
	}
	return storage.RawDocuments{
		Items:    doc(rawdata.SectionItems, fixtureItems),
		Quests:   doc(rawdata.SectionQuests, fixtureQuests),
		Modules:  doc(rawdata.SectionModules, fixtureModules),
		Projects: doc(rawdata.SectionProjects, fixtureProjects),
	}
}

func fixtureExport(t *testing.T) rawdata.Export {
	t.Helper()
	export, diags := Decode(fixtureDocs())
	require.Zero(t, diags.Len())
	return export
}

func itemByID(t *testing.T, items []domain.Item, id string) domain.Item {
	t.Helper()
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not found", id)
	return domain.Item{}
}

func TestDecode_UndecodableDocument(t *testing.T) {
	docs := fixtureDocs()
	docs.Items.Data = []byte(`{"id":"widget"}`)

	export, diags := Decode(docs)

	assert.Empty(t, export.Items)
	assert.Len(t, export.Quests, 2)
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, domain.SeverityError, diags.Items[0].Severity)
	assert.Equal(t, domain.CodeMalformedRecord, diags.Items[0].Code)
	assert.Equal(t, rawdata.SectionItems, diags.Items[0].Entity)
}

func TestBuild_FullRun(t *testing.T) {
	result := Build(context.Background(), fixtureExport(t), domain.Dataset{}, Options{Include: IncludeAll(), RunID: "run-1"})
	ds := result.Dataset

	assert.Equal(t, "run-1", result.RunID)
	assert.Len(t, ds.Items, 3)
	assert.Len(t, ds.Quests, 2)
	require.Len(t, ds.QuestChains, 1)
	assert.Equal(t, []string{"quest-q-intro", "quest-q-two"}, ds.QuestChains[0].Stages)
	assert.Len(t, ds.Upgrades, 1)
	assert.Len(t, ds.Projects, 1)
	assert.NotNil(t, ds.Vendors)

	screw := itemByID(t, ds.Items, "item-screw")
	assert.Equal(t, domain.NeedsTotals{Quests: 5, Workshop: 0}, screw.NeedsTotals)
	plate := itemByID(t, ds.Items, "item-plate")
	assert.Equal(t, domain.NeedsTotals{Quests: 0, Workshop: 4}, plate.NeedsTotals)

	assert.Equal(t, Stats{
		PassDecode:    7,
		PassItems:     3,
		PassWorkshop:  2,
		PassQuests:    2,
		PassConflicts: result.Diagnostics.Len(),
		PassFinalize:  3 + 2 + 1 + 1 + 1,
	}, result.Stats)
}

func TestBuild_ReportsMissingQuestItems(t *testing.T) {
	result := Build(context.Background(), fixtureExport(t), domain.Dataset{}, Options{Include: IncludeAll()})

	var found []domain.Diagnostic
	for _, d := range result.Diagnostics.Items {
		if d.Code == domain.CodeMissingReference {
			found = append(found, d)
		}
	}
	require.Len(t, found, 1)
	assert.Equal(t, "quest-q-intro", found[0].Entity)
	assert.Contains(t, found[0].Message, "item-gizmo")
	assert.NotEmpty(t, result.RunID, "run id is generated")
}

func TestBuild_NeedsTotalsAreRecomputed(t *testing.T) {
	prior := domain.Dataset{Items: []domain.Item{
		{ID: "item-screw", Name: "Screw", Slug: "screw", NeedsTotals: domain.NeedsTotals{Quests: 99, Workshop: 99}},
	}}

	result := Build(context.Background(), rawdata.Export{}, prior, Options{Include: IncludeAll()})

	require.Len(t, result.Dataset.Items, 1)
	assert.Zero(t, result.Dataset.Items[0].NeedsTotals)
}

func TestBuild_ExcludedSectionsKeepPrior(t *testing.T) {
	prior := domain.Dataset{
		Items:       []domain.Item{{ID: "item-legacy", Name: "Legacy", Slug: "legacy"}},
		Quests:      []domain.Quest{{ID: "quest-old", Name: "Old"}},
		QuestChains: []domain.QuestChain{{ID: "chain-old", Name: "Old", Stages: []string{"quest-old"}}},
		Upgrades:    []domain.UpgradePack{{ID: "upgrade-bench-level-9", Bench: "Bench", Level: 9}},
		Projects:    []domain.Project{{ID: "project-old", Name: "Old"}},
		Vendors:     []domain.Vendor{{ID: "vendor-celeste", Name: "Celeste"}},
	}
	include := Include{Chains: true}

	result := Build(context.Background(), fixtureExport(t), prior, Options{Include: include})
	ds := result.Dataset

	require.Len(t, ds.Items, 1)
	assert.Equal(t, "item-legacy", ds.Items[0].ID)
	assert.Equal(t, prior.Quests, ds.Quests, "quests are derived for chains but not replaced")
	assert.Equal(t, prior.Upgrades, ds.Upgrades)
	assert.Equal(t, prior.Projects, ds.Projects)
	assert.Empty(t, ds.Vendors, "excluded vendors are emptied")

	chainIDs := make([]string, 0, len(ds.QuestChains))
	for _, c := range ds.QuestChains {
		chainIDs = append(chainIDs, c.ID)
	}
	assert.Contains(t, chainIDs, "chain-old", "prior chains not derived this run are kept")
	assert.Len(t, ds.QuestChains, 2)

	_, ranItems := result.Stats[PassItems]
	_, ranWorkshop := result.Stats[PassWorkshop]
	assert.False(t, ranItems)
	assert.False(t, ranWorkshop)
	assert.Equal(t, 3, result.Stats[PassQuests], "prior-only quests are carried by the derivation")
}

func TestBuild_VendorsPassThrough(t *testing.T) {
	prior := domain.Dataset{Vendors: []domain.Vendor{{ID: "vendor-celeste", Name: "Celeste"}}}

	result := Build(context.Background(), rawdata.Export{}, prior, Options{Include: IncludeAll()})

	assert.Equal(t, prior.Vendors, result.Dataset.Vendors)
}

func TestRun_ReadsStore(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	write(storage.DefaultRawItemsFile, fixtureItems)
	write(storage.DefaultRawQuestsFile, `not json`)
	write(storage.DefaultVendorsFile, `[{"id":"vendor-celeste","name":"Celeste"}]`)

	result, err := Run(context.Background(), storage.New(dir, "", storage.DefaultLayout()), Options{Include: IncludeAll()})

	require.NoError(t, err)
	assert.Len(t, result.Dataset.Items, 3)
	assert.Empty(t, result.Dataset.Quests)
	assert.Len(t, result.Dataset.Vendors, 1)
	require.NotZero(t, result.Diagnostics.Len())
	assert.Equal(t, rawdata.SectionQuests, result.Diagnostics.Items[0].Entity, "decode findings come first")
	assert.Equal(t, result.Diagnostics.Len(), result.Stats[PassConflicts])
}

func TestRun_PriorLoadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.DefaultItemsFile), []byte(`{broken`), 0644))

	_, err := Run(context.Background(), storage.New(dir, "", storage.DefaultLayout()), Options{Include: IncludeAll()})

	assert.Error(t, err)
}
