package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcCompanion_Go/internal/assets"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/localized"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
)

func rawItem(id, name string, recipe ...rawdata.Quantity) rawdata.Item {
	return rawdata.Item{ID: id, Name: localized.FromString(name), Recipe: recipe}
}

func q(rawID string, qty int) rawdata.Quantity {
	return rawdata.Quantity{RawID: rawID, Qty: qty}
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func find(t *testing.T, items []domain.Item, id string) domain.Item {
	t.Helper()
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	require.Failf(t, "item not found", "id %s", id)
	return domain.Item{}
}

func TestBuild_CraftingGraph(t *testing.T) {
	raw := []rawdata.Item{
		rawItem("item_widget", "Widget", q("item_screw", 2), q("item_plate", 1)),
		rawItem("item_screw", "screw"),
		rawItem("item_plate", "Plate"),
		rawItem("item_gadget", "Gadget", q("item_screw", 4), q("item_screw", 1)),
	}

	res := NewBuilder(nil).Build(context.Background(), raw, nil)

	assert.Equal(t, []string{"item-gadget", "item-plate", "item-screw", "item-widget"}, ids(res.Items),
		"items are sorted by name, case-insensitive")
	assert.Zero(t, res.Diagnostics.Len())

	widget := find(t, res.Items, "item-widget")
	assert.Equal(t, []domain.ItemQuantity{
		{ItemID: "item-screw", Name: "screw", Qty: 2},
		{ItemID: "item-plate", Name: "Plate", Qty: 1},
	}, widget.CraftsFrom)
	assert.Equal(t, "widget", widget.Slug)
	assert.Equal(t, &domain.Provenance{Wiki: false, API: true}, widget.Provenance)

	screw := find(t, res.Items, "item-screw")
	assert.Equal(t, []domain.CraftProduct{
		{ProductID: "item-gadget", ProductName: "Gadget"},
		{ProductID: "item-widget", ProductName: "Widget"},
	}, screw.CraftsInto, "duplicate recipe edges produce one craftsInto entry")
}

func TestBuild_InverseEdgeConsistency(t *testing.T) {
	raw := []rawdata.Item{
		rawItem("a", "A", q("b", 1), q("c", 2)),
		rawItem("b", "B", q("c", 1)),
		rawItem("c", "C"),
		rawItem("d", "D", q("a", 1), q("missing", 1)),
	}

	res := NewBuilder(nil).Build(context.Background(), raw, nil)
	byID := make(map[string]domain.Item)
	for _, item := range res.Items {
		byID[item.ID] = item
	}

	for _, product := range res.Items {
		for _, e := range product.CraftsFrom {
			component, ok := byID[e.ItemID]
			if !ok {
				continue
			}
			assert.True(t, hasProduct(component.CraftsInto, product.ID), "%s should list %s", component.ID, product.ID)
		}
	}
	for _, component := range res.Items {
		for _, p := range component.CraftsInto {
			product := byID[p.ProductID]
			found := false
			for _, e := range product.CraftsFrom {
				found = found || e.ItemID == component.ID
			}
			assert.True(t, found, "orphan craftsInto %s -> %s", component.ID, p.ProductID)
		}
	}
}

func TestBuild_MissingReferences(t *testing.T) {
	raw := []rawdata.Item{
		rawItem("item_widget", "Widget", q("item_scerw", 2), q("item_gizmo_xyz_long", 1), q("!!!", 1)),
		rawItem("item_screw", "Screw"),
	}

	res := NewBuilder(nil).Build(context.Background(), raw, nil)

	widget := find(t, res.Items, "item-widget")
	assert.Len(t, widget.CraftsFrom, 2, "uncanonicalizable ids are dropped, unknown ones kept")
	assert.Equal(t, 2, res.Diagnostics.Count(domain.CodeMissingReference))
	assert.Equal(t, 1, res.Diagnostics.Count(domain.CodeInvalidID))

	var messages []string
	for _, d := range res.Diagnostics.Items {
		if d.Code == domain.CodeMissingReference {
			assert.Equal(t, domain.SeverityWarning, d.Severity)
			assert.Equal(t, "item-widget", d.Entity)
			messages = append(messages, d.Message)
		}
	}
	assert.Contains(t, messages[0], "did you mean item-screw?")
}

func TestBuild_CyclesAreReportedOnce(t *testing.T) {
	raw := []rawdata.Item{
		rawItem("b", "B", q("a", 1)),
		rawItem("a", "A", q("b", 1), q("b", 3)),
		rawItem("self", "Self", q("self", 1)),
	}

	res := NewBuilder(nil).Build(context.Background(), raw, nil)

	require.Equal(t, 2, res.Diagnostics.Count(domain.CodeCraftingCycle))
	var messages []string
	for _, d := range res.Diagnostics.Items {
		if d.Code == domain.CodeCraftingCycle {
			messages = append(messages, d.Message)
		}
	}
	assert.Equal(t, []string{
		"crafting cycle: item-a -> item-b -> item-a",
		"crafting cycle: item-self -> item-self",
	}, messages)
}

func TestFindCycles_RotatesToSmallestID(t *testing.T) {
	items := []domain.Item{
		{ID: "c", CraftsFrom: []domain.ItemQuantity{{ItemID: "a"}}},
		{ID: "b", CraftsFrom: []domain.ItemQuantity{{ItemID: "c"}}},
		{ID: "a", CraftsFrom: []domain.ItemQuantity{{ItemID: "b"}}},
		{ID: "d", CraftsFrom: []domain.ItemQuantity{{ItemID: "a"}, {ItemID: "unknown"}}},
	}

	assert.Equal(t, [][]string{{"a", "b", "c", "a"}}, FindCycles(items))
}

func TestBuild_MergesIntoPriorItems(t *testing.T) {
	prior := []domain.Item{
		{ID: "item-screw", Name: "Screw (Curated)", Slug: "screw", Sell: 12, Recycle: []domain.ItemQuantity{}},
		{ID: "item-legacy", Name: "Legacy Thing", Slug: "legacy-thing", Sell: 5},
		{ID: "item-plate-x", Name: "Plate", Slug: "plate"},
	}
	raw := []rawdata.Item{
		{ID: "item_screw", Name: localized.FromString("Screw"), Rarity: "Common", Type: "Basic Material", Value: 99, HasValue: true},
		{ID: "plate_v2", Name: localized.FromString("Plate"), Rarity: "Uncommon"},
		rawItem("item_widget", "Widget", q("item_screw", 2)),
	}

	res := NewBuilder(nil).Build(context.Background(), raw, prior)

	assert.Equal(t, []string{"item-legacy", "item-plate-x", "item-screw", "item-widget"}, ids(res.Items))

	screw := find(t, res.Items, "item-screw")
	assert.Equal(t, "Screw (Curated)", screw.Name, "curated names win")
	assert.Equal(t, 12.0, screw.Sell, "curated sell value wins")
	assert.Equal(t, "Common", screw.Rarity, "absent fields are filled from raw data")
	assert.Equal(t, "Basic Material", screw.Category)

	plate := find(t, res.Items, "item-plate-x")
	assert.Equal(t, "Uncommon", plate.Rarity, "matched by slug")

	widget := find(t, res.Items, "item-widget")
	assert.Equal(t, "Screw (Curated)", widget.CraftsFrom[0].Name)
	assert.Equal(t, []domain.CraftProduct{{ProductID: "item-widget", ProductName: "Widget"}}, screw.CraftsInto)

	assert.Equal(t, "Screw (Curated)", prior[0].Name, "prior items are not mutated")
	assert.Empty(t, prior[0].CraftsInto)
}

func TestBuild_AccentedIDMergesIntoPrior(t *testing.T) {
	prior := []domain.Item{{ID: "item-caf", Name: "Café", Slug: "caf", Sell: 7}}
	raw := []rawdata.Item{{ID: "Café", Name: localized.FromString("Café"), Rarity: "Rare"}}

	res := NewBuilder(nil).Build(context.Background(), raw, prior)

	assert.Equal(t, []string{"item-caf"}, ids(res.Items))
	cafe := find(t, res.Items, "item-caf")
	assert.Equal(t, 7.0, cafe.Sell)
	assert.Equal(t, "Rare", cafe.Rarity)
}

func TestBuild_DefaultsAndMalformedRecords(t *testing.T) {
	raw := []rawdata.Item{
		{ID: "", Name: localized.FromString("!!!")},
		{ID: "", Name: localized.FromString("Nameless Wonder")},
		{ID: "item_dup", Name: localized.FromString("First")},
		{ID: "item-dup", Name: localized.FromString("Second")},
		{ID: "item_pic", Name: localized.FromString("Pic"), ImageFilename: "https://cdn.example/pic.png"},
	}
	images := assets.NewLocalImagesFromNames("pic.png")

	res := NewBuilder(images).Build(context.Background(), raw, nil)

	assert.Equal(t, []string{"item-dup", "item-nameless-wonder", "item-pic"}, ids(res.Items))
	assert.Equal(t, 1, res.Diagnostics.Count(domain.CodeInvalidID))
	assert.Equal(t, 1, res.Diagnostics.Count(domain.CodeDuplicateID))
	assert.Equal(t, "First", find(t, res.Items, "item-dup").Name)
	assert.Equal(t, "/images/items/pic.png", find(t, res.Items, "item-pic").ImageURL)

	item := find(t, res.Items, "item-nameless-wonder")
	assert.NotNil(t, item.Sources)
	assert.NotNil(t, item.Vendors)
	assert.NotNil(t, item.Zones)
	assert.NotNil(t, item.CraftsFrom)
	assert.NotNil(t, item.CraftsInto)
}

func TestBuild_IsDeterministic(t *testing.T) {
	raw := []rawdata.Item{
		rawItem("item_widget", "Widget", q("item_screw", 2), q("item_ghost", 1)),
		rawItem("item_screw", "Screw", q("item_widget", 1)),
		rawItem("item_alpha", "alpha"),
		rawItem("item_beta", "Alpha"),
	}
	b := NewBuilder(nil)

	first := b.Build(context.Background(), raw, nil)
	second := b.Build(context.Background(), raw, nil)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	c, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(c))

	rebuilt := b.Build(context.Background(), raw, first.Items)
	assert.Equal(t, ids(first.Items), ids(rebuilt.Items), "rebuilding over own output keeps the same items")
}
