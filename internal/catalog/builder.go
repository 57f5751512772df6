// Package catalog builds the canonical item list and its crafting graph from
// raw item exports.
package catalog

import (
	"context"
	"strings"

	"github.com/osse101/ArcCompanion_Go/internal/assets"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/naming"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
	"github.com/osse101/ArcCompanion_Go/internal/utils"
)

// Result is the output of one item build.
type Result struct {
	Items       []domain.Item
	Diagnostics domain.Diagnostics
}

// Builder turns raw item records into canonical items.
type Builder struct {
	images assets.ImageResolver
}

// NewBuilder creates a builder. images may be nil, in which case raw image
// references are stored unchanged.
func NewBuilder(images assets.ImageResolver) *Builder {
	return &Builder{images: images}
}

// Build normalizes raw items, merges them into the prior canonical items,
// derives craftsInto and reports missing references and crafting cycles.
// The output is sorted by display name and fully determined by the input.
func (b *Builder) Build(ctx context.Context, raw []rawdata.Item, prior []domain.Item) Result {
	log := logger.FromContext(ctx)
	var diags domain.Diagnostics

	names := NewNameTable(raw, prior)
	items := make([]domain.Item, len(prior))
	byID := make(map[string]int, len(prior))
	bySlug := make(map[string]int, len(prior))
	for i, p := range prior {
		items[i] = cloneItem(p)
		byID[p.ID] = i
		if p.Slug != "" {
			if _, taken := bySlug[p.Slug]; !taken {
				bySlug[p.Slug] = i
			}
		}
	}

	added := make(map[string]struct{})
	for _, entry := range raw {
		canonicalID := ident.CanonicalItemID(entry.ID)
		name := entry.Name.Resolve(canonicalID)
		slug := ident.Slugify(name)

		if _, dup := added[canonicalID]; dup {
			diags.Warn(domain.CodeDuplicateID, canonicalID, DiagFmtDuplicateItem, entry.ID, canonicalID)
			continue
		}

		target, found := byID[canonicalID]
		if !found || canonicalID == "" {
			target, found = bySlug[slug]
			found = found && slug != ""
		}
		if found {
			b.fillMissing(&items[target], entry, name, slug, names, &diags)
			continue
		}

		id := canonicalID
		if id == "" && slug != "" {
			id = ident.ItemPrefix + slug
		}
		if id == "" {
			diags.Warn(domain.CodeInvalidID, entry.ID, DiagFmtNoItemID, entry.ID)
			continue
		}
		if _, dup := added[id]; dup {
			diags.Warn(domain.CodeDuplicateID, id, DiagFmtDuplicateItem, entry.ID, id)
			continue
		}
		added[id] = struct{}{}

		item := b.newItem(id, entry, name, slug, names, &diags)
		byID[id] = len(items)
		items = append(items, item)
	}

	utils.SortByName(utils.NewNameOrder(), items,
		func(i domain.Item) string { return i.Name },
		func(i domain.Item) string { return i.ID })

	checkReferences(items, &diags)
	deriveCraftsInto(items)
	for _, cycle := range FindCycles(items) {
		diags.Warn(domain.CodeCraftingCycle, cycle[0], DiagFmtCraftingCycle, strings.Join(cycle, CycleSeparator))
	}

	log.Debug(LogMsgItemsBuilt, "items", len(items), "added", len(added), "diagnostics", diags.Len())
	return Result{Items: items, Diagnostics: diags}
}

func (b *Builder) newItem(id string, entry rawdata.Item, name, slug string, names *NameTable, diags *domain.Diagnostics) domain.Item {
	if name == "" {
		name = id
	}
	if slug == "" {
		slug = ident.Slugify(strings.ReplaceAll(entry.ID, "_", "-"))
	}
	if slug == "" {
		slug = id
	}

	return domain.Item{
		ID:          id,
		Name:        name,
		Slug:        slug,
		Rarity:      entry.Rarity,
		Category:    entry.Type,
		ImageURL:    b.resolveImage(entry.ImageFilename),
		Sell:        entry.Value,
		Notes:       strings.TrimSpace(entry.Description.Resolve("")),
		Recycle:     convertQuantities(entry.YieldMap(), id, listRecycle, names, diags),
		CraftsFrom:  convertQuantities(entry.Recipe, id, listRecipe, names, diags),
		CraftsInto:  []domain.CraftProduct{},
		Sources:     []string{},
		Vendors:     []string{},
		Zones:       []string{},
		NeedsTotals: domain.NeedsTotals{},
		Provenance:  &domain.Provenance{Wiki: false, API: true},
	}
}

// fillMissing copies raw values into a prior item only where the prior item is silent.
func (b *Builder) fillMissing(item *domain.Item, entry rawdata.Item, name, slug string, names *NameTable, diags *domain.Diagnostics) {
	if item.Name == "" && name != "" {
		item.Name = name
	}
	if item.Slug == "" && slug != "" {
		item.Slug = slug
	}
	if item.Rarity == "" {
		item.Rarity = entry.Rarity
	}
	if item.Category == "" {
		item.Category = entry.Type
	}
	if item.Sell == 0 && entry.HasValue {
		item.Sell = entry.Value
	}
	if item.Notes == "" {
		item.Notes = strings.TrimSpace(entry.Description.Resolve(""))
	}
	if item.ImageURL == "" {
		item.ImageURL = b.resolveImage(entry.ImageFilename)
	}
	if len(item.Recycle) == 0 {
		item.Recycle = convertQuantities(entry.YieldMap(), item.ID, listRecycle, names, diags)
	}
	if len(item.CraftsFrom) == 0 {
		item.CraftsFrom = convertQuantities(entry.Recipe, item.ID, listRecipe, names, diags)
	}
}

func (b *Builder) resolveImage(source string) string {
	if b.images == nil {
		return strings.TrimSpace(source)
	}
	return b.images.Resolve(source)
}

// convertQuantities maps raw {id: qty} pairs to canonical entries, dropping
// ids that cannot be canonicalized.
func convertQuantities(raw []rawdata.Quantity, ownerID, list string, names *NameTable, diags *domain.Diagnostics) []domain.ItemQuantity {
	out := make([]domain.ItemQuantity, 0, len(raw))
	for _, q := range raw {
		itemID := ident.CanonicalItemID(q.RawID)
		if itemID == "" {
			diags.Info(domain.CodeInvalidID, ownerID, DiagFmtUnusableReference, list, q.RawID, ownerID)
			continue
		}
		out = append(out, domain.ItemQuantity{
			ItemID: itemID,
			Name:   names.Resolve(q.RawID),
			Qty:    q.Qty,
		})
	}
	return out
}

// checkReferences reports recipe and recycle entries that point at no known item.
func checkReferences(items []domain.Item, diags *domain.Diagnostics) {
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	suggester := naming.NewResolver(items)

	report := func(owner domain.Item, list string, entries []domain.ItemQuantity) {
		for _, e := range entries {
			if _, ok := known[e.ItemID]; ok {
				continue
			}
			msg := DiagFmtMissingReference
			args := []interface{}{list, owner.ID, e.ItemID}
			if s := suggester.Suggest(e.ItemID, 1); len(s) > 0 {
				msg += DiagFmtDidYouMean
				args = append(args, s[0])
			}
			diags.Warn(domain.CodeMissingReference, owner.ID, msg, args...)
		}
	}

	for _, item := range items {
		report(item, listRecipe, item.CraftsFrom)
		report(item, listRecycle, item.Recycle)
	}
}

func cloneItem(item domain.Item) domain.Item {
	out := item
	out.Recycle = cloneQuantities(item.Recycle)
	out.CraftsFrom = cloneQuantities(item.CraftsFrom)
	out.Sources = cloneStrings(item.Sources)
	out.Vendors = cloneStrings(item.Vendors)
	out.Zones = cloneStrings(item.Zones)
	if item.Provenance != nil {
		p := *item.Provenance
		out.Provenance = &p
	}
	return out
}

func cloneQuantities(in []domain.ItemQuantity) []domain.ItemQuantity {
	return append(make([]domain.ItemQuantity, 0, len(in)), in...)
}

func cloneStrings(in []string) []string {
	return append(make([]string, 0, len(in)), in...)
}
