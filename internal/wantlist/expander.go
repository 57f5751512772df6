// Package wantlist expands want-list entries into their full crafting
// requirement trees and manages the persisted want-list.
package wantlist

import (
	"sort"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/utils"
)

// component is one ingredient of a product together with how many units one
// craft consumes.
type component struct {
	item     *domain.Item
	perCraft int
}

// recycler is an item that yields a material when recycled.
type recycler struct {
	item  *domain.Item
	yield int
}

// Expander resolves want-list entries against a snapshot of the item graph.
// It is immutable after construction and safe for concurrent use.
type Expander struct {
	items     map[string]*domain.Item
	ignored   map[string]struct{}
	producers map[string][]component
	recyclers map[string][]recycler
}

// NewExpander indexes items once. Items whose category is in
// ignoredCategories are left out of both reverse indices and out of every
// requirement list.
func NewExpander(items []domain.Item, ignoredCategories []string) *Expander {
	e := &Expander{
		items:     make(map[string]*domain.Item, len(items)),
		ignored:   domain.CategorySet(ignoredCategories),
		producers: make(map[string][]component),
		recyclers: make(map[string][]recycler),
	}

	snapshot := make([]domain.Item, len(items))
	copy(snapshot, items)
	for i := range snapshot {
		e.items[snapshot[i].ID] = &snapshot[i]
	}

	for i := range snapshot {
		item := &snapshot[i]
		if e.isIgnored(item) {
			continue
		}
		for _, p := range item.CraftsInto {
			product, ok := e.items[p.ProductID]
			if !ok {
				continue
			}
			perCraft := 0
			for _, in := range product.CraftsFrom {
				if in.ItemID == item.ID {
					perCraft += in.Qty
				}
			}
			e.producers[p.ProductID] = append(e.producers[p.ProductID], component{item: item, perCraft: perCraft})
		}
		for _, r := range item.Recycle {
			if r.Qty <= 0 {
				continue
			}
			e.recyclers[r.ItemID] = append(e.recyclers[r.ItemID], recycler{item: item, yield: r.Qty})
		}
	}
	return e
}

// Expand resolves every entry against items with the given ignored categories.
func Expand(entries []domain.WantListEntry, items []domain.Item, ignoredCategories []string) []domain.WantListResolvedEntry {
	return NewExpander(items, ignoredCategories).ResolveAll(entries)
}

// ResolveAll resolves entries in order.
func (e *Expander) ResolveAll(entries []domain.WantListEntry) []domain.WantListResolvedEntry {
	out := make([]domain.WantListResolvedEntry, len(entries))
	for i, entry := range entries {
		out[i] = e.Resolve(entry)
	}
	return out
}

// Resolve expands one entry. An unknown target yields an entry with no item
// and empty lists.
func (e *Expander) Resolve(entry domain.WantListEntry) domain.WantListResolvedEntry {
	resolved := domain.WantListResolvedEntry{
		Entry:        entry,
		Requirements: []domain.Requirement{},
		Products:     []domain.ProductLink{},
		Materials:    []domain.MaterialLink{},
	}

	target, ok := e.items[entry.ItemID]
	if !ok {
		return resolved
	}
	item := *target
	resolved.Item = &item

	order := utils.NewNameOrder()
	resolved.Requirements = e.requirements(target, entry.Qty, order)
	resolved.Products = e.products(target, entry.Qty, order)
	resolved.Materials = e.materials(target, entry.Qty, resolved.Requirements, order)
	return resolved
}

func (e *Expander) isIgnored(item *domain.Item) bool {
	return item != nil && item.HasCategory(e.ignored)
}

func (e *Expander) name(id, fallback string) string {
	if item, ok := e.items[id]; ok && item.Name != "" {
		return item.Name
	}
	if fallback != "" {
		return fallback
	}
	return id
}

// requirements walks craftsFrom depth-first with an explicit stack. Quantities
// are summed over every path and depth is the shallowest path. An item already
// on the current path is recorded but not descended into again.
func (e *Expander) requirements(target *domain.Item, qty int, order *utils.NameOrder) []domain.Requirement {
	type frame struct {
		item       *domain.Item
		multiplier int
		depth      int
		next       int
	}

	acc := make(map[string]*domain.Requirement)
	onPath := map[string]int{target.ID: 1}
	stack := []frame{{item: target, multiplier: qty, depth: 1}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.item.CraftsFrom) {
			onPath[top.item.ID]--
			stack = stack[:len(stack)-1]
			continue
		}
		edge := top.item.CraftsFrom[top.next]
		top.next++

		child, known := e.items[edge.ItemID]
		if known && e.isIgnored(child) {
			continue
		}

		needed := edge.Qty * top.multiplier
		if r, seen := acc[edge.ItemID]; seen {
			r.Qty += needed
			if top.depth < r.Depth {
				r.Depth = top.depth
			}
		} else {
			acc[edge.ItemID] = &domain.Requirement{
				ItemID: edge.ItemID,
				Name:   e.name(edge.ItemID, edge.Name),
				Qty:    needed,
				Depth:  top.depth,
			}
		}

		if !known || onPath[edge.ItemID] > 0 {
			continue
		}
		onPath[edge.ItemID]++
		stack = append(stack, frame{item: child, multiplier: needed, depth: top.depth + 1})
	}

	out := make([]domain.Requirement, 0, len(acc))
	for _, r := range acc {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		return order.Less(out[i].Name, out[i].ItemID, out[j].Name, out[j].ItemID)
	})
	return out
}

// products lists what the target can be crafted into, scaled by qty.
func (e *Expander) products(target *domain.Item, qty int, order *utils.NameOrder) []domain.ProductLink {
	out := make([]domain.ProductLink, 0, len(target.CraftsInto))
	for _, p := range target.CraftsInto {
		product, ok := e.items[p.ProductID]
		if ok && e.isIgnored(product) {
			continue
		}
		for _, c := range e.producers[p.ProductID] {
			if c.item.ID != target.ID {
				continue
			}
			out = append(out, domain.ProductLink{
				ProductID:   p.ProductID,
				ProductName: e.name(p.ProductID, p.ProductName),
				PerCraft:    c.perCraft,
				Qty:         c.perCraft * qty,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return order.Less(out[i].ProductName, out[i].ProductID, out[j].ProductName, out[j].ProductID)
	})
	return out
}

// materials pairs the target's own recycle yield and every recycler of a
// required material.
func (e *Expander) materials(target *domain.Item, qty int, reqs []domain.Requirement, order *utils.NameOrder) []domain.MaterialLink {
	out := make([]domain.MaterialLink, 0)

	for _, r := range target.Recycle {
		if material, ok := e.items[r.ItemID]; ok && e.isIgnored(material) {
			continue
		}
		out = append(out, domain.MaterialLink{
			Kind:           domain.MaterialKindYield,
			MaterialID:     r.ItemID,
			MaterialName:   e.name(r.ItemID, r.Name),
			SourceID:       target.ID,
			SourceName:     target.Name,
			YieldPerSource: r.Qty,
			Qty:            r.Qty * qty,
		})
	}

	for _, req := range reqs {
		for _, src := range e.recyclers[req.ItemID] {
			if src.item.ID == target.ID || src.item.ID == req.ItemID {
				continue
			}
			out = append(out, domain.MaterialLink{
				Kind:           domain.MaterialKindSatisfies,
				MaterialID:     req.ItemID,
				MaterialName:   req.Name,
				SourceID:       src.item.ID,
				SourceName:     src.item.Name,
				YieldPerSource: src.yield,
				RequiredQty:    req.Qty,
				SourcesNeeded:  sourcesNeeded(req.Qty, src.yield),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind == domain.MaterialKindSatisfies
		}
		if c := order.Compare(a.MaterialName, b.MaterialName); c != 0 {
			return c < 0
		}
		if c := order.Compare(a.SourceName, b.SourceName); c != 0 {
			return c < 0
		}
		if a.MaterialID != b.MaterialID {
			return a.MaterialID < b.MaterialID
		}
		return a.SourceID < b.SourceID
	})
	return out
}

// sourcesNeeded is ceil(required / yield).
func sourcesNeeded(required, yield int) int {
	if yield <= 0 || required <= 0 {
		return 0
	}
	return (required + yield - 1) / yield
}
