package catalog

import (
	"sort"
	"strings"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// deriveCraftsInto rebuilds every item's craftsInto as the exact inverse of
// all craftsFrom edges, one entry per product.
func deriveCraftsInto(items []domain.Item) {
	index := make(map[string]int, len(items))
	for i := range items {
		index[items[i].ID] = i
		items[i].CraftsInto = []domain.CraftProduct{}
	}

	for _, product := range items {
		for _, e := range product.CraftsFrom {
			j, ok := index[e.ItemID]
			if !ok || hasProduct(items[j].CraftsInto, product.ID) {
				continue
			}
			items[j].CraftsInto = append(items[j].CraftsInto, domain.CraftProduct{
				ProductID:   product.ID,
				ProductName: product.Name,
			})
		}
	}
}

func hasProduct(products []domain.CraftProduct, id string) bool {
	for _, p := range products {
		if p.ProductID == id {
			return true
		}
	}
	return false
}

// FindCycles walks the craftsFrom graph depth-first and returns every distinct
// cycle as a closed id path (first id repeated at the end), rotated to start
// at its smallest id. Edges to unknown items are ignored.
func FindCycles(items []domain.Item) [][]string {
	known := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	sort.Strings(ids)

	adj := make(map[string][]string, len(items))
	for _, item := range items {
		for _, e := range item.CraftsFrom {
			if _, ok := known[e.ItemID]; ok {
				adj[item.ID] = append(adj[item.ID], e.ItemID)
			}
		}
	}

	type frame struct {
		id   string
		next int
	}

	state := make(map[string]int, len(ids))
	seen := make(map[string]struct{})
	var cycles [][]string

	for _, start := range ids {
		if state[start] != stateUnvisited {
			continue
		}
		state[start] = stateVisiting
		stack := []frame{{id: start}}
		path := []string{start}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := adj[top.id]
			if top.next >= len(edges) {
				state[top.id] = stateDone
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}
			to := edges[top.next]
			top.next++

			switch state[to] {
			case stateUnvisited:
				state[to] = stateVisiting
				stack = append(stack, frame{id: to})
				path = append(path, to)
			case stateVisiting:
				cycle := closeCycle(path, to)
				sig := strings.Join(cycle, CycleSeparator)
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					cycles = append(cycles, cycle)
				}
			}
		}
	}
	return cycles
}

// closeCycle cuts the path at the first occurrence of to and returns the
// rotated, closed cycle.
func closeCycle(path []string, to string) []string {
	start := 0
	for i, id := range path {
		if id == to {
			start = i
			break
		}
	}
	segment := path[start:]

	lowest := 0
	for i, id := range segment {
		if id < segment[lowest] {
			lowest = i
		}
	}
	cycle := make([]string, 0, len(segment)+1)
	cycle = append(cycle, segment[lowest:]...)
	cycle = append(cycle, segment[:lowest]...)
	return append(cycle, cycle[0])
}
