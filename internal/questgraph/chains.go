package questgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
	"github.com/osse101/ArcCompanion_Go/internal/utils"
)

// Assignment places one quest in a chain.
type Assignment struct {
	ChainID string
	Stage   int
}

// DeriveChains produces one chain per weakly-connected component and the
// chain assignment of every quest. Chains are sorted by name.
func DeriveChains(g *Graph, order *utils.NameOrder, diags *domain.Diagnostics) ([]domain.QuestChain, map[string]Assignment) {
	used := make(map[string]struct{})
	assignments := make(map[string]Assignment, len(g.ids))
	chains := make([]domain.QuestChain, 0)

	for _, component := range g.components() {
		stages, processed := g.layer(component, order)

		rootID := g.primaryRoot(component, stages, order)
		name := g.chainName(rootID)
		chainID := uniqueChainID(used, name, rootID)

		records := append([]string(nil), component...)
		sort.SliceStable(records, func(i, j int) bool {
			a, b := records[i], records[j]
			if stages[a] != stages[b] {
				return stages[a] < stages[b]
			}
			return order.Less(g.nodes[a].name, a, g.nodes[b].name, b)
		})

		for _, id := range records {
			assignments[id] = Assignment{ChainID: chainID, Stage: stages[id]}
		}
		chains = append(chains, domain.QuestChain{ID: chainID, Name: name, Stages: records})

		if stuck := unprocessed(records, processed); len(stuck) > 0 {
			diags.Warn(domain.CodeQuestCycle, chainID, DiagFmtQuestCycle, chainID, strings.Join(stuck, cycleSeparator))
		}
	}

	utils.SortByName(order, chains,
		func(c domain.QuestChain) string { return c.Name },
		func(c domain.QuestChain) string { return c.ID })
	return chains, assignments
}

// layer assigns longest-path stages inside one component with Kahn's
// algorithm. A successor's stage is raised whenever a processed predecessor
// offers a longer path, even if the successor never becomes ready itself;
// nodes never reached stay at stage 0. The second result holds the nodes
// that were dequeued.
func (g *Graph) layer(component []string, order *utils.NameOrder) (map[string]int, map[string]struct{}) {
	inComponent := make(map[string]struct{}, len(component))
	for _, id := range component {
		inComponent[id] = struct{}{}
	}

	inDegree := make(map[string]int, len(component))
	for _, id := range component {
		for prev := range g.nodes[id].prev {
			if _, ok := inComponent[prev]; ok {
				inDegree[id]++
			}
		}
	}

	stages := make(map[string]int, len(component))
	var queue []string
	for _, id := range component {
		if inDegree[id] == 0 {
			stages[id] = 0
			queue = append(queue, id)
		}
	}

	sortQueue := func() {
		sort.SliceStable(queue, func(i, j int) bool {
			a, b := queue[i], queue[j]
			if stages[a] != stages[b] {
				return stages[a] < stages[b]
			}
			return order.Less(g.nodes[a].name, a, g.nodes[b].name, b)
		})
	}
	sortQueue()

	processed := make(map[string]struct{}, len(component))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		processed[current] = struct{}{}

		for _, next := range g.Next(current) {
			if _, ok := inComponent[next]; !ok {
				continue
			}
			if proposed := stages[current] + 1; proposed > stages[next] {
				stages[next] = proposed
			}
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
				sortQueue()
			}
		}
	}

	for _, id := range component {
		if _, ok := stages[id]; !ok {
			stages[id] = 0
		}
	}
	return stages, processed
}

// primaryRoot picks the root with the lowest (stage, name, id), falling back
// to the smallest id when every node has a predecessor.
func (g *Graph) primaryRoot(component []string, stages map[string]int, order *utils.NameOrder) string {
	inComponent := make(map[string]struct{}, len(component))
	for _, id := range component {
		inComponent[id] = struct{}{}
	}

	var roots []string
	for _, id := range component {
		root := true
		for prev := range g.nodes[id].prev {
			if _, ok := inComponent[prev]; ok {
				root = false
				break
			}
		}
		if root {
			roots = append(roots, id)
		}
	}

	if len(roots) == 0 {
		smallest := component[0]
		for _, id := range component[1:] {
			if id < smallest {
				smallest = id
			}
		}
		return smallest
	}

	sort.SliceStable(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if stages[a] != stages[b] {
			return stages[a] < stages[b]
		}
		return order.Less(g.nodes[a].name, a, g.nodes[b].name, b)
	})
	return roots[0]
}

// chainName is the root's quest giver, else its name, else its id.
func (g *Graph) chainName(rootID string) string {
	n := g.nodes[rootID]
	switch {
	case n.giver != "":
		return n.giver
	case n.name != "":
		return n.name
	default:
		return rootID
	}
}

// uniqueChainID builds chain-<slug>, appending -2, -3, ... on collision.
func uniqueChainID(used map[string]struct{}, name, rootID string) string {
	slug := ident.Slugify(name)
	if slug == "" {
		slug = ident.Slugify(rootID)
	}
	if slug == "" {
		slug = ident.DefaultChainSlug
	}

	id := ident.ChainPrefix + slug
	for suffix := 2; ; suffix++ {
		if _, taken := used[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s%s-%d", ident.ChainPrefix, slug, suffix)
	}
	used[id] = struct{}{}
	return id
}

func unprocessed(ids []string, processed map[string]struct{}) []string {
	var out []string
	for _, id := range ids {
		if _, ok := processed[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
