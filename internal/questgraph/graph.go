package questgraph

import (
	"sort"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
)

type node struct {
	id    string
	name  string
	giver string
	prev  map[string]struct{}
	next  map[string]struct{}
}

// Graph is the symmetric quest prerequisite graph keyed by canonical id.
// An edge A -> B means A must be completed before B.
type Graph struct {
	nodes map[string]*node
	ids   []string
}

// declaredEdges lists one quest's own previous/next declarations.
type declaredEdges struct {
	id       string
	previous []string
	next     []string
}

func newGraph() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

func (g *Graph) addNode(id, name, giver string) {
	g.nodes[id] = &node{
		id:    id,
		name:  name,
		giver: giver,
		prev:  make(map[string]struct{}),
		next:  make(map[string]struct{}),
	}
	g.ids = append(g.ids, id)
}

// link inserts from -> to on both endpoints.
func (g *Graph) link(from, to string) {
	g.nodes[from].next[to] = struct{}{}
	g.nodes[to].prev[from] = struct{}{}
}

// connect reconciles every declaration into symmetric edges. References to
// quests outside the graph are dropped; one-sided declarations are reported.
func (g *Graph) connect(decls []declaredEdges, diags *domain.Diagnostics) {
	sort.Strings(g.ids)

	declared := make(map[[2]string]int)
	const byTail, byHead = 1, 2

	resolve := func(raw string) (string, bool) {
		id := ident.CanonicalQuestID(raw)
		_, ok := g.nodes[id]
		return id, ok && id != ""
	}

	for _, d := range decls {
		for _, raw := range d.previous {
			if prev, ok := resolve(raw); ok {
				g.link(prev, d.id)
				declared[[2]string{prev, d.id}] |= byHead
			}
		}
		for _, raw := range d.next {
			if next, ok := resolve(raw); ok {
				g.link(d.id, next)
				declared[[2]string{d.id, next}] |= byTail
			}
		}
	}

	edges := make([][2]string, 0, len(declared))
	for e := range declared {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	for _, e := range edges {
		switch declared[e] {
		case byTail:
			diags.Info(domain.CodeAsymmetricEdge, e[0], DiagFmtAsymmetricEdge, e[0], e[1], edgeNext, e[1])
		case byHead:
			diags.Info(domain.CodeAsymmetricEdge, e[1], DiagFmtAsymmetricEdge, e[1], e[0], edgePrevious, e[0])
		}
	}
}

// IDs returns every quest id in ascending order.
func (g *Graph) IDs() []string {
	return append([]string(nil), g.ids...)
}

// Prev returns the sorted prerequisites of id.
func (g *Graph) Prev(id string) []string {
	if n, ok := g.nodes[id]; ok {
		return sortedKeys(n.prev)
	}
	return nil
}

// Next returns the sorted follow-up quests of id.
func (g *Graph) Next(id string) []string {
	if n, ok := g.nodes[id]; ok {
		return sortedKeys(n.next)
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// components splits the graph into weakly-connected components, discovered
// from ids in ascending order. Each component lists its ids in discovery order.
func (g *Graph) components() [][]string {
	visited := make(map[string]struct{}, len(g.ids))
	var out [][]string

	for _, start := range g.ids {
		if _, ok := visited[start]; ok {
			continue
		}
		var component []string
		stack := []string{start}
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[current]; ok {
				continue
			}
			visited[current] = struct{}{}
			component = append(component, current)

			for _, id := range g.Prev(current) {
				if _, ok := visited[id]; !ok {
					stack = append(stack, id)
				}
			}
			for _, id := range g.Next(current) {
				if _, ok := visited[id]; !ok {
					stack = append(stack, id)
				}
			}
		}
		out = append(out, component)
	}
	return out
}
