// Package naming maps free-form item references (canonical ids, raw ids,
// display names) to canonical item ids and suggests near matches.
package naming

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
)

// Resolver handles item reference resolution
type Resolver interface {
	// Resolve converts an id, raw id or display name to a canonical item id
	Resolve(reference string) (itemID string, ok bool)

	// Name returns the display name registered for a canonical id
	Name(itemID string) (string, bool)

	// Suggest returns canonical ids whose slug is within typo distance of reference
	Suggest(reference string, limit int) []string

	// Register adds one item
	Register(itemID, name string)

	// Reload replaces every registration with the given items
	Reload(items []domain.Item)
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: lookup key -> canonical id
	keys map[string]string

	// Mapping: canonical id -> display name
	names map[string]string
}

// NewResolver creates a resolver seeded with items
func NewResolver(items []domain.Item) Resolver {
	r := &resolver{}
	r.Reload(items)
	return r
}

// Reload replaces every registration
func (r *resolver) Reload(items []domain.Item) {
	keys := make(map[string]string, len(items)*3)
	names := make(map[string]string, len(items))
	for _, item := range items {
		addKeys(keys, names, item.ID, item.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = keys
	r.names = names
}

// Register adds one item; existing keys keep their first owner
func (r *resolver) Register(itemID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addKeys(r.keys, r.names, itemID, name)
}

func addKeys(keys, names map[string]string, itemID, name string) {
	if itemID == "" {
		return
	}
	names[itemID] = name
	for _, key := range []string{itemID, ident.TrimCanonicalItemPrefix(itemID), ident.Slugify(name)} {
		if key == "" {
			continue
		}
		if _, taken := keys[key]; !taken {
			keys[key] = itemID
		}
	}
}

// Resolve tries the reference as given, as a canonical id, and as a name slug
func (r *resolver) Resolve(reference string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", false
	}
	if id, ok := r.keys[strings.ToLower(reference)]; ok {
		return id, true
	}
	if id, ok := r.keys[ident.CanonicalItemID(reference)]; ok {
		return id, true
	}
	if id, ok := r.keys[ident.Slugify(reference)]; ok {
		return id, true
	}
	return "", false
}

// Name returns the registered display name
func (r *resolver) Name(itemID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[itemID]
	return name, ok
}

// Suggest ranks registered ids by edit distance between slugs
func (r *resolver) Suggest(reference string, limit int) []string {
	target := ident.Slugify(ident.TrimCanonicalItemPrefix(ident.StripItemPrefix(reference)))
	if target == "" || limit <= 0 {
		return nil
	}
	maxDist := suggestionDistance(len(target))

	r.mu.RLock()
	defer r.mu.RUnlock()

	type candidate struct {
		id   string
		dist int
	}
	best := make(map[string]int)
	for key, id := range r.keys {
		dist := levenshtein.ComputeDistance(target, key)
		if dist > maxDist {
			continue
		}
		if prev, seen := best[id]; !seen || dist < prev {
			best[id] = dist
		}
	}

	candidates := make([]candidate, 0, len(best))
	for id, dist := range best {
		candidates = append(candidates, candidate{id: id, dist: dist})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}
	return out
}
