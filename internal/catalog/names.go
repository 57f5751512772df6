package catalog

import (
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
)

// NameTable resolves display names for raw item references. Names from
// previously-built canonical items win over raw names so curated display
// names survive a rebuild.
type NameTable struct {
	canonical map[string]string
	raw       map[string]string
}

// NewNameTable indexes every raw item's resolved name under each alias form
// (raw id, stripped id, canonical id, canonical id without prefix) plus the
// names of the given canonical items.
func NewNameTable(raw []rawdata.Item, items []domain.Item) *NameTable {
	t := &NameTable{
		canonical: make(map[string]string, len(items)),
		raw:       make(map[string]string, len(raw)*4),
	}
	for _, item := range items {
		t.canonical[item.ID] = item.Name
	}
	for _, entry := range raw {
		if entry.ID == "" {
			continue
		}
		name := entry.Name.Resolve(entry.ID)
		if name == "" {
			continue
		}
		t.raw[entry.ID] = name
		t.raw[ident.StripItemPrefix(entry.ID)] = name
		if id := ident.CanonicalItemID(entry.ID); id != "" {
			t.raw[id] = name
			t.raw[ident.TrimCanonicalItemPrefix(id)] = name
		}
	}
	return t
}

// Resolve returns the best display name for rawID, falling back to the id
// without its raw prefix.
func (t *NameTable) Resolve(rawID string) string {
	id := ident.CanonicalItemID(rawID)
	if name, ok := t.canonical[id]; ok && id != "" {
		return name
	}

	stripped := ident.StripItemPrefix(rawID)
	for _, key := range []string{rawID, id, stripped, ident.TrimCanonicalItemPrefix(id)} {
		if key == "" {
			continue
		}
		if name, ok := t.raw[key]; ok {
			return name
		}
	}
	if stripped != "" {
		return stripped
	}
	return rawID
}
