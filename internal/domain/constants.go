package domain

import "strings"

// Record kinds, used as labels for counts and metrics
const (
	RecordKindItems    = "items"
	RecordKindQuests   = "quests"
	RecordKindChains   = "chains"
	RecordKindUpgrades = "upgrades"
	RecordKindProjects = "projects"
	RecordKindVendors  = "vendors"
)

// NormalizeCategory lower-cases and trims a category name for set lookups.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// CategorySet builds a lookup set of normalized category names, skipping blanks.
func CategorySet(categories []string) map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if n := NormalizeCategory(c); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
