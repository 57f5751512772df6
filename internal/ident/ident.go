// Package ident canonicalizes free-form source identifiers into stable,
// prefixed slugs. Every function here is pure and idempotent.
package ident

import (
	"fmt"
	"strings"
)

// Slugify lower-cases value, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens from both ends. Accented
// and other non-ASCII letters are separators, so "Café" slugs to "caf".
func Slugify(value string) string {
	if value == "" {
		return ""
	}

	folded := strings.ToLower(value)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// CanonicalItemID converts a raw item id into "item-<slug>" form. It returns
// "" when raw is blank or has no slug-able content.
func CanonicalItemID(raw string) string {
	return canonical(raw, ItemPrefix, rawItemPrefix)
}

// CanonicalQuestID converts a raw quest id into "quest-<slug>" form. It returns
// "" when raw is blank or has no slug-able content.
func CanonicalQuestID(raw string) string {
	return canonical(raw, QuestPrefix, rawQuestPrefix)
}

func canonical(raw, prefix, rawPrefix string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, prefix) {
		return strings.ToLower(raw)
	}

	cleaned := stripPrefix(raw, rawPrefix)
	slug := Slugify(strings.ReplaceAll(cleaned, "_", "-"))
	if slug == "" {
		return ""
	}
	return prefix + slug
}

// StripItemPrefix removes a leading "item_" or "item-" (any case) from raw.
func StripItemPrefix(raw string) string {
	return stripPrefix(raw, rawItemPrefix)
}

// TrimCanonicalItemPrefix returns a canonical item id without its "item-" prefix.
func TrimCanonicalItemPrefix(id string) string {
	return strings.TrimPrefix(id, ItemPrefix)
}

func stripPrefix(raw, rawPrefix string) string {
	n := len(rawPrefix)
	if len(raw) <= n || !strings.EqualFold(raw[:n], rawPrefix) {
		return raw
	}
	if sep := raw[n]; sep == '_' || sep == '-' {
		return raw[n+1:]
	}
	return raw
}

// UpgradeID builds the id of one bench upgrade level. The slug comes from the
// bench name, else the raw module id, else "bench".
func UpgradeID(bench, rawID string, level int) string {
	slug := Slugify(bench)
	if slug == "" {
		slug = Slugify(rawID)
	}
	if slug == "" {
		slug = defaultUpgradeSlug
	}
	return fmt.Sprintf("%s%s-level-%d", UpgradePrefix, slug, level)
}

// ProjectID keeps raw ids that are already prefixed. Otherwise it slugifies the
// raw id, falling back to the name and then to "project".
func ProjectID(raw, name string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, ProjectPrefix) {
		return strings.ToLower(raw)
	}
	slug := Slugify(raw)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		slug = defaultProjectSlug
	}
	return ProjectPrefix + slug
}

// ProjectPhaseID builds the id of a project phase.
func ProjectPhaseID(projectID string, order int) string {
	return fmt.Sprintf("%s-phase-%d", projectID, order)
}
