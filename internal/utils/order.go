package utils

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameOrder compares display names case-insensitively with locale-aware
// collation. A Collator is not safe for concurrent use, so create one per
// build or request.
type NameOrder struct {
	collator *collate.Collator
}

// NewNameOrder creates an English, case-insensitive name comparer.
func NewNameOrder() *NameOrder {
	return &NameOrder{collator: collate.New(language.English, collate.IgnoreCase)}
}

// Compare returns -1, 0 or 1.
func (o *NameOrder) Compare(a, b string) int {
	return o.collator.CompareString(a, b)
}

// Less orders by name and then by id, so equal names never depend on input order.
func (o *NameOrder) Less(nameA, idA, nameB, idB string) bool {
	if c := o.Compare(nameA, nameB); c != 0 {
		return c < 0
	}
	return idA < idB
}

// SortByName sorts s in place by (name, id).
func SortByName[T any](o *NameOrder, s []T, name, id func(T) string) {
	sort.SliceStable(s, func(i, j int) bool {
		return o.Less(name(s[i]), id(s[i]), name(s[j]), id(s[j]))
	})
}
