package domain

// Item is a canonical item record. CraftsInto is derived from every other
// item's CraftsFrom and is never authored by hand.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Rarity      string         `json:"rarity,omitempty"`
	Category    string         `json:"category,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Sell        float64        `json:"sell"`
	Notes       string         `json:"notes,omitempty"`
	Recycle     []ItemQuantity `json:"recycle"`
	CraftsFrom  []ItemQuantity `json:"craftsFrom"`
	CraftsInto  []CraftProduct `json:"craftsInto"`
	Sources     []string       `json:"sources"`
	Vendors     []string       `json:"vendors"`
	Zones       []string       `json:"zones"`
	NeedsTotals NeedsTotals    `json:"needsTotals"`
	Provenance  *Provenance    `json:"provenance,omitempty"`
}

// ItemQuantity is a quantity of a specific item, used for recipes, recycle
// yields and requirement lists.
type ItemQuantity struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name,omitempty"`
	Qty    int    `json:"qty"`
}

// CraftProduct is one inverse crafting edge: the item can be used to craft ProductID.
type CraftProduct struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
}

// NeedsTotals counts how many units of an item are required across quests and
// workshop upgrades.
type NeedsTotals struct {
	Quests   int `json:"quests"`
	Workshop int `json:"workshop"`
}

// Provenance records which sources contributed to an item record.
type Provenance struct {
	Wiki bool `json:"wiki"`
	API  bool `json:"api"`
}

// HasCategory reports whether the item's category matches one of the given
// normalized (lower-case, trimmed) category names.
func (i Item) HasCategory(categories map[string]struct{}) bool {
	if len(categories) == 0 || i.Category == "" {
		return false
	}
	_, ok := categories[NormalizeCategory(i.Category)]
	return ok
}
