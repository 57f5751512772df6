package domain

import "time"

// WantListEntry is a user-declared desire for Qty units of an item.
type WantListEntry struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId" validate:"required"`
	Qty       int       `json:"qty" validate:"min=1"`
	Reason    string    `json:"reason,omitempty" validate:"max=500"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaterialKind tags how a material link was found.
type MaterialKind string

const (
	// MaterialKindSatisfies means recycling another item yields a material
	// the target's requirement tree needs.
	MaterialKindSatisfies MaterialKind = "satisfies"
	// MaterialKindYield means recycling the target itself yields the material.
	MaterialKindYield MaterialKind = "yield"
)

// Requirement is one flattened entry of a target's crafting tree. Qty is summed
// over every path to the item and Depth is the shallowest path (direct
// requirements have depth 1).
type Requirement struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
	Depth  int    `json:"depth"`
}

// ProductLink is an item the target can be crafted into. PerCraft is how many
// target units one craft consumes; Qty is PerCraft scaled by the wish quantity.
type ProductLink struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	PerCraft    int    `json:"perCraft"`
	Qty         int    `json:"qty"`
}

// MaterialLink pairs a material with an item that recycles into it.
type MaterialLink struct {
	Kind           MaterialKind `json:"kind"`
	MaterialID     string       `json:"materialId"`
	MaterialName   string       `json:"materialName"`
	SourceID       string       `json:"sourceId"`
	SourceName     string       `json:"sourceName"`
	YieldPerSource int          `json:"yieldPerSource"`
	RequiredQty    int          `json:"requiredQty,omitempty"`
	SourcesNeeded  int          `json:"sourcesNeeded,omitempty"`
	Qty            int          `json:"qty,omitempty"`
}

// WantListResolvedEntry is the expanded view of one WantListEntry.
type WantListResolvedEntry struct {
	Entry        WantListEntry  `json:"entry"`
	Item         *Item          `json:"item,omitempty"`
	Requirements []Requirement  `json:"requirements"`
	Products     []ProductLink  `json:"products"`
	Materials    []MaterialLink `json:"materials"`
}
