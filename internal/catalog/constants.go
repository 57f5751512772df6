package catalog

// Visit states for cycle detection
const (
	stateUnvisited = 0
	stateVisiting  = 1
	stateDone      = 2
)

// CycleSeparator joins ids in a cycle signature
const CycleSeparator = " -> "

// Log messages
const (
	LogMsgItemsBuilt = "Item graph built"
)

// Diagnostic message formats
const (
	DiagFmtNoItemID          = "raw item %q has no usable id or name; skipped"
	DiagFmtDuplicateItem     = "raw item %q duplicates canonical id %s; first definition kept"
	DiagFmtUnusableReference = "%s entry %q of %s cannot be canonicalized; dropped"
	DiagFmtMissingReference  = "%s of %s references unknown item %s"
	DiagFmtDidYouMean        = " (did you mean %s?)"
	DiagFmtCraftingCycle     = "crafting cycle: %s"
)

// Reference list names used in diagnostics
const (
	listRecipe  = "recipe"
	listRecycle = "recycle"
)
