package rawdata

// Raw field names
const (
	fieldID                 = "id"
	fieldName               = "name"
	fieldDescription        = "description"
	fieldType               = "type"
	fieldRarity             = "rarity"
	fieldValue              = "value"
	fieldRecipe             = "recipe"
	fieldRecyclesInto       = "recyclesInto"
	fieldSalvagesInto       = "salvagesInto"
	fieldImageFilename      = "imageFilename"
	fieldTrader             = "trader"
	fieldObjectives         = "objectives"
	fieldRequiredItemIDs    = "requiredItemIds"
	fieldRewardItemIDs      = "rewardItemIds"
	fieldXP                 = "xp"
	fieldPreviousQuestIDs   = "previousQuestIds"
	fieldNextQuestIDs       = "nextQuestIds"
	fieldLevels             = "levels"
	fieldLevel              = "level"
	fieldRequirementItemIDs = "requirementItemIds"
	fieldPhases             = "phases"
	fieldPhase              = "phase"
	fieldItemID             = "itemId"
	fieldQuantity           = "quantity"
	fieldQty                = "qty"
)

// Section names used in diagnostics
const (
	SectionItems    = "items"
	SectionQuests   = "quests"
	SectionModules  = "hideoutModules"
	SectionProjects = "projects"
)

// Error and diagnostic message formats
const (
	ErrMsgNotAnArray   = "raw document is not a JSON array"
	ErrMsgInvalidJSON  = "raw document is not valid JSON"
	DiagFmtNotAnObject = "%s entry %d is not an object; skipped"
)

// DefaultQuantity is used when a raw quantity is missing or not numeric.
const DefaultQuantity = 1
