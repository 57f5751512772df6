package questgraph

// Log messages
const (
	LogMsgQuestsDerived = "Quest chains derived"
)

// Diagnostic message formats
const (
	DiagFmtNoQuestID      = "raw quest %q has no usable id; excluded from the quest graph"
	DiagFmtDuplicateQuest = "raw quest %q duplicates canonical id %s; first definition kept"
	DiagFmtAsymmetricEdge = "%s lists %s as %s but %s does not list it back"
	DiagFmtUnusableItem   = "%s entry %q of %s cannot be canonicalized; dropped"
	DiagFmtQuestCycle     = "quest chain %s contains a prerequisite cycle through: %s"
)

// Edge directions used in diagnostics
const (
	edgeNext     = "next quest"
	edgePrevious = "previous quest"
)

// Item list names used in diagnostics
const (
	listRequirement = "requirement"
	listReward      = "reward"
)

// cycleSeparator joins the ids of quests stuck in a cycle
const cycleSeparator = ", "
