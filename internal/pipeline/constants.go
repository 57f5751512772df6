package pipeline

// Pass keys of the pipeline meta document
const (
	PassDecode    = "A"
	PassItems     = "B"
	PassWorkshop  = "C"
	PassQuests    = "D"
	PassConflicts = "E"
	PassFinalize  = "F"
)

// MetaVersion is bumped when the meta document layout changes
const MetaVersion = 1

var passLabels = map[string]string{
	PassDecode:    "Pass A · Raw Export Decode",
	PassItems:     "Pass B · Item Graph",
	PassWorkshop:  "Pass C · Workshop Upgrades + Projects",
	PassQuests:    "Pass D · Quests + Chains",
	PassConflicts: "Pass E · Conflict Resolution",
	PassFinalize:  "Pass F · Finalization",
}

// PassKeys lists the pass keys in order
var PassKeys = []string{PassDecode, PassItems, PassWorkshop, PassQuests, PassConflicts, PassFinalize}

// Log messages
const (
	LogMsgRunStarted   = "Pipeline run started"
	LogMsgRunFinished  = "Pipeline run finished"
	LogMsgRunFailed    = "Pipeline run failed"
	LogMsgSectionKept  = "Section excluded, prior records kept"
	LogMsgPassApproved = "Pipeline pass approval updated"

	LogMsgSnapshotLoaded   = "Canonical dataset loaded"
	LogMsgSnapshotReloaded = "Dataset rebuilt in memory"
)

// Diagnostic message formats
const (
	DiagFmtUndecodable      = "%s export could not be decoded: %v"
	DiagFmtMissingReference = "%s of %s references unknown item %s"
	DiagFmtDidYouMean       = " (did you mean %s?)"
)

// Reference list names used in diagnostics
const (
	listQuestItems          = "quest requirement"
	listQuestRewards        = "quest reward"
	listUpgradeItems        = "upgrade requirement"
	listProjectRequirements = "project requirement"
)

const approvalNotesFmt = "%s (approved %s)"
