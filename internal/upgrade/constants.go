package upgrade

// Defaults
const (
	DefaultBenchName  = "Workbench"
	upgradeNameFormat = "%s · Level %d"
	phaseNameFormat   = "Phase %d"
)

// Log messages
const (
	LogMsgUpgradesBuilt = "Workshop upgrades built"
	LogMsgProjectsBuilt = "Projects built"
)

// Diagnostic message formats
const (
	DiagFmtDuplicateUpgrade = "hideout module %q repeats upgrade %s; first definition kept"
	DiagFmtDuplicateProject = "raw project %q repeats project %s; first definition kept"
	DiagFmtUnusableItem     = "requirement %q of %s cannot be canonicalized; dropped"
)
