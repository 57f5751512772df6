package main

import "time"

// Flag names
const (
	flagDataDir      = "data-dir"
	flagOutputDir    = "output-dir"
	flagConfig       = "config"
	flagSkipItems    = "skip-items"
	flagSkipQuests   = "skip-quests"
	flagSkipUpgrades = "skip-upgrades"
	flagSkipProjects = "skip-projects"
	flagDryRun       = "dry-run"
	flagReason       = "reason"
	flagIgnore       = "ignore"
	flagJSON         = "json"
	flagNotes        = "notes"
	flagRevoke       = "revoke"
	flagRebuild      = "rebuild"
	flagPort         = "port"
)

const shutdownTimeout = 30 * time.Second

// Output formats
const (
	fmtRunSummary     = "Run %s finished in %s\n"
	fmtCounts         = "  items %d · quests %d · chains %d · upgrades %d · projects %d · vendors %d\n"
	fmtDiagHeader     = "Diagnostics (%d): %d error, %d warning, %d info\n"
	fmtDiagLine       = "  - %s\n"
	fmtWritten        = "Wrote canonical files to %s\n"
	msgDryRun         = "Dry run: nothing written"
	msgNoIssues       = "No issues found."
	fmtEntry          = "%s  %s x%d%s\n"
	msgEmptyWantList  = "Want-list is empty."
	fmtAdded          = "Added %s x%d (%s)\n"
	fmtRemoved        = "Removed %s\n"
	fmtResolvedHeader = "%s x%d\n"
	fmtUnknownItem    = "%s x%d (unknown item)\n"
	fmtRequirement    = "    needs %s x%d (depth %d)\n"
	fmtProduct        = "    crafts into %s (%d per craft, %d total)\n"
	fmtMaterialSrc    = "    recycle %s x%d for %s x%d\n"
	fmtMaterialYield  = "    recycling it yields %s x%d\n"
	fmtPassApproved   = "Pass %s approved: %t\n"
	errMsgValidation  = "validation found errors"
	errMsgBadQuantity = "quantity must be a whole number"
)
