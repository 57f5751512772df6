package storage

// Default file layout, relative to the data and output directories
const (
	DefaultRawItemsFile    = "raw/items.json"
	DefaultRawQuestsFile   = "raw/quests.json"
	DefaultRawModulesFile  = "raw/hideoutModules.json"
	DefaultRawProjectsFile = "raw/projects.json"
	DefaultItemsFile       = "items.json"
	DefaultQuestsFile      = "quests.json"
	DefaultChainsFile      = "chains.json"
	DefaultUpgradesFile    = "workbench-upgrades.json"
	DefaultProjectsFile    = "projects.json"
	DefaultVendorsFile     = "vendors.json"
	DefaultMetaFile        = "meta/index.json"
)

// Log messages
const (
	LogMsgRawLoaded     = "Loaded raw export documents"
	LogMsgPriorLoaded   = "Loaded prior canonical dataset"
	LogMsgDatasetSaved  = "Saved canonical dataset"
	LogMsgMetaSaved     = "Saved pipeline meta"
	LogMsgFileMissing   = "Source file missing, treating as empty"
	LogMsgMetaMissing   = "Pipeline meta missing"
	ErrMsgReadRaw       = "failed to read raw export"
	ErrMsgLoadCanonical = "failed to load canonical file"
	ErrMsgSaveCanonical = "failed to save canonical file"
	ErrMsgLoadMeta      = "failed to load pipeline meta"
	ErrMsgSaveMeta      = "failed to save pipeline meta"
)
