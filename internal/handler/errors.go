package handler

// Generic HTTP error messages for client responses.
// Server-side failures never expose internal error details.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"
	ErrMsgDatasetUnavailable    = "Dataset is not loaded yet. Please try again later."
	ErrMsgMissingID             = "Missing id"
	ErrMsgInvalidFilter         = "Invalid %s filter '%s'"
)

// Validation messages per failing tag
const (
	ValidationMsgRequired = "This field is required"
	ValidationMsgItemRef  = "Must name an item"
	ValidationMsgMax      = "Must be at most %s"
	ValidationMsgMin      = "Must be at least %s"
	ValidationMsgInvalid  = "Invalid value"
)

// Success messages for API responses
const (
	MsgWantListEntryRemoved = "Want-list entry removed"
)

// Action names used when logging failed requests
const (
	ActionListItems      = "List items"
	ActionGetItem        = "Get item"
	ActionListQuests     = "List quests"
	ActionListChains     = "List chains"
	ActionGetChain       = "Get chain"
	ActionListUpgrades   = "List upgrades"
	ActionListProjects   = "List projects"
	ActionListDiagnostic = "List diagnostics"
	ActionReload         = "Reload dataset"
	ActionListWantList   = "List want-list"
	ActionAddWantList    = "Add want-list entry"
	ActionRemoveWantList = "Remove want-list entry"
	ActionResolve        = "Resolve want-list"
	ActionExpand         = "Expand want-list"
)

// Log messages
const (
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgDatasetReloaded   = "Dataset reloaded via API"
	LogMsgWantListEntrySent = "Want-list entry stored"
)

// Query parameters and path keys
const (
	ParamID       = "id"
	QueryIgnore   = "ignore"
	QueryCategory = "category"
	QueryQuery    = "q"
	QuerySeverity = "severity"
	QueryCode     = "code"
	QueryChain    = "chain"
	QueryBench    = "bench"
	listSeparator = ","
)

// Headers
const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabase       = "database connection failed"
	HealthMsgDataset        = "dataset not loaded"
)
