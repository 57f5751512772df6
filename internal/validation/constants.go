package validation

const schemaBaseURL = "https://arcdata.local/schemas/"

// schemaFiles maps raw export sections to their embedded schema file.
var schemaFiles = map[string]string{
	"items":          "items.schema.json",
	"quests":         "quests.schema.json",
	"hideoutModules": "hideoutModules.schema.json",
	"projects":       "projects.schema.json",
}

// Error and diagnostic messages
const (
	ErrMsgLoadSchema     = "failed to load schema"
	ErrMsgCompileSchema  = "failed to compile schema"
	ErrMsgUnknownSection = "no schema for section"

	DiagFmtUnparseable = "%s document is not valid JSON: %v"
	DiagFmtViolation   = "at %s: %s"

	rootLocation = "(root)"
)
