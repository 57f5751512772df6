package domain

import "fmt"

// Severity ranks a diagnostic. None of them abort a pipeline run.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DiagnosticCode identifies the kind of data anomaly.
type DiagnosticCode string

const (
	CodeMalformedRecord  DiagnosticCode = "malformed-record"
	CodeInvalidID        DiagnosticCode = "invalid-id"
	CodeMissingReference DiagnosticCode = "missing-reference"
	CodeCraftingCycle    DiagnosticCode = "crafting-cycle"
	CodeQuestCycle       DiagnosticCode = "quest-cycle"
	CodeAsymmetricEdge   DiagnosticCode = "asymmetric-edge"
	CodeDuplicateID      DiagnosticCode = "duplicate-id"
	CodeSchemaViolation  DiagnosticCode = "schema-violation"
)

// Diagnostic is a non-fatal finding about the source data.
type Diagnostic struct {
	Severity Severity       `json:"severity"`
	Code     DiagnosticCode `json:"code"`
	Message  string         `json:"message"`
	Entity   string         `json:"entity,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Entity == "" {
		return fmt.Sprintf("[%s] %s: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("[%s] %s (%s): %s", d.Severity, d.Code, d.Entity, d.Message)
}

// Diagnostics collects findings in the order they were reported.
type Diagnostics struct {
	Items []Diagnostic `json:"items"`
}

// Add appends a diagnostic built from a format string.
func (d *Diagnostics) Add(severity Severity, code DiagnosticCode, entity, format string, args ...interface{}) {
	d.Items = append(d.Items, Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Entity:   entity,
	})
}

// Warn appends a warning-level diagnostic.
func (d *Diagnostics) Warn(code DiagnosticCode, entity, format string, args ...interface{}) {
	d.Add(SeverityWarning, code, entity, format, args...)
}

// Info appends an info-level diagnostic.
func (d *Diagnostics) Info(code DiagnosticCode, entity, format string, args ...interface{}) {
	d.Add(SeverityInfo, code, entity, format, args...)
}

// Merge appends every diagnostic from other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Items = append(d.Items, other.Items...)
}

// Count returns the number of diagnostics with the given code.
func (d *Diagnostics) Count(code DiagnosticCode) int {
	n := 0
	for _, item := range d.Items {
		if item.Code == code {
			n++
		}
	}
	return n
}

// Len returns the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Items)
}
