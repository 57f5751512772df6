// Package validation checks raw export documents against embedded JSON schemas.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaValidator validates raw export documents by section name
type SchemaValidator interface {
	Sections() []string
	ValidateBytes(section string, data []byte) (domain.Diagnostics, error)
}

type validator struct {
	schemas map[string]*jsonschema.Schema
	printer *message.Printer
}

// NewSchemaValidator compiles every embedded schema
func NewSchemaValidator() (SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	v := &validator{
		schemas: make(map[string]*jsonschema.Schema, len(schemaFiles)),
		printer: message.NewPrinter(language.English),
	}

	for section, file := range schemaFiles {
		raw, err := schemaFS.ReadFile("schemas/" + file)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, file, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, file, err)
		}
		url := schemaBaseURL + file
		if err := compiler.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, file, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, file, err)
		}
		v.schemas[section] = schema
	}
	return v, nil
}

// Sections lists the sections a schema exists for, sorted
func (v *validator) Sections() []string {
	out := make([]string, 0, len(v.schemas))
	for s := range v.schemas {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ValidateBytes checks one raw document. Findings are diagnostics; the error
// is reserved for an unknown section. Empty documents are valid.
func (v *validator) ValidateBytes(section string, data []byte) (domain.Diagnostics, error) {
	var diags domain.Diagnostics

	schema, ok := v.schemas[section]
	if !ok {
		return diags, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownSection, section)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return diags, nil
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		diags.Add(domain.SeverityError, domain.CodeMalformedRecord, section, DiagFmtUnparseable, section, err)
		return diags, nil
	}

	err = schema.Validate(instance)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		for _, leaf := range v.collect(verr, nil) {
			diags.Warn(domain.CodeSchemaViolation, entityFor(section, data, leaf.InstanceLocation),
				DiagFmtViolation, location(leaf.InstanceLocation), leaf.ErrorKind.LocalizedString(v.printer))
		}
	}
	return diags, nil
}

// collect gathers the errors worth reporting. Alternatives (anyOf, oneOf) are
// reported as a whole rather than one error per failed branch.
func (v *validator) collect(err *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	switch err.ErrorKind.(type) {
	case *kind.AnyOf, *kind.OneOf:
		return append(out, err)
	}
	if len(err.Causes) == 0 {
		return append(out, err)
	}
	for _, cause := range err.Causes {
		out = v.collect(cause, out)
	}
	return out
}

func location(path []string) string {
	if len(path) == 0 {
		return rootLocation
	}
	return "/" + strings.Join(path, "/")
}

// entityFor names the record a violation belongs to: its id when it has one,
// else section[index].
func entityFor(section string, data []byte, path []string) string {
	if len(path) == 0 {
		return section
	}
	index, err := strconv.Atoi(path[0])
	if err != nil {
		return section
	}
	if id := gjson.GetBytes(data, path[0]+".id"); id.Type == gjson.String && id.Str != "" {
		return id.Str
	}
	return fmt.Sprintf("%s[%d]", section, index)
}
