package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

// ValidationError describes one structural mismatch against the section
// schema. Path is a dotted field path relative to the document root.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors aggregates the failures of one schema pass.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "schema validation failed: " + strings.Join(msgs, "; ")
}

// ValidateRaw runs a serialized document through the embedded JSON schema.
// It reports structural mismatches with field paths; the typed parse in
// ParseSection enforces the stricter per-variant rules afterwards.
func ValidateRaw(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &ValidationError{Path: "", Message: "invalid document: " + err.Error()}
	}
	if res.Valid() {
		return nil
	}
	errs := make(ValidationErrors, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		path := e.Field()
		if path == "(root)" {
			path = ""
		}
		errs = append(errs, &ValidationError{Path: path, Message: e.Description()})
	}
	return errs
}
