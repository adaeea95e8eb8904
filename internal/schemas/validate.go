// Package schemas provides JSON Schema validation for gap-analysis payloads.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed gap_analysis.schema.json
var gapAnalysisSchema []byte

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateGapAnalysis checks serialized gap-analysis JSON against the
// payload schema. It guards persisted history rows and export files against
// drift between the Go types and the documented wire format.
func ValidateGapAnalysis(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(gapAnalysisSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, resultErr := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   resultErr.Field(),
				Message: resultErr.Description(),
			})
		}
		return ve
	}

	return nil
}

// ValidateGapAnalysisValue marshals a value and validates the result.
func ValidateGapAnalysisValue(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for validation: %w", err)
	}
	return ValidateGapAnalysis(data)
}
