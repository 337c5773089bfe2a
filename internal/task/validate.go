package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"leaguetrack/internal/utils"
)

//go:embed tasks.schema.json
var embeddedSchema string

const schemaURL = "https://leaguetrack.invalid/tasks.schema.json"

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results. Validation is advisory:
// a dataset that fails validation still loads with field defaulting.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate checks a raw dataset document. JSON Schema validation against
// the embedded schema runs first; when the document is a bare array it is
// wrapped in the object form before validation. Structural fallback
// checks run when schema validation is unavailable.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("parse dataset: %w", err),
		})
		return result
	}

	// Bare arrays are the same dataset in shorthand form.
	if arr, ok := doc.([]interface{}); ok {
		doc = map[string]interface{}{"tasks": arr}
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(embeddedSchema)); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		validateMinimal(doc, result)
		return result
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		validateMinimal(doc, result)
		return result
	}

	result.UsedSchema = true
	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

// validateMinimal performs structural checks without JSON Schema.
func validateMinimal(doc interface{}, result *ValidationResult) {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("expected an object or array document"),
		})
		return
	}
	tasks, ok := obj["tasks"]
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "tasks",
			Err:  fmt.Errorf("missing required field"),
		})
		return
	}
	arr, ok := tasks.([]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "tasks",
			Err:  fmt.Errorf("expected an array"),
		})
		return
	}
	for i, el := range arr {
		if _, ok := el.(map[string]interface{}); !ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("tasks[%d]", i),
				Err:  fmt.Errorf("expected an object"),
			})
		}
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
