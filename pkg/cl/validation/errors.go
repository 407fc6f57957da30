package validation

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string // Field name
	Rule    string // Rule that was violated (e.g., "Required")
	Message string // Human-readable message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsZero reports whether e carries no error.
func (e ValidationError) IsZero() bool {
	return e == ValidationError{}
}

// ValidationErrors is a collection of validation errors that can be accumulated.
type ValidationErrors []ValidationError

// Error implements the error interface, combining all error messages.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Check appends err unless it is the zero value.
func (e *ValidationErrors) Check(err ValidationError) {
	if !err.IsZero() {
		*e = append(*e, err)
	}
}

// IsPresent reports whether a value was supplied. Whitespace counts as a value.
func IsPresent(value string) bool {
	return value != ""
}

// RequiredString validates that a string field is present.
// Returns the zero ValidationError when the field is valid.
func RequiredString(field, value string) ValidationError {
	if !IsPresent(value) {
		return ValidationError{Field: field, Rule: "Required", Message: "is required"}
	}
	return ValidationError{}
}
