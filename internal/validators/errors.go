package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Messages reported per field. Wording follows the flattened error format
// clients of the resource API already parse.
const (
	MessageRequired        = "Required"
	MessageEmptyString     = "String must contain at least 1 character(s)"
	MessageTagComma        = "Tags must not contain commas"
	MessageTagEmpty        = "Tags must not be empty"
	MessageNegativeNumber  = "Number must be greater than or equal to 0"
	MessagePositiveNumber  = "Number must be greater than 0"
	MessageExpectedInteger = "Expected integer, received string"
	MessageInvalidJSON     = "Invalid JSON body"
	MessageExpectedObject  = "Expected object"
)

// TypeMismatch formats the message for a value of the wrong JSON type.
func TypeMismatch(expected, received string) string {
	return fmt.Sprintf("Expected %s, received %s", expected, received)
}

// ValidationError collects every problem found in one request.
//
// FormErrors describe the payload as a whole, FieldErrors are keyed by the
// JSON or query parameter name.
type ValidationError struct {
	FormErrors  []string
	FieldErrors map[string][]string
}

// NewValidationError returns an empty ValidationError ready to collect errors.
func NewValidationError() *ValidationError {
	return &ValidationError{
		FormErrors:  make([]string, 0),
		FieldErrors: make(map[string][]string),
	}
}

func (e *ValidationError) AddFormError(message string) {
	e.FormErrors = append(e.FormErrors, message)
}

func (e *ValidationError) AddFieldError(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string][]string)
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

// HasErrors reports whether anything was collected.
func (e *ValidationError) HasErrors() bool {
	return len(e.FormErrors) > 0 || len(e.FieldErrors) > 0
}

// Err returns e as an error, or nil when nothing was collected.
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Error lists form errors first, then field errors sorted by field name.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.FormErrors)+len(e.FieldErrors))
	parts = append(parts, e.FormErrors...)

	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.FieldErrors[field], ", "))
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
