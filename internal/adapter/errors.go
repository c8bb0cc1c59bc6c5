package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/resource-service/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

// ValidationError is a 400 response decoded into its form and field errors.
// It matches [ErrBadRequest].
type ValidationError struct {
	models.ValidationErrorResponse
}

func (e *ValidationError) Error() string {
	parts := append([]string{}, e.FormErrors...)

	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.FieldErrors[field], ", ")))
	}

	return fmt.Sprintf("%s: %s", ErrBadRequest, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadRequest
}
