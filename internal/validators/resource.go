package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/resource-service/models"
)

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldQuery       = "q"
	FieldTag         = "tag"
	FieldLimit       = "limit"
	FieldOffset      = "offset"
)

// ResourceValidator checks the business rules of resource payloads that
// already have the right shape.
type ResourceValidator struct {
}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate accepts models.ResourceCreate, models.ResourceUpdate and
// models.ListQuery (values or pointers). Every failing field is reported in
// the returned *ValidationError.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResourceCreate:
		return v.validateCreate(ctx, value, fields...)
	case *models.ResourceCreate:
		return v.validateCreate(ctx, *value, fields...)

	case models.ResourceUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ResourceUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	case models.ListQuery:
		return v.validateListQuery(ctx, value, fields...)
	case *models.ListQuery:
		return v.validateListQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateCreate(ctx context.Context, create models.ResourceCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldTags}
	}

	verr := NewValidationError()
	for _, f := range fields {
		switch f {
		case FieldName:
			validateName(verr, create.Name)
		case FieldTags:
			validateTags(verr, create.Tags)
		case FieldDescription:
			// any string is accepted
		default:
			return ErrUnknownField
		}
	}

	return verr.Err()
}

// validateUpdate checks only the fields the update carries.
func (v *ResourceValidator) validateUpdate(ctx context.Context, update models.ResourceUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldTags}
	}

	verr := NewValidationError()
	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID <= 0 {
				verr.AddFieldError(FieldID, MessagePositiveNumber)
			}
		case FieldName:
			if update.Name != nil {
				validateName(verr, *update.Name)
			}
		case FieldTags:
			if update.Tags != nil {
				validateTags(verr, *update.Tags)
			}
		case FieldDescription:
		default:
			return ErrUnknownField
		}
	}

	return verr.Err()
}

func (v *ResourceValidator) validateListQuery(ctx context.Context, query models.ListQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	verr := NewValidationError()
	for _, f := range fields {
		switch f {
		case FieldLimit:
			if query.Limit < 0 {
				verr.AddFieldError(FieldLimit, MessageNegativeNumber)
			}
		case FieldOffset:
			if query.Offset < 0 {
				verr.AddFieldError(FieldOffset, MessageNegativeNumber)
			}
		case FieldQuery, FieldTag:
		default:
			return ErrUnknownField
		}
	}

	return verr.Err()
}

func validateName(verr *ValidationError, name string) {
	if name == "" {
		verr.AddFieldError(FieldName, MessageEmptyString)
	}
}

// validateTags rejects tags that would not survive the comma-joined storage
// format: a comma splits the tag, a blank one disappears.
func validateTags(verr *ValidationError, tags []string) {
	var hasComma, hasBlank bool
	for _, tag := range tags {
		if strings.Contains(tag, models.TagSeparator) {
			hasComma = true
		}
		if strings.TrimSpace(tag) == "" {
			hasBlank = true
		}
	}

	if hasComma {
		verr.AddFieldError(FieldTags, MessageTagComma)
	}
	if hasBlank {
		verr.AddFieldError(FieldTags, MessageTagEmpty)
	}
}
