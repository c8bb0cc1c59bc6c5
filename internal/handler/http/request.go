package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/resource-service/internal/validators"
	"github.com/MKhiriev/resource-service/models"
)

// payload is a decoded JSON object keyed by field name. Keeping raw values
// lets every field be type-checked on its own and tells absent fields apart
// from present ones.
type payload map[string]json.RawMessage

// jsonKind names the JSON type of raw the way validation messages do.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "undefined"
	}

	switch trimmed[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// decodeObject reads the body as a JSON object. An empty body decodes to an
// empty object. Malformed JSON and non-object values are validation errors.
func decodeObject(r *http.Request) (payload, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return payload{}, nil
	}

	verr := validators.NewValidationError()
	if !json.Valid(body) {
		verr.AddFormError(validators.MessageInvalidJSON)
		return nil, verr
	}
	if kind := jsonKind(body); kind != "object" {
		verr.AddFormError(validators.TypeMismatch("object", kind))
		return nil, verr
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		verr.AddFormError(validators.MessageInvalidJSON)
		return nil, verr
	}

	return p, nil
}

// has reports whether the field was sent.
func (p payload) has(field string) bool {
	_, ok := p[field]
	return ok
}

// stringField returns nil when the field is absent or not a string; the
// latter is recorded in verr.
func (p payload) stringField(field string, verr *validators.ValidationError) *string {
	raw, ok := p[field]
	if !ok {
		return nil
	}

	var value string
	if jsonKind(raw) != "string" || json.Unmarshal(raw, &value) != nil {
		verr.AddFieldError(field, validators.TypeMismatch("string", jsonKind(raw)))
		return nil
	}

	return &value
}

// stringsField decodes an array of strings, recording one error per
// offending element.
func (p payload) stringsField(field string, verr *validators.ValidationError) *[]string {
	raw, ok := p[field]
	if !ok {
		return nil
	}

	var items []json.RawMessage
	if jsonKind(raw) != "array" || json.Unmarshal(raw, &items) != nil {
		verr.AddFieldError(field, validators.TypeMismatch("array", jsonKind(raw)))
		return nil
	}

	values := make([]string, 0, len(items))
	valid := true
	for _, item := range items {
		var value string
		if jsonKind(item) != "string" || json.Unmarshal(item, &value) != nil {
			verr.AddFieldError(field, validators.TypeMismatch("string", jsonKind(item)))
			valid = false
			continue
		}
		values = append(values, value)
	}

	if !valid {
		return nil
	}
	return &values
}

// decodeResourceCreate checks the shape of a create body. name is required.
func decodeResourceCreate(p payload) (models.ResourceCreate, error) {
	verr := validators.NewValidationError()

	var create models.ResourceCreate
	if !p.has(validators.FieldName) {
		verr.AddFieldError(validators.FieldName, validators.MessageRequired)
	} else if name := p.stringField(validators.FieldName, verr); name != nil {
		create.Name = *name
	}

	create.Description = p.stringField(validators.FieldDescription, verr)

	if tags := p.stringsField(validators.FieldTags, verr); tags != nil {
		create.Tags = *tags
	}

	return create, verr.Err()
}

// decodeResourceUpdate checks the shape of an update body. Every field is
// optional; only fields present in the body are set.
func decodeResourceUpdate(id int64, p payload) (models.ResourceUpdate, error) {
	verr := validators.NewValidationError()

	update := models.ResourceUpdate{
		ID:          id,
		Name:        p.stringField(validators.FieldName, verr),
		Description: p.stringField(validators.FieldDescription, verr),
		Tags:        p.stringsField(validators.FieldTags, verr),
	}

	return update, verr.Err()
}

// parseListQuery reads q, tag, limit and offset. Missing or empty limit and
// offset fall back to their defaults; anything else must be an integer.
// Range checks and clamping happen in the service.
func parseListQuery(values url.Values) (models.ListQuery, error) {
	verr := validators.NewValidationError()

	query := models.ListQuery{
		Query:  values.Get(validators.FieldQuery),
		Tag:    values.Get(validators.FieldTag),
		Limit:  models.DefaultListLimit,
		Offset: 0,
	}

	if n, ok := parseIntParam(values, validators.FieldLimit, verr); ok {
		query.Limit = n
	}
	if n, ok := parseIntParam(values, validators.FieldOffset, verr); ok {
		query.Offset = n
	}

	return query, verr.Err()
}

func parseIntParam(values url.Values, name string, verr *validators.ValidationError) (int, bool) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.AddFieldError(name, validators.MessageExpectedInteger)
		return 0, false
	}

	return n, true
}

// resourceIDFromRequest parses the {id} path parameter.
func resourceIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResourceID, raw)
	}

	return id, nil
}
