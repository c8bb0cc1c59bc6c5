package models

// HealthResponse is the static descriptor served on the root endpoint.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

// ErrorResponse is the generic error body, e.g. {"message":"Not found"}.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with HTTP 400.
//
// FormErrors holds problems with the body as a whole (malformed JSON, a
// non-object payload); FieldErrors maps each failing field to its messages.
type ValidationErrorResponse struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}
