package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/store"
	"github.com/MKhiriev/resource-service/internal/utils"
	"github.com/MKhiriev/resource-service/internal/validators"
	"github.com/MKhiriev/resource-service/models"
)

var errorStatusMap = map[error]int{
	ErrBodyTooLarge:      http.StatusRequestEntityTooLarge,
	ErrInvalidResourceID: http.StatusNotFound,

	validators.ErrValidation:      http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusInternalServerError,
	validators.ErrUnknownField:    http.StatusInternalServerError,

	store.ErrResourceNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err in the shape its status calls for: the flattened
// validation body for 400, {"message": ...} otherwise. Server errors are
// logged; the detail never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	switch status {
	case http.StatusBadRequest:
		var verr *validators.ValidationError
		if errors.As(err, &verr) {
			utils.WriteJSON(w, newValidationErrorResponse(verr), status)
			return
		}
		utils.WriteMessage(w, messageBadRequestBody, status)
	case http.StatusNotFound:
		utils.WriteMessage(w, messageNotFound, status)
	case http.StatusRequestEntityTooLarge:
		utils.WriteMessage(w, messagePayloadTooBig, status)
	default:
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("request failed")
		utils.WriteMessage(w, messageInternalError, http.StatusInternalServerError)
	}
}

func newValidationErrorResponse(verr *validators.ValidationError) models.ValidationErrorResponse {
	resp := models.ValidationErrorResponse{
		FormErrors:  verr.FormErrors,
		FieldErrors: verr.FieldErrors,
	}
	if resp.FormErrors == nil {
		resp.FormErrors = []string{}
	}
	if resp.FieldErrors == nil {
		resp.FieldErrors = map[string][]string{}
	}
	return resp
}

// notFound is the router's NotFound handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, messageNotFound, http.StatusNotFound)
}
