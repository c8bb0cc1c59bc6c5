package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/resource-service/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		var verr ValidationError
		if err := json.Unmarshal(resp.Body(), &verr.ValidationErrorResponse); err == nil {
			return &verr
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, messageOf(resp.Body(), body))
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, messageOf(resp.Body(), body))
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, messageOf(resp.Body(), body))
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// messageOf extracts the "message" field of a JSON error body, falling back
// to the raw body.
func messageOf(raw []byte, fallback string) string {
	var msg models.ErrorResponse
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return fallback
}
