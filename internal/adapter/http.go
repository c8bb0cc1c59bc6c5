package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/utils"
	"github.com/MKhiriev/resource-service/models"
)

const traceIDHeader = "X-Trace-ID"

type traceIDKey struct{}

// WithTraceID returns a context whose requests carry traceID in X-Trace-ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

type createResourceBody struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// updateResourceBody omits nil fields so the server leaves them unchanged.
// A pointer to an empty slice is sent as [] and clears the tags.
type updateResourceBody struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type httpResourceAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPResourceAdapter constructs an HTTP implementation of
// [ResourceAdapter] for the server at address ("host:port" or a full URL).
// A zero timeout leaves requests bounded only by their context.
func NewHTTPResourceAdapter(address string, timeout time.Duration, logger *logger.Logger) (ResourceAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpResourceAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpResourceAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok && traceID != "" {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpResourceAdapter) CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error) {
	var created models.Resource

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createResourceBody{
			Name:        create.Name,
			Description: create.Description,
			Tags:        create.Tags,
		}).
		SetResult(&created).
		Post("/resources")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpResourceAdapter.CreateResource").Msg("create request failed")
		return models.Resource{}, fmt.Errorf("create resource request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	return created, nil
}

// ListResources always sends limit and offset so that limit=0 reaches the
// server instead of falling back to the default page size.
func (h *httpResourceAdapter) ListResources(ctx context.Context, query models.ListQuery) (models.ResourcePage, error) {
	var page models.ResourcePage

	req := h.request(ctx).
		SetQueryParam("limit", strconv.Itoa(query.Limit)).
		SetQueryParam("offset", strconv.Itoa(query.Offset)).
		SetResult(&page)
	if query.Query != "" {
		req.SetQueryParam("q", query.Query)
	}
	if query.Tag != "" {
		req.SetQueryParam("tag", query.Tag)
	}

	resp, err := req.Get("/resources")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpResourceAdapter.ListResources").Msg("list request failed")
		return models.ResourcePage{}, fmt.Errorf("list resources request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResourcePage{}, err
	}

	return page, nil
}

func (h *httpResourceAdapter) GetResource(ctx context.Context, id int64) (models.Resource, error) {
	var resource models.Resource

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&resource).
		Get("/resources/{id}")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpResourceAdapter.GetResource").Msg("get request failed")
		return models.Resource{}, fmt.Errorf("get resource request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	return resource, nil
}

func (h *httpResourceAdapter) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	var updated models.Resource

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(update.ID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(updateResourceBody{
			Name:        update.Name,
			Description: update.Description,
			Tags:        update.Tags,
		}).
		SetResult(&updated).
		Patch("/resources/{id}")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpResourceAdapter.UpdateResource").Msg("update request failed")
		return models.Resource{}, fmt.Errorf("update resource request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	return updated, nil
}

func (h *httpResourceAdapter) DeleteResource(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/resources/{id}")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpResourceAdapter.DeleteResource").Msg("delete request failed")
		return fmt.Errorf("delete resource request: %w", err)
	}

	return mapHTTPError(resp)
}
