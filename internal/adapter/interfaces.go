package adapter

import (
	"context"

	"github.com/MKhiriev/resource-service/models"
)

// ResourceAdapter is a typed client of the resource HTTP API.
//
// Non-2xx responses are returned as errors matching the sentinels in
// errors.go; a 400 carries the decoded field errors in [*ValidationError].
type ResourceAdapter interface {
	// CreateResource sends POST /resources.
	CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error)

	// ListResources sends GET /resources with query's filters and pagination.
	ListResources(ctx context.Context, query models.ListQuery) (models.ResourcePage, error)

	// GetResource sends GET /resources/{id}.
	GetResource(ctx context.Context, id int64) (models.Resource, error)

	// UpdateResource sends PATCH /resources/{id} with only the non-nil
	// fields of update.
	UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error)

	// DeleteResource sends DELETE /resources/{id}.
	DeleteResource(ctx context.Context, id int64) error
}
