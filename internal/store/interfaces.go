package store

import (
	"context"

	"github.com/MKhiriev/resource-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ResourceRepository is the data-access contract for the resources table.
//
// Lookups, updates and deletes of a missing id return [ErrResourceNotFound];
// every other failure is a wrapped low-level error.
type ResourceRepository interface {
	// CreateResource inserts a row and returns it with the generated id and
	// creation timestamp.
	CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error)

	// GetResource returns the resource with the given id.
	GetResource(ctx context.Context, id int64) (models.Resource, error)

	// ListResources returns one page of matching resources, newest first,
	// together with the total match count.
	ListResources(ctx context.Context, query models.ListQuery) (models.ResourcePage, error)

	// UpdateResource applies the non-nil fields of update and returns the
	// resulting row.
	UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error)

	// DeleteResource permanently removes the row.
	DeleteResource(ctx context.Context, id int64) error
}

// ErrorClassificator labels driver errors as retryable or not.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
