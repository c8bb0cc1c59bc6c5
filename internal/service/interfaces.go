package service

import (
	"context"

	"github.com/MKhiriev/resource-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResourceService implements the five resource operations.
//
// Not-found conditions surface as store.ErrResourceNotFound and invalid
// input as *validators.ValidationError.
type ResourceService interface {
	CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error)
	ListResources(ctx context.Context, query models.ListQuery) (models.ResourcePage, error)
	GetResource(ctx context.Context, id int64) (models.Resource, error)
	UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error)
	DeleteResource(ctx context.Context, id int64) error
}

// AppInfoService exposes static facts about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServiceName(ctx context.Context) string
}

// ResourceServiceWrapper defines middleware composition for ResourceService.
// Implementations wrap an existing ResourceService to add behavior such as
// logging or validating.
type ResourceServiceWrapper interface {
	Wrap(ResourceService) ResourceService // returns a decorated ResourceService applying additional behavior
}
