package service

import (
	"context"

	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/store"
	"github.com/MKhiriev/resource-service/models"
)

type resourceService struct {
	resourceRepository store.ResourceRepository

	logger *logger.Logger
}

// NewResourceService returns the undecorated service. Input is assumed valid;
// wrap it with [NewResourceValidationService] before exposing it.
func NewResourceService(resourceRepository store.ResourceRepository, logger *logger.Logger) ResourceService {
	return &resourceService{
		resourceRepository: resourceRepository,
		logger:             logger,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error) {
	create.Tags = models.DecodeTags(models.EncodeTags(create.Tags))
	return s.resourceRepository.CreateResource(ctx, create)
}

// ListResources clamps the page size before querying.
func (s *resourceService) ListResources(ctx context.Context, query models.ListQuery) (models.ResourcePage, error) {
	query.Limit = models.ClampLimit(query.Limit)
	return s.resourceRepository.ListResources(ctx, query)
}

func (s *resourceService) GetResource(ctx context.Context, id int64) (models.Resource, error) {
	return s.resourceRepository.GetResource(ctx, id)
}

func (s *resourceService) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	if update.IsEmpty() {
		return s.resourceRepository.GetResource(ctx, update.ID)
	}
	return s.resourceRepository.UpdateResource(ctx, update)
}

func (s *resourceService) DeleteResource(ctx context.Context, id int64) error {
	return s.resourceRepository.DeleteResource(ctx, id)
}
