package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resource-service/internal/store"
	"github.com/MKhiriev/resource-service/internal/validators"
	"github.com/MKhiriev/resource-service/models"
)

// ResourceValidationService rejects invalid input before it reaches the
// wrapped service. Ids below 1 cannot exist and are reported as not found.
type ResourceValidationService struct {
	inner     ResourceService
	validator validators.Validator
}

func NewResourceValidationService() ResourceServiceWrapper {
	return &ResourceValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *ResourceValidationService) CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error) {
	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Resource{}, fmt.Errorf("error during resource validation before saving: %w", err)
	}

	return v.inner.CreateResource(ctx, create)
}

func (v *ResourceValidationService) ListResources(ctx context.Context, query models.ListQuery) (models.ResourcePage, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.ResourcePage{}, fmt.Errorf("error during list query validation: %w", err)
	}

	return v.inner.ListResources(ctx, query)
}

func (v *ResourceValidationService) GetResource(ctx context.Context, id int64) (models.Resource, error) {
	if id <= 0 {
		return models.Resource{}, store.ErrResourceNotFound
	}

	return v.inner.GetResource(ctx, id)
}

func (v *ResourceValidationService) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	if update.ID <= 0 {
		return models.Resource{}, store.ErrResourceNotFound
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Resource{}, fmt.Errorf("error during resource validation before update: %w", err)
	}

	return v.inner.UpdateResource(ctx, update)
}

func (v *ResourceValidationService) DeleteResource(ctx context.Context, id int64) error {
	if id <= 0 {
		return store.ErrResourceNotFound
	}

	return v.inner.DeleteResource(ctx, id)
}

func (v *ResourceValidationService) Wrap(wrapper ResourceService) ResourceService {
	v.inner = wrapper
	return v
}
