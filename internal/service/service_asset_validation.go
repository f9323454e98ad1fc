package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
)

// AssetValidationService rejects invalid input before it reaches the wrapped
// AssetService.
type AssetValidationService struct {
	inner     AssetService
	validator validators.Validator
}

func NewAssetValidationService() AssetServiceWrapper {
	return &AssetValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *AssetValidationService) Wrap(inner AssetService) AssetService {
	v.inner = inner
	return v
}

func (v *AssetValidationService) CreateAsset(ctx context.Context, fields models.AssetFields) (models.Asset, error) {
	fields, err := v.checkFields(ctx, fields)
	if err != nil {
		return models.Asset{}, fmt.Errorf("asset validation before create failed: %w", err)
	}

	return v.inner.CreateAsset(ctx, fields)
}

// ListAssets returns an empty list without touching the store when the filter
// names a category or status that does not exist.
func (v *AssetValidationService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	if (filter.Category != "" && !filter.Category.IsValid()) || (filter.Status != "" && !filter.Status.IsValid()) {
		logger.FromContext(ctx).Debug().
			Str("category", string(filter.Category)).
			Str("status", string(filter.Status)).
			Msg("filter matches no asset")
		return []models.Asset{}, nil
	}

	return v.inner.ListAssets(ctx, filter)
}

func (v *AssetValidationService) UpdateAsset(ctx context.Context, id int64, fields models.AssetFields) (models.Asset, error) {
	if id <= 0 {
		return models.Asset{}, store.ErrAssetNotFound
	}

	fields, err := v.checkFields(ctx, fields)
	if err != nil {
		return models.Asset{}, fmt.Errorf("asset validation before update failed: %w", err)
	}

	return v.inner.UpdateAsset(ctx, id, fields)
}

func (v *AssetValidationService) DeleteAsset(ctx context.Context, id int64) error {
	if id <= 0 {
		return store.ErrAssetNotFound
	}

	return v.inner.DeleteAsset(ctx, id)
}

// checkFields validates every field first and only then the Faulty rule, so
// a request with field errors never reports ErrInvariantViolated. A blank
// assignee is normalized to nil.
func (v *AssetValidationService) checkFields(ctx context.Context, fields models.AssetFields) (models.AssetFields, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.AssetFields{}, err
	}

	if !fields.IsAssigned() {
		fields.AssignedTo = nil
	}

	if fields.Status == models.StatusFaulty && fields.AssignedTo != nil {
		return models.AssetFields{}, ErrInvariantViolated
	}

	return fields, nil
}
