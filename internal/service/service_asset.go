package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/models"
)

// assetService is the innermost AssetService. It assumes validated input,
// stamps creation time and talks to the repository.
type assetService struct {
	assetRepository store.AssetRepository

	// now returns the creation timestamp of new assets.
	now func() time.Time

	logger *logger.Logger
}

// NewAssetService returns the asset service wrapped with input validation
// and the Faulty/assigned_to check.
func NewAssetService(assetRepository store.AssetRepository, logger *logger.Logger) AssetService {
	return NewAssetValidationService().Wrap(newAssetService(assetRepository, time.Now, logger))
}

func newAssetService(assetRepository store.AssetRepository, now func() time.Time, logger *logger.Logger) *assetService {
	return &assetService{
		assetRepository: assetRepository,
		now:             now,
		logger:          logger,
	}
}

func (s *assetService) CreateAsset(ctx context.Context, fields models.AssetFields) (models.Asset, error) {
	created, err := s.assetRepository.Create(ctx, fields.ToAsset(0, s.now().UTC()))
	if err != nil {
		return models.Asset{}, fmt.Errorf("create asset: %w", mapConstraintError(err))
	}

	return created, nil
}

func (s *assetService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	assets, err := s.assetRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	if assets == nil {
		assets = []models.Asset{}
	}
	return assets, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id int64, fields models.AssetFields) (models.Asset, error) {
	updated, err := s.assetRepository.Update(ctx, fields.ToAsset(id, time.Time{}))
	if err != nil {
		return models.Asset{}, fmt.Errorf("update asset %d: %w", id, mapConstraintError(err))
	}

	return updated, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id int64) error {
	if err := s.assetRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete asset %d: %w", id, err)
	}

	return nil
}

// mapConstraintError turns a CHECK constraint rejection from the database
// into the invariant error the upper layers understand.
func mapConstraintError(err error) error {
	if errors.Is(err, store.ErrConstraintViolated) {
		return fmt.Errorf("%w: %w", ErrInvariantViolated, err)
	}
	return err
}
