package service

import (
	"context"

	"github.com/MKhiriev/asset-tracker/internal/adapter"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
)

type clientAssetService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAssetService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAssetService {
	return &clientAssetService{adapter: serverAdapter, logger: logger}
}

func (c *clientAssetService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	assets, err := c.adapter.ListAssets(ctx, filter)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	c.logger.Debug().Int("count", len(assets)).Msg("assets listed")
	return assets, nil
}

func (c *clientAssetService) CreateAsset(ctx context.Context, req models.AssetRequest) (models.Asset, error) {
	req, err := prepareAssetRequest(req)
	if err != nil {
		return models.Asset{}, err
	}

	asset, err := c.adapter.CreateAsset(ctx, req)
	if err != nil {
		return models.Asset{}, mapAdapterError(err)
	}

	return asset, nil
}

func (c *clientAssetService) UpdateAsset(ctx context.Context, id int64, req models.AssetRequest) (models.Asset, error) {
	if id <= 0 {
		return models.Asset{}, store.ErrAssetNotFound
	}

	req, err := prepareAssetRequest(req)
	if err != nil {
		return models.Asset{}, err
	}

	asset, err := c.adapter.UpdateAsset(ctx, id, req)
	if err != nil {
		return models.Asset{}, mapAdapterError(err)
	}

	return asset, nil
}

func (c *clientAssetService) DeleteAsset(ctx context.Context, id int64) error {
	if id <= 0 {
		return store.ErrAssetNotFound
	}

	return mapAdapterError(c.adapter.DeleteAsset(ctx, id))
}

// prepareAssetRequest parses req with the server's rules and returns it in
// normalized wire form. The Faulty rule is checked after the field rules.
func prepareAssetRequest(req models.AssetRequest) (models.AssetRequest, error) {
	fields, err := validators.ParseAsset(req)
	if err != nil {
		return models.AssetRequest{}, err
	}
	if fields.Status == models.StatusFaulty && fields.IsAssigned() {
		return models.AssetRequest{}, ErrInvariantViolated
	}

	return fields.ToRequest(), nil
}
