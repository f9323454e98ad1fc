package service

import (
	"context"

	"github.com/MKhiriev/asset-tracker/models"
)

// ClientAuthService defines the client-side contract for signing in to the
// server. The obtained token is kept by the underlying adapter.
type ClientAuthService interface {
	// Login checks the credentials locally, exchanges them for a token and
	// returns the authenticated principal.
	Login(ctx context.Context, credentials models.Credentials) (models.Principal, error)
}

// ClientAssetService defines the client-side contract for the asset routes.
// Input is parsed with the same rules the server applies, so malformed
// requests fail before any network call.
type ClientAssetService interface {
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	CreateAsset(ctx context.Context, req models.AssetRequest) (models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, req models.AssetRequest) (models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
}
