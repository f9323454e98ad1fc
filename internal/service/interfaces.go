package service

import (
	"context"

	"github.com/MKhiriev/asset-tracker/models"
)

// AuthService verifies credentials and issues and checks session tokens.
type AuthService interface {
	// Login checks credentials against the stored bcrypt hash.
	// Returns a *validators.ValidationError for missing fields and
	// [ErrInvalidCredentials] for an unknown user or a wrong password.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken returns [ErrMissingToken] for an empty string and
	// [ErrInvalidToken] for any token that fails verification.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// SeedUser creates the account if its username is not taken yet.
	SeedUser(ctx context.Context, username, password string) error
}

// AssetService executes the asset operations behind the HTTP routes.
type AssetService interface {
	CreateAsset(ctx context.Context, fields models.AssetFields) (models.Asset, error)
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, fields models.AssetFields) (models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
}

// AssetServiceWrapper defines middleware composition for AssetService.
// Implementations wrap an existing AssetService to add behavior such as
// validation.
type AssetServiceWrapper interface {
	Wrap(AssetService) AssetService
}

// AppInfoService reports what the running server is: the plain version for
// GET /version and the health payload for GET /.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
