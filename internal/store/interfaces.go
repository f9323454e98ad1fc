package store

import (
	"context"

	"github.com/MKhiriev/asset-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists login principals.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned id.
	// Returns [ErrLoginAlreadyExists] when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the user with the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// AssetRepository persists asset records in the "assets" table.
type AssetRepository interface {
	// Create inserts asset and returns the stored row with its generated id.
	// Returns [ErrDuplicateAssetID] when AssetID is taken.
	Create(ctx context.Context, asset models.Asset) (models.Asset, error)
	// List returns the assets matching filter, newest first.
	List(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	// Update replaces every mutable field of the row identified by asset.ID
	// and returns the stored row. CreatedAt is never changed.
	// Returns [ErrAssetNotFound] or [ErrDuplicateAssetID].
	Update(ctx context.Context, asset models.Asset) (models.Asset, error)
	// Delete removes the row with the given id or returns [ErrAssetNotFound].
	Delete(ctx context.Context, id int64) error
}
