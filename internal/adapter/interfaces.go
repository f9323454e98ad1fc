// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the asset-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Failed requests are mapped by mapHTTPError to a [*ResponseError] that
// unwraps to one of the sentinel values in errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401) and
// still read the server's message and field errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/asset-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// asset-tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for a session token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// ListAssets returns the assets matching filter. Empty filter fields are
	// not sent.
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)

	// CreateAsset registers a new asset and returns the stored record.
	CreateAsset(ctx context.Context, req models.AssetRequest) (models.Asset, error)

	// UpdateAsset replaces every writable field of the asset with the given
	// internal id and returns the stored record.
	UpdateAsset(ctx context.Context, id int64, req models.AssetRequest) (models.Asset, error)

	// DeleteAsset removes the asset with the given internal id.
	DeleteAsset(ctx context.Context, id int64) error
}
