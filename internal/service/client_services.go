package service

import (
	"github.com/MKhiriev/asset-tracker/internal/adapter"
	"github.com/MKhiriev/asset-tracker/internal/logger"
)

// ClientServices aggregates the services used by the command-line client.
type ClientServices struct {
	AuthService  ClientAuthService
	AssetService ClientAssetService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, logger),
		AssetService: NewClientAssetService(serverAdapter, logger),
	}
}
