package service

import (
	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	AssetService   AssetService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		AssetService:   NewAssetService(storages.AssetRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
