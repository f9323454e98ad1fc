package service

import (
	"context"

	"github.com/MKhiriev/asset-tracker/internal/adapter"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewInputValidator(),
		logger:    logger,
	}
}

func (c *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Principal, error) {
	if err := c.validator.Validate(ctx, credentials); err != nil {
		return models.Principal{}, err
	}

	resp, err := c.adapter.Login(ctx, credentials)
	if err != nil {
		c.logger.Debug().Err(err).Str("username", credentials.Username).Msg("login failed")
		return models.Principal{}, mapAdapterError(err)
	}

	return resp.User, nil
}
