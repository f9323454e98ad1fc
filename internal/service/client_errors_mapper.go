// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/asset-tracker/internal/adapter"
	"github.com/MKhiriev/asset-tracker/internal/app"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/validators"
)

// mapAdapterError translates the adapter's transport error into the same
// business error the server raised, using the response message to tell
// errors with equal status codes apart.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}
	msg := respErr.Body.Error

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if len(respErr.Body.Errors) > 0 {
			return &validators.ValidationError{Fields: respErr.Body.Errors}
		}
		switch msg {
		case app.MsgFaultyAssetsCannotBeAllocated:
			return fmt.Errorf("%w: %w", ErrInvariantViolated, err)
		case app.MsgAssetIDAlreadyExists:
			return fmt.Errorf("%w: %w", store.ErrDuplicateAssetID, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		case app.MsgAccessTokenRequired:
			return fmt.Errorf("%w: %w", ErrMissingToken, err)
		}

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrAssetNotFound, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}
