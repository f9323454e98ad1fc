package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/asset-tracker/internal/app"
	"github.com/MKhiriev/asset-tracker/internal/service"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", &validators.ValidationError{}, http.StatusBadRequest, app.MsgValidationFailed},
		{"invariant", service.ErrInvariantViolated, http.StatusBadRequest, app.MsgFaultyAssetsCannotBeAllocated},
		{"invariant from check constraint", fmt.Errorf("%w: %w", service.ErrInvariantViolated, store.ErrConstraintViolated), http.StatusBadRequest, app.MsgFaultyAssetsCannotBeAllocated},
		{"duplicate", store.ErrDuplicateAssetID, http.StatusBadRequest, app.MsgAssetIDAlreadyExists},
		{"missing token", service.ErrMissingToken, http.StatusUnauthorized, app.MsgAccessTokenRequired},
		{"empty header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgAccessTokenRequired},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"invalid token", service.ErrInvalidToken, http.StatusForbidden, app.MsgInvalidToken},
		{"not found", fmt.Errorf("delete asset 1: %w", store.ErrAssetNotFound), http.StatusNotFound, app.MsgAssetNotFound},
		{"bad path id", ErrInvalidAssetID, http.StatusNotFound, app.MsgAssetNotFound},
		{"store failure", store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
