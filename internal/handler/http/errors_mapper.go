package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/asset-tracker/internal/app"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/service"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/utils"
	"github.com/MKhiriev/asset-tracker/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins. Errors matching
// none of them are reported as 500 without details.
var errorMappings = []errorMapping{
	{validators.ErrValidation, http.StatusBadRequest, app.MsgValidationFailed},
	{service.ErrInvariantViolated, http.StatusBadRequest, app.MsgFaultyAssetsCannotBeAllocated},
	{store.ErrDuplicateAssetID, http.StatusBadRequest, app.MsgAssetIDAlreadyExists},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},

	{service.ErrMissingToken, http.StatusUnauthorized, app.MsgAccessTokenRequired},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgAccessTokenRequired},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgAccessTokenRequired},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrInvalidToken, http.StatusForbidden, app.MsgInvalidToken},

	{store.ErrAssetNotFound, http.StatusNotFound, app.MsgAssetNotFound},
	{ErrInvalidAssetID, http.StatusNotFound, app.MsgAssetNotFound},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the matching status with an
// [models.ErrorResponse] body. Field errors are attached for validation
// failures.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message, validators.FieldErrors(err))
}
