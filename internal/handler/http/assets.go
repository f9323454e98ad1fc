package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/asset-tracker/internal/app"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/utils"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := validators.ParseAssetFilter(query.Get("category"), query.Get("status"), query.Get("search"))

	assets, err := h.services.AssetService.ListAssets(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fields, err := decodeAsset(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.AssetService.CreateAsset(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", created.ID).Str("asset_id", created.AssetID).Msg("asset created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := assetIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fields, err := decodeAsset(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.AssetService.UpdateAsset(r.Context(), id, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", updated.ID).Str("asset_id", updated.AssetID).Msg("asset updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := assetIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AssetService.DeleteAsset(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("asset deleted")
	utils.WriteMessage(w, http.StatusOK, app.MsgAssetDeleted)
}

// decodeAsset reads the JSON body and parses it into typed write fields.
func decodeAsset(r *http.Request) (models.AssetFields, error) {
	var req models.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "decodeAsset").Msg("Invalid JSON was passed")
		return models.AssetFields{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return validators.ParseAsset(req)
}

// assetIDFromPath returns the positive integer {id} path parameter.
func assetIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAssetID, raw)
	}
	return id, nil
}
