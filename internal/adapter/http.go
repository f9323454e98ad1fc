package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/utils"
	"github.com/MKhiriev/asset-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns [ErrInvalidAddress] (wrapped) if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and keeps the token from the response body. The
// Authorization response header is used when the body carries no token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&loginResponse).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResponse.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		loginResponse.Token = token
	}

	h.SetToken(loginResponse.Token)
	h.logger.Debug().Str("username", loginResponse.User.Username).Msg("logged in")
	return loginResponse, nil
}

// ListAssets implements [ServerAdapter]. It GETs /assets with the non-empty
// filter fields as query parameters.
func (h *httpServerAdapter) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	var assets []models.Asset

	req := h.authedRequest(ctx).SetResult(&assets)
	if filter.Category != "" {
		req.SetQueryParam("category", string(filter.Category))
	}
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	resp, err := req.Get("/assets")
	if err != nil {
		return nil, fmt.Errorf("list assets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if assets == nil {
		assets = []models.Asset{}
	}
	return assets, nil
}

// CreateAsset implements [ServerAdapter]. It POSTs req to /assets.
func (h *httpServerAdapter) CreateAsset(ctx context.Context, req models.AssetRequest) (models.Asset, error) {
	var asset models.Asset

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&asset).
		Post("/assets")
	if err != nil {
		return models.Asset{}, fmt.Errorf("create asset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Asset{}, err
	}

	return asset, nil
}

// UpdateAsset implements [ServerAdapter]. It PUTs req to /assets/{id}.
func (h *httpServerAdapter) UpdateAsset(ctx context.Context, id int64, req models.AssetRequest) (models.Asset, error) {
	var asset models.Asset

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		SetResult(&asset).
		Put("/assets/{id}")
	if err != nil {
		return models.Asset{}, fmt.Errorf("update asset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Asset{}, err
	}

	return asset, nil
}

// DeleteAsset implements [ServerAdapter]. It sends DELETE /assets/{id}.
func (h *httpServerAdapter) DeleteAsset(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/assets/{id}")
	if err != nil {
		return fmt.Errorf("delete asset request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
