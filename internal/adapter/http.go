// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-match-client/internal/config"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/utils"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace identifier.
const TraceIDHeader = "X-Trace-ID"

const (
	usersPath   = "/users/"
	userPath    = "/users/{id}"
	matchesPath = "/users/{id}/matches"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Every request gets an X-Trace-ID header (taken from the context when set
// via [utils.WithTraceID], otherwise generated) and is logged at debug level
// with its status and latency.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.client.
		OnBeforeRequest(a.beforeRequest).
		OnAfterResponse(a.afterResponse)

	return a, nil
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

func (h *httpServerAdapter) beforeRequest(_ *resty.Client, req *resty.Request) error {
	traceID, ok := utils.GetTraceIDFromContext(req.Context())
	if !ok {
		traceID = utils.NewTraceID()
	}
	req.SetHeader(TraceIDHeader, traceID)

	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return nil
}

func (h *httpServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("backend request")
	return nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
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

// ListUsers implements [ServerAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get(usersPath)
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&user).
		Get(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateUser implements [ServerAdapter].
func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&created).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// UpdateUser implements [ServerAdapter].
func (h *httpServerAdapter) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	var updated models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetBody(update).
		SetResult(&updated).
		Put(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [ServerAdapter].
func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete(userPath)
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetMatches implements [ServerAdapter].
func (h *httpServerAdapter) GetMatches(ctx context.Context, userID int64, filters models.MatchFilters) (models.MatchResponse, error) {
	var matches models.MatchResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetQueryParams(filters.QueryParams()).
		SetResult(&matches).
		Get(matchesPath)
	if err != nil {
		return models.MatchResponse{}, fmt.Errorf("get matches request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MatchResponse{}, err
	}

	return matches, nil
}
