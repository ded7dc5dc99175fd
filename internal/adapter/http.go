package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/utils"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpSessionAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSessionAdapter constructs an HTTP/REST implementation of
// [SessionAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and initialises the shared HMAC
// hasher pool used for transport integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPSessionAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (SessionAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpSessionAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
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

// SetToken implements [SessionAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpSessionAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SessionAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpSessionAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SessionState implements [SessionAdapter]. The claims are read without
// signature verification: the client holds no signing key, and the token is
// only used locally to decide whether a session exists at all. An undecodable
// token yields [models.StateUnknown].
func (h *httpSessionAdapter) SessionState() models.AppState {
	token := h.Token()
	if token == "" {
		return models.StateUnauthenticated
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		h.logger.Debug().Str("func", "SessionState").Msgf("parse bearer token: %v", err)
		return models.StateUnknown
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return models.StateUnauthenticated
	}

	return models.StateAuthenticated
}

// Login implements [SessionAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpSessionAdapter) Login(ctx context.Context, login, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Login: login, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// VerifyPassword implements [SessionAdapter]. It POSTs the account password
// to POST /api/auth/verify with a transport integrity hash over the payload
// and maps the backend verdict onto a [models.VerificationOutcome]. An
// expired deadline is a verdict of its own, [models.OutcomeTimeout], not an
// error. Requires a valid bearer token.
func (h *httpSessionAdapter) VerifyPassword(ctx context.Context, password string) (models.VerificationOutcome, error) {
	body := models.VerifyPasswordRequest{Password: password}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("HashSHA256", computeTransportHash(body)).
		SetBody(body).
		Post("/api/auth/verify")
	if err != nil {
		if isTimeout(err) {
			h.logger.Debug().Str("func", "VerifyPassword").Msgf("verify request timed out: %v", err)
			return models.OutcomeTimeout, nil
		}
		return models.OutcomeUnknown, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OutcomeUnknown, err
	}

	var verdict models.VerifyPasswordResponse
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return models.OutcomeUnknown, fmt.Errorf("decode verify response: %w", err)
	}

	switch verdict.Result {
	case models.VerdictValidated:
		return models.OutcomeValidated, nil
	case models.VerdictDenied:
		return models.OutcomeDenied, nil
	case models.VerdictUnknown:
		return models.OutcomeUnknown, nil
	default:
		return models.OutcomeUnknown, fmt.Errorf("%w: %q", ErrUnexpectedVerdict, verdict.Result)
	}
}

// UnlockDatabase implements [SessionAdapter]. It POSTs the opaque proof to
// POST /api/session/unlock-database. Returns [ErrProofRejected] (wrapped) on
// HTTP 403. Requires a valid bearer token.
func (h *httpSessionAdapter) UnlockDatabase(ctx context.Context, proof []byte) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UnlockDatabaseRequest{Proof: proof}).
		Post("/api/session/unlock-database")
	if err != nil {
		return fmt.Errorf("unlock database request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpSessionAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func computeTransportHash(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
