// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string, timeout time.Duration) *httpSessionAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: timeout}
	appCfg := config.ClientApp{HashKey: "testhashkey"}

	a, err := NewHTTPSessionAdapter(adapterCfg, appCfg, log)
	require.NoError(t, err)
	return a.(*httpSessionAdapter)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("testsignkey"))
	require.NoError(t, err)
	return token
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Login)

		w.Header().Set("Authorization", "Bearer "+signedToken(t, time.Now().Add(time.Hour)))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	err := a.Login(context.Background(), "alice", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, a.Token())
	assert.Equal(t, models.StateAuthenticated, a.SessionState())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	err := a.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_MissingBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	err := a.Login(context.Background(), "alice", "secret")

	require.Error(t, err)
}

// ── SessionState ─────────────────────────────────────────────────────────────

func TestSessionState(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080", time.Second)

	assert.Equal(t, models.StateUnauthenticated, a.SessionState())

	a.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	assert.Equal(t, models.StateAuthenticated, a.SessionState())

	a.SetToken(signedToken(t, time.Now().Add(-time.Minute)))
	assert.Equal(t, models.StateUnauthenticated, a.SessionState())

	a.SetToken("not.a.token")
	assert.Equal(t, models.StateUnknown, a.SessionState())
}

// ── VerifyPassword ───────────────────────────────────────────────────────────

func TestVerifyPassword_Verdicts(t *testing.T) {
	tests := []struct {
		result string
		want   models.VerificationOutcome
	}{
		{result: "validated", want: models.OutcomeValidated},
		{result: "denied", want: models.OutcomeDenied},
		{result: "unknown", want: models.OutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/verify", r.URL.Path)
				assert.NotEmpty(t, r.Header.Get("HashSHA256"))
				assert.NotEmpty(t, r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(models.VerifyPasswordResponse{Result: tt.result})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, time.Second)
			a.SetToken(signedToken(t, time.Now().Add(time.Hour)))

			got, err := a.VerifyPassword(context.Background(), "secret")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyPassword_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 50*time.Millisecond)
	got, err := a.VerifyPassword(context.Background(), "secret")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeTimeout, got)
}

func TestVerifyPassword_UnexpectedVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.VerifyPasswordResponse{Result: "maybe"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	_, err := a.VerifyPassword(context.Background(), "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedVerdict)
}

func TestVerifyPassword_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	_, err := a.VerifyPassword(context.Background(), "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── UnlockDatabase ───────────────────────────────────────────────────────────

func TestUnlockDatabase_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/unlock-database", r.URL.Path)

		var req models.UnlockDatabaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []byte("proof"), req.Proof)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	a.SetToken(signedToken(t, time.Now().Add(time.Hour)))

	require.NoError(t, a.UnlockDatabase(context.Background(), []byte("proof")))
}

func TestUnlockDatabase_ProofRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("stale proof"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	err := a.UnlockDatabase(context.Background(), []byte("proof"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProofRejected)
}

// ── NewHTTPSessionAdapter ────────────────────────────────────────────────────

func TestNewHTTPSessionAdapter_InvalidAddress(t *testing.T) {
	log := logger.NewClientLogger("test")

	_, err := NewHTTPSessionAdapter(config.ClientAdapter{HTTPAddress: "   "}, config.ClientApp{}, log)
	require.Error(t, err)
}
