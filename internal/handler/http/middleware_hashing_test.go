// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-app-lock/internal/app"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/utils"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func computeHash(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return hex.EncodeToString(utils.Hash(b))
}

// executeVerifyHashing runs the middleware over a request built from body and
// hash, capturing the body bytes the wrapped handler observes.
func executeVerifyHashing(t *testing.T, body []byte, hash string) (*httptest.ResponseRecorder, []byte, bool) {
	t.Helper()

	var innerBody []byte
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		innerBody = b
		w.WriteHeader(http.StatusOK)
	})

	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", bytes.NewReader(body))
	if hash != "" {
		req.Header.Set(hashHeader, hash)
	}

	rr := httptest.NewRecorder()
	h.verifyHashing(next).ServeHTTP(rr, req)
	return rr, innerBody, nextCalled
}

// --- Tests ---

func TestVerifyHashing_ValidHashPassesBodyThrough(t *testing.T) {
	utils.InitHasherPool("test-hash-key")

	payload := models.VerifyPasswordRequest{Password: "account-password"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rr, innerBody, nextCalled := executeVerifyHashing(t, body, computeHash(t, payload))

	require.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
	// the middleware must restore the body for the handler behind it
	assert.Equal(t, body, innerBody)
}

func TestVerifyHashing_MissingHeader(t *testing.T) {
	utils.InitHasherPool("test-hash-key")

	rr, _, nextCalled := executeVerifyHashing(t, []byte(`{"password":"x"}`), "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgIntegrityCheckFailed)
}

func TestVerifyHashing_MismatchedHash(t *testing.T) {
	utils.InitHasherPool("test-hash-key")

	rr, _, nextCalled := executeVerifyHashing(t, []byte(`{"password":"x"}`), "deadbeef")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgIntegrityCheckFailed)
}

func TestVerifyHashing_KeyedHashRejectsForeignKey(t *testing.T) {
	payload := models.VerifyPasswordRequest{Password: "account-password"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	// hash computed under a different key must not verify
	utils.InitHasherPool("client-key")
	foreignHash := computeHash(t, payload)

	utils.InitHasherPool("server-key")
	rr, _, nextCalled := executeVerifyHashing(t, body, foreignHash)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
