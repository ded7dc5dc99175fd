// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("1.0.0"))
	})
	router.Post("/api/session/unlock-database", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "registered method passes through",
			method:         http.MethodPost,
			path:           "/api/auth/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET on a POST-only route hides the route",
			method:         http.MethodGet,
			path:           "/api/auth/login",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "DELETE on a GET-only route hides the route",
			method:         http.MethodDelete,
			path:           "/api/version",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "PUT on a POST-only route hides the route",
			method:         http.MethodPut,
			path:           "/api/session/unlock-database",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown path stays 404",
			method:         http.MethodGet,
			path:           "/api/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
