// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the session backend that owns the authoritative account credential check.
//
// The primary abstraction is [SessionAdapter], which decouples the lock
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSessionAdapter]) and a gRPC reachability probe
// ([NewGRPCHealthProbe]) used to distinguish a wrong password from an
// unreachable backend.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-app-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_adapter_mock.go -package=mock

// SessionAdapter defines transport-agnostic communication with the session
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type SessionAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SessionState derives the coarse application state from the stored
	// bearer token: [models.StateUnauthenticated] when no token is held or
	// the token has expired, [models.StateAuthenticated] otherwise.
	SessionState() models.AppState

	// Login authenticates the client against the backend. On success it
	// stores the returned bearer token via SetToken. Returns an error if the
	// request fails or the server responds with a non-2xx status.
	Login(ctx context.Context, login, password string) error

	// VerifyPassword submits the account password for remote verification
	// and returns the backend's verdict. A request that times out yields
	// [models.OutcomeTimeout] with a nil error; every other transport
	// failure is returned as an error.
	VerifyPassword(ctx context.Context, password string) (models.VerificationOutcome, error)

	// UnlockDatabase forwards the opaque proof obtained from a granted
	// device challenge to the storage layer of the backend session. Returns
	// an error if the request fails or the proof is rejected.
	UnlockDatabase(ctx context.Context, proof []byte) error
}

// HealthProbe reports reachability of the session backend. The lock services
// consult it after a failed verification to choose between the wrong-secret
// and the offline user-facing message.
type HealthProbe interface {
	// Online reports whether the backend answered a health check within the
	// context deadline.
	Online(ctx context.Context) bool

	// Close releases the underlying connection.
	Close() error
}
