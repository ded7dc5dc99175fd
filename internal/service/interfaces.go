// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the app-lock core: the lock gate that decides when
// authentication is required, the credential verifier that runs one challenge
// at a time, and the presenter that bridges verification outcomes to the host
// UI surface.
//
// The three parts are layered leaves-first: the verifier depends on the
// device, adapter, crypto and store packages; the gate depends only on a
// clock; the presenter depends on both plus a [LockUserInterface] it does not
// own the internals of. Nothing in this package panics across the
// gate/presenter boundary: every failure is an outcome the presenter turns
// into a UI path.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-app-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lock_services_mock.go -package=mock

// LockGate decides, at any instant, whether authentication is required, and
// holds the single source of truth for "time since last unlock". All mutation
// of the underlying [models.LockSession] is serialized inside the gate; other
// components only read snapshots.
type LockGate interface {
	// IsAuthenticationNeeded reports whether the app content must be
	// hidden and an unlock challenge issued. True when the screen lock is
	// active, the session is authenticated and the elapsed time since the
	// last unlock falls outside [0, timeout), where a negative elapsed
	// time (clock moved backward) counts as outside. A locked database
	// makes it true regardless of the rest.
	IsAuthenticationNeeded() bool

	// Scenario returns the security sensitivity of the next challenge.
	// Database lock dominates screen lock.
	Scenario() models.AuthenticationScenario

	// RecordUnlock sets the last-unlocked timestamp. Called exactly once
	// per successful verification and once on the
	// unauthenticated→authenticated app transition.
	RecordUnlock(at time.Time)

	// OnAppStateTransition updates the tracked lifecycle phase. An
	// unauthenticated→authenticated transition counts as an implicit
	// unlock: a freshly authenticated session is not immediately
	// re-challenged.
	OnAppStateTransition(to models.AppState)

	// SetDatabaseLocked marks the local encrypted store as requiring
	// fresh cryptographic proof.
	SetDatabaseLocked(locked bool)

	// Session returns a snapshot of the lock session for display
	// decisions.
	Session() models.LockSession
}

// CredentialVerifier runs exactly one authentication challenge at a time and
// reports a single [models.VerificationOutcome] per challenge.
type CredentialVerifier interface {
	// EvaluateDeviceAuthentication runs one platform device challenge.
	// A second call while one is in flight returns [ErrChallengeInFlight].
	// On a granted databaseLock challenge the opaque proof is forwarded
	// to the session's database unlock. A changed biometric-enrollment
	// fingerprint degrades the challenge to needsAccountPassword before
	// the platform prompt is ever shown.
	EvaluateDeviceAuthentication(ctx context.Context, scenario models.AuthenticationScenario, reason string) (models.VerificationOutcome, error)

	// VerifyAccountPassword verifies the account password against the
	// remote session. A request that times out yields
	// [models.OutcomeTimeout]. Contract: never called with an empty
	// secret; callers short-circuit empty input to the cancelled state.
	VerifyAccountPassword(ctx context.Context, password string) (models.VerificationOutcome, error)

	// VerifyCustomPasscode compares the submitted passcode against the
	// sealed local record in constant time. Returns
	// [models.OutcomeUnknown] when no passcode has ever been set, which
	// drives the passcode-creation path rather than a retry prompt.
	VerifyCustomPasscode(ctx context.Context, passcode string) (models.VerificationOutcome, error)

	// CreateCustomPasscode seals and stores a new custom passcode,
	// replacing any previous one.
	CreateCustomPasscode(ctx context.Context, passcode string) error

	// HasCustomPasscode reports whether a custom passcode has ever been
	// stored.
	HasCustomPasscode(ctx context.Context) bool
}

// LockUserInterface is the capability the host UI must implement. All
// methods are required; there is no optional conformance.
type LockUserInterface interface {
	// PresentUnlockScreen shows the lock screen. message is an optional
	// error or informational line rendered above the input.
	PresentUnlockScreen(message string)

	// PresentCreatePasscodeScreen shows the one-time passcode-creation
	// screen.
	PresentCreatePasscodeScreen()

	// DismissUnlockScreen hides any lock or passcode-creation screen.
	DismissUnlockScreen()

	// SetSpinner toggles the in-progress indicator.
	SetSpinner(animating bool)

	// SetReauth toggles the "tap to unlock" affordance shown after a
	// cancelled challenge.
	SetReauth(visible bool)

	// SetDimmed toggles the privacy dimming overlay shown while the app
	// is not active.
	SetDimmed(dimmed bool)
}

// LockPresenter is the state machine bridging [models.AuthenticationState]
// transitions to [LockUserInterface] commands.
type LockPresenter interface {
	// EvaluateLock consults the gate and, when locked, presents the lock
	// screen and issues a device challenge.
	EvaluateLock(ctx context.Context)

	// SubmitSecret feeds the fallback secret (account password or custom
	// passcode, per policy) into the pending challenge. Empty input is a
	// cancel: the state becomes cancelled and the verifier is not called.
	SubmitSecret(ctx context.Context, secret string)

	// SubmitNewPasscode completes the passcode-creation flow. The
	// candidate is checked against the passcode rule set; rule violations
	// are returned to the caller for rendering and leave no state behind.
	SubmitNewPasscode(ctx context.Context, passcode string) error

	// RequestReauthentication re-arms a cancelled challenge. It is the
	// only way out of the cancelled state and is always user-initiated.
	RequestReauthentication(ctx context.Context)

	// OnLifecycleEvent reacts to host application lifecycle signals:
	// dimming on resign-active, gate re-evaluation on become-active,
	// session phase tracking on state transitions.
	OnLifecycleEvent(ctx context.Context, event models.LifecycleEvent)

	// State returns the current challenge state.
	State() models.AuthenticationState

	// Unlocked returns a channel closed when the app unlocks. The channel
	// is re-armed on the next lock presentation; each unlock closes its
	// cycle's channel exactly once.
	Unlocked() <-chan struct{}
}

// SessionBackendService is the dev-server counterpart of the client's
// session adapter: it issues session tokens and owns the authoritative
// account-password check.
type SessionBackendService interface {
	// Login authenticates the credentials and issues a signed session
	// token. An unknown login is registered on first use; a known login
	// with a wrong password returns [ErrWrongPassword].
	Login(ctx context.Context, login, password string) (models.Token, error)

	// ParseToken validates a compact token string and returns its claims.
	// An expired token returns [ErrTokenIsExpired].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// VerifyPassword checks the password for the account identified by
	// userID and returns a [models.VerifyPasswordResponse] verdict string.
	// An unknown account yields the unknown verdict, not an error.
	VerifyPassword(ctx context.Context, userID int64, password string) (string, error)

	// UnlockDatabase accepts the opaque proof of a granted device
	// challenge. An empty proof or unknown account returns
	// [ErrInvalidProof].
	UnlockDatabase(ctx context.Context, userID int64, proof []byte) error
}

// AppInfoService exposes build metadata to the transport layer.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}
