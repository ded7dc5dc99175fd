package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-app-lock application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device secret used
	// to seal the custom passcode and the request-signing key.
	App App `envPrefix:"APP_"`

	// Lock holds the app-lock policy: timeout window, forced lock, and
	// fallback-credential selection.
	Lock Lock `envPrefix:"LOCK_"`

	// Storage holds configuration for the local lock store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the dev
	// server's HTTP and gRPC listeners.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the addresses of the remote session backend the
	// client verifies account passwords against.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings for the client runtime.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security
// and versioning.
type App struct {
	// DeviceSecret is the machine-bound secret the sealing key for the
	// custom passcode is derived from. Must be kept confidential.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header on verification calls).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Used by the dev server; the client only parses tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session JWT remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Lock holds the app-lock policy. The policy is decided by the hosting
// deployment (team management or user settings) and is immutable for the
// lifetime of a session.
type Lock struct {
	// Timeout is the inactivity window after which the screen lock
	// engages (e.g. "60s", "5m").
	// Env: LOCK_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Forced marks the lock as non-dismissable.
	// Env: LOCK_FORCED
	Forced bool `env:"FORCED"`

	// RequireBiometrics requires biometric or custom-passcode
	// verification instead of plain device credentials.
	// Env: LOCK_REQUIRE_BIOMETRICS
	RequireBiometrics bool `env:"REQUIRE_BIOMETRICS"`

	// UseCustomPasscode selects the app-specific passcode as the fallback
	// secret instead of the account password.
	// Env: LOCK_USE_CUSTOM_PASSCODE
	UseCustomPasscode bool `env:"USE_CUSTOM_PASSCODE"`

	// InformUserOfForcedLock shows a one-time interstitial before the
	// first forced-lock challenge.
	// Env: LOCK_INFORM_USER
	InformUserOfForcedLock bool `env:"INFORM_USER"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local lock store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local lock store.
type DB struct {
	// DSN is the SQLite file path used to open the lock store
	// (e.g. "applock.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the dev server's inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side addresses of the remote session backend.
type Adapter struct {
	// HTTPAddress is the base URL of the backend's HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the address of the backend's gRPC health endpoint,
	// used for offline detection.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the default timeout for outbound verification
	// requests (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings for the client runtime.
type Workers struct {
	// IdleTick defines how often the idle watcher re-checks the lock
	// timeout while the application is in the foreground (e.g. "1s").
	// Env: WORKERS_IDLE_TICK
	IdleTick time.Duration `env:"IDLE_TICK"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources. Later sources do not override
// values already set by earlier ones (mergo semantics): flags take
// precedence over environment variables, which take precedence over the
// JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
