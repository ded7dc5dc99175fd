package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-app-lock/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceSecret is the machine-bound secret used to derive the
	// passcode sealing key.
	DeviceSecret string
	// HashKey is the HMAC key used by the client for request integrity
	// signing.
	HashKey string
}

// ClientLock holds the app-lock policy as seen by the client runtime.
type ClientLock struct {
	// Timeout is the inactivity window after which the screen lock engages.
	Timeout time.Duration
	// Forced marks the lock as non-dismissable.
	Forced bool
	// RequireBiometrics requires biometric or custom-passcode verification.
	RequireBiometrics bool
	// UseCustomPasscode selects the app passcode as the fallback secret.
	UseCustomPasscode bool
	// InformUserOfForcedLock shows a one-time interstitial before the
	// first forced-lock challenge.
	InformUserOfForcedLock bool
}

// Configuration maps the policy onto the shared [models.LockConfiguration]
// consumed by the lock services.
func (l ClientLock) Configuration() models.LockConfiguration {
	return models.LockConfiguration{
		Timeout:                l.Timeout,
		Forced:                 l.Forced,
		RequireBiometrics:      l.RequireBiometrics,
		UseCustomPasscode:      l.UseCustomPasscode,
		InformUserOfForcedLock: l.InformUserOfForcedLock,
	}
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the session backend.
	HTTPAddress string
	// GRPCAddress is the gRPC health endpoint of the session backend.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local lock store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// IdleTick defines how often the idle watcher re-checks the lock
	// timeout while the application is active.
	IdleTick time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Lock contains the app-lock policy.
	Lock ClientLock
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceSecret: cfg.App.DeviceSecret,
			HashKey:      cfg.App.HashKey,
		},
		Lock: ClientLock{
			Timeout:                cfg.Lock.Timeout,
			Forced:                 cfg.Lock.Forced,
			RequireBiometrics:      cfg.Lock.RequireBiometrics,
			UseCustomPasscode:      cfg.Lock.UseCustomPasscode,
			InformUserOfForcedLock: cfg.Lock.InformUserOfForcedLock,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{IdleTick: cfg.Workers.IdleTick},
	}

	return clientCfg, clientCfg.validate()
}
