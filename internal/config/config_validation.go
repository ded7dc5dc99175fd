package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; binary-specific validation lives in the
// client and dev server views ([ClientConfig.validate] and the dev server's
// startup checks).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Lock.Timeout <= 0 {
		return ErrInvalidLockConfigs
	}

	if cfg.App.DeviceSecret == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
