// Package config loads the go-app-lock configuration from environment
// variables, command-line flags, and an optional JSON file, and merges the
// three sources with mergo (earlier sources win).
//
// The main entry points are [GetStructuredConfig] for server/runtime
// configuration and [GetClientConfig] for the client-specific view that
// carries the lock policy, adapter addresses, and local store settings.
package config
