package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {
			"device_secret": "machine-secret",
			"hash_key": "hmac-key"
		},
		"lock": {
			"timeout": "60s",
			"forced": true,
			"require_biometrics": true,
			"use_custom_passcode": true
		},
		"storage": {
			"db": {"dsn": "applock.db"}
		},
		"adapter": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "15s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "machine-secret", cfg.App.DeviceSecret)
	assert.Equal(t, 60*time.Second, cfg.Lock.Timeout)
	assert.True(t, cfg.Lock.Forced)
	assert.True(t, cfg.Lock.UseCustomPasscode)
	assert.Equal(t, "applock.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"lock": {`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "duration string", input: `"90s"`, want: 90 * time.Second},
		{name: "composite duration", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "raw nanoseconds", input: `60000000000`, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"ninety seconds"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
