package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"http": map[string]any{
			"exposeErrorTrace":   false,
			"maxRequestBodySize": "100KB",
		},
		"testRoutes": map[string]any{
			"enabled": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "HTTP_EXPOSEERRORTRACE", want: "http.exposeErrorTrace"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "TESTROUTES_ENABLED", want: "testRoutes.enabled"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "HTTP__PORT", want: "http.port"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "info", cfg.Env.Log.Level)

	cfg.HTTP.Port = 9090
	cfg.Env.Log.Level = "warn"
	applyDefaults(cfg)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "warn", cfg.Env.Log.Level)
}

type sampleConfig struct {
	HTTP struct {
		Port             int           `yaml:"port"`
		ExposeErrorTrace bool          `yaml:"exposeErrorTrace"`
		IdleTimeout      time.Duration `yaml:"idleTimeout"`
	} `yaml:"http"`
}

func TestLoadWithEnv_ExplicitFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	content := "http:\n  port: 8080\n  exposeErrorTrace: false\n  idleTimeout: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(configFileEnv, path)
	t.Setenv("HTTP_EXPOSEERRORTRACE", "true")

	cfg, err := LoadWithEnv[sampleConfig]("sample")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.ExposeErrorTrace)
	assert.Equal(t, 30*time.Second, cfg.HTTP.IdleTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Setenv(configFileEnv, "")
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[sampleConfig]("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}
