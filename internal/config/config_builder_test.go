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

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "first", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_ExpandsHomeInStoragePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{
		DB:          DB{DSN: "~/letters/letters.db"},
		DownloadDir: "~/Загрузки",
	}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "letters", "letters.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, filepath.Join(home, "Загрузки"), cfg.Storage.DownloadDir)
}

func TestExpandHome_LeavesOtherPaths(t *testing.T) {
	for _, p := range []string{"", "downloads", "/abs/dir", "~user/dir", "file::memory:"} {
		assert.Equal(t, p, expandHome(p))
	}
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_Values(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultDownloadDir, cfg.Storage.DownloadDir)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Zero(t, cfg.Workers.StatusInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env:5000")
	t.Setenv("STORAGE_DOWNLOAD_DIR", "env-out")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env:5000", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, "env-out", b.configs[0].Storage.DownloadDir)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_STATUS_INTERVAL", "often")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_Appends(t *testing.T) {
	flagCfg := &StructuredConfig{Storage: Storage{DownloadDir: "flag-out"}}

	b := newConfigBuilder().withFlags(flagCfg)

	require.Len(t, b.configs, 1)
	assert.Same(t, flagCfg, b.configs[0])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DownloadDir = "json-out"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-out", b.configs[1].Storage.DownloadDir)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LogLevel = "warn"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].App.LogLevel)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

// TestGetClientConfig_Priority checks defaults < env < flags < json.
func TestGetClientConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DownloadDir = "json-out"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_ADDRESS", "http://env:5000")
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("STORAGE_DOWNLOAD_DIR", "env-out")

	flagCfg := &StructuredConfig{
		Storage:      Storage{DB: DB{DSN: "flag.db"}, DownloadDir: "flag-out"},
		JSONFilePath: path,
	}

	cfg, err := GetClientConfig(flagCfg)
	require.NoError(t, err)

	assert.Equal(t, "http://env:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-out", cfg.Storage.DownloadDir)
}

func TestGetClientConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "chatty")

	_, err := GetClientConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaultConfig())
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "empty download dir", mutate: func(c *ClientConfig) { c.Storage.DownloadDir = "" }, want: ErrInvalidStorageConfigs},
		{name: "negative interval", mutate: func(c *ClientConfig) { c.Workers.StatusInterval = -time.Second }, want: ErrInvalidWorkerConfigs},
		{name: "bad log level", mutate: func(c *ClientConfig) { c.App.LogLevel = "verbose" }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
