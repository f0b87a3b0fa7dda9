package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base at a temp dir and returns the config dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return filepath.Join(root, "config", appName)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultTimeoutSeconds, mgr.viper.GetInt("http.timeout_seconds"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 32, mgr.viper.GetInt("export.size"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	configDir := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	iconDir, err := GetIconCacheDir()
	require.NoError(t, err)
	assert.Equal(t, iconDir, cfg.Cache.Dir)
	assert.Equal(t, defaultTimeoutSeconds, cfg.HTTP.TimeoutSeconds)

	_, err = os.Stat(filepath.Join(configDir, configFileName))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(configDir, schemaFileName))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, configFileName), mgr.GetConfigFile())
}

func TestManager_LoadReadsFile(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()

	content := `[cache]
dir = "/srv/icons"

[http]
timeout_seconds = 3
user_agent = "custom/1.0"

[logging]
level = "DEBUG"
format = "json"

[export]
size = 64
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/srv/icons", cfg.Cache.Dir)
	assert.Equal(t, 3, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "custom/1.0", cfg.HTTP.UserAgent)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 64, cfg.Export.Size)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().HTTP.MaxIconBytes, cfg.HTTP.MaxIconBytes)
}

func TestManager_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()

	t.Setenv("FAVICACHE_HTTP_TIMEOUT_SECONDS", "30")
	t.Setenv("FAVICACHE_LOG_LEVEL", "warn")
	t.Setenv("FAVICACHE_CACHE_DIR", "/tmp/favicache-env")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/favicache-env", cfg.Cache.Dir)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("[export]\nsize = 2\n"), 0o600))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export.size")
}

func TestManager_LoadRejectsBrokenTOML(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("[http\ntimeout_seconds = "), 0o600))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "icons"), expandHome("~/icons"))
	assert.Equal(t, "/abs/icons", expandHome("/abs/icons"))
	assert.Equal(t, "rel/~icons", expandHome("rel/~icons"))
}

func TestConfig_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "10s", cfg.Timeout().String())
}
