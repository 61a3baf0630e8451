package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.True(t, mgr.viper.GetBool("gesture.enable_back"))
	assert.Equal(t, 250, mgr.viper.GetInt("gesture.max_rest_duration_ms"))
	assert.Equal(t, 25.0, mgr.viper.GetFloat64("panel.width"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
}

func TestManager_LoadFile(t *testing.T) {
	path := writeFile(t, `
[gesture]
enable_forward = false
max_swipe_distance = 120

[panel]
fill_color = "#202020"

[logging]
format = "TEXT"
`)
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.True(t, cfg.Gesture.EnableBack)
	assert.False(t, cfg.Gesture.EnableForward)
	assert.Equal(t, 120.0, cfg.Gesture.MaxSwipeDistance)
	assert.Equal(t, "#202020", cfg.Panel.FillColor)
	assert.Equal(t, 250.0, cfg.Panel.Height)
	assert.Equal(t, LogFormatConsole, cfg.Logging.Format)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "[panel]\nfill_opacity = 2.0\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panel.fill_opacity")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	path := writeFile(t, "[panel\nwidth = ")
	mgr, err := NewManager(path)
	require.NoError(t, err)

	assert.Error(t, mgr.Load())
}

func TestManager_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, *DefaultConfig(), *mgr.Get())
	assert.Empty(t, mgr.GetConfigFile())
}

func TestManager_EnvOverride(t *testing.T) {
	t.Setenv("SWIPENAV_GESTURE_ENABLE_BACK", "false")
	t.Setenv("SWIPENAV_LOG_LEVEL", "debug")
	path := writeFile(t, "")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, cfg.Gesture.EnableBack)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	path := writeFile(t, "[gesture]\nmax_rest_duration_ms = 100\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	require.NoError(t, os.WriteFile(path, []byte("[gesture]\nmax_rest_duration_ms = 400\n"), filePerm))
	require.NoError(t, mgr.Reload())

	require.Len(t, got, 1)
	assert.Equal(t, 400, got[0].Gesture.MaxRestDurationMs)
	assert.Equal(t, 400, mgr.Get().Gesture.MaxRestDurationMs)
}

func TestManager_ReloadKeepsPreviousOnInvalidEdit(t *testing.T) {
	path := writeFile(t, "[panel]\nwidth = 30\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, os.WriteFile(path, []byte("[panel]\nwidth = -3\n"), filePerm))
	assert.Error(t, mgr.Reload())
	assert.Equal(t, 30.0, mgr.Get().Panel.Width)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"gesture", "panel", "navigation", "logging"} {
		assert.Contains(t, props, section)
	}
}
