package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"name", "title"}, cfg.Map.LabelAttribute)
	assert.Equal(t, 4, cfg.Map.TooltipOffset)
	assert.False(t, cfg.Map.StrictHover)
	assert.Equal(t, "http://localhost:5000", cfg.Predict.BaseURL)
	assert.Equal(t, 10, cfg.Predict.TimeoutSecs)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: console
  file: crimemap.log
map:
  asset: india.geojson
  label_attribute: [ST_NM]
  strict_hover: true
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "crimemap.log", cfg.Log.File)
	assert.Equal(t, "india.geojson", cfg.Map.Asset)
	assert.Equal(t, []string{"ST_NM"}, cfg.Map.LabelAttribute)
	assert.True(t, cfg.Map.StrictHover)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Defaults still apply for unset values
	assert.Equal(t, 4, cfg.Map.TooltipOffset)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("predict:\n  base_url: http://file\n"), 0644))
	t.Setenv("CRIMEMAP_PREDICT_BASE_URL", "http://env")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Predict.BaseURL)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CRIMEMAP_MAP_DATASET=risk.csv\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("CRIMEMAP_MAP_DATASET") })

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "risk.csv", cfg.Map.Dataset)
}

func TestLoadRejectsNegativeOffset(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CRIMEMAP_MAP_TOOLTIP_OFFSET", "-1")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [\n"), 0644))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	dir := t.TempDir()
	orig := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(orig) })

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console", File: filepath.Join(dir, "out.log")}))
	zap.L().Info("hello")
	_ = zap.L().Sync()

	data, err := os.ReadFile(filepath.Join(dir, "out.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
