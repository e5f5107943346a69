package textcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ModeSigned, cfg.Mode)
	assert.Equal(t, 2000, cfg.MaxLength)
	assert.Empty(t, cfg.AppID, "credentials never ship as defaults")
	assert.Empty(t, cfg.APISecret)
	assert.Equal(t, "s9a87e3ec", cfg.serviceID())
}

func TestServiceID_FallsBackToURLPath(t *testing.T) {
	cfg := Config{URL: "https://api.example.com/v1/private/abc123"}
	assert.Equal(t, "abc123", cfg.serviceID())

	cfg.ServiceID = "override"
	assert.Equal(t, "override", cfg.serviceID())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_id = "my-app"
api_key = "my-key"
api_secret = "my-secret"
mode = "array"
url = "https://example.com/check"
max_length = 500

[llm]
api_key = "sk-test"
model = "gpt-4o-mini"

[[categories]]
key = "pol"
description = "political term"

[[categories]]
key = "custom"
description = "house style"
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "my-app", cfg.AppID)
	assert.Equal(t, ModeArray, cfg.Mode)
	assert.Equal(t, 500, cfg.MaxLength)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)

	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "custom", cfg.Categories[1].Key)
	assert.Len(t, cfg.categories(), 2, "a supplied table replaces the built-in one wholesale")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = \"telepathy\"\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigCategories_DefaultWhenUnset(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEmpty(t, cfg.categories())
}
