package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"limit": 5, "port": 9090, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{broken`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_CatalogSourcesMutuallyExclusive(t *testing.T) {
	catalogPath := writeConfig(t, `{"listings": []}`)
	cfg := Config{Catalog: catalogPath, CatalogURL: "https://example.com/listings"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeLimit(t *testing.T) {
	cfg := Config{Limit: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: 70000}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := Config{Profile: filepath.Join(t.TempDir(), "absent.json")}

	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := Config{}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FlagValuesWin(t *testing.T) {
	flags := Config{Limit: 3, Profile: "flag-profile.json"}
	defaults := Config{Limit: 10, Profile: "file-profile.json", Port: 9090, Verbose: true}

	merged := flags.MergeWithDefaults(defaults)

	assert.Equal(t, 3, merged.Limit)
	assert.Equal(t, "flag-profile.json", merged.Profile)
	assert.Equal(t, 9090, merged.Port)
	assert.True(t, merged.Verbose)
}
