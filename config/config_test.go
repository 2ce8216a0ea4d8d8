package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/seokit/catalog"
	"github.com/poiesic/seokit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seokit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultProgressInterval, cfg.ProgressInterval)
	assert.Equal(t, 0, cfg.PoolSize)
	assert.Empty(t, cfg.DB)
	assert.Equal(t, catalog.Default(), cfg.Catalog)
	assert.NoError(t, cfg.Validate())
}

func TestDefault_MatchesLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
output: out/keywords.txt
progress_interval: 500
catalog:
  brand: Acme Beauty
  services:
    - spa
    - barber
  locations:
    - Durban
    - Paarl
  competitors: []
  variations:
    - service: spa
      variants: [day spa, beauty spa]
  cutoffs:
    competitor: 1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out/keywords.txt", cfg.Output)
	assert.Equal(t, 500, cfg.ProgressInterval)
	assert.Equal(t, "Acme Beauty", cfg.Catalog.Brand)
	assert.Equal(t, "South Africa", cfg.Catalog.Market)
	assert.Equal(t, []string{"spa", "barber"}, cfg.Catalog.Services)
	assert.Equal(t, []string{"Durban", "Paarl"}, cfg.Catalog.Locations)
	assert.Empty(t, cfg.Catalog.Competitors)
	assert.Equal(t, []catalog.Variation{{Service: "spa", Variants: []string{"day spa", "beauty spa"}}}, cfg.Catalog.Variations)
	assert.Equal(t, 1, cfg.Catalog.Cutoffs.Competitor)
	assert.Equal(t, catalog.DefaultHighValueCutoff, cfg.Catalog.Cutoffs.HighValue)

	// Lists absent from the file keep their defaults
	assert.Len(t, cfg.Catalog.Prefixes, 23)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output: from-file.txt\n")
	t.Setenv("SEOKIT_OUTPUT", "from-env.txt")
	t.Setenv("SEOKIT_PROGRESS_INTERVAL", "250")
	t.Setenv("SEOKIT_CHUNK_SIZE", "64")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.Output)
	assert.Equal(t, 250, cfg.ProgressInterval)
	assert.Equal(t, 64, cfg.ChunkSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestValidate_Settings(t *testing.T) {
	cfg := Default()
	cfg.ProgressInterval = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "progressinterval must be at least 1")
}

func TestValidate_DegenerateCatalog(t *testing.T) {
	path := writeConfig(t, `
catalog:
  services: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}
