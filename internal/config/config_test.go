package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.balldontlie.io/v1", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.Browse.PerPage)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtside.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://localhost:9090/v1
browse:
  per_page: 20
  debounce_ms: 250
store:
  path: /tmp/courtside-test
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090/v1", cfg.API.BaseURL)
	assert.Equal(t, 20, cfg.Browse.PerPage)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
	assert.Equal(t, "/tmp/courtside-test", cfg.Store.Path)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BALLDONTLIE_API_KEY", "env-key")
	t.Setenv("COURTSIDE_PER_PAGE", "5")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, 5, cfg.Browse.PerPage)
}
