package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/config"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("DOCKR_REGISTRY_URL=https://mirror.example.com\nDOCKR_R_VERSION=4.2.3\n"),
		0o644,
	))

	// Register cleanup for variables godotenv sets.
	t.Setenv(config.EnvRegistryURL, "")
	t.Setenv(config.EnvRVersion, "")
	require.NoError(t, os.Unsetenv(config.EnvRegistryURL))
	require.NoError(t, os.Unsetenv(config.EnvRVersion))

	require.NoError(t, config.LoadEnv(dir))

	cfg := &config.GlobalConfig{RegistryURL: "https://hub.docker.com"}
	cfg.ApplyEnv()

	assert.Equal(t, "https://mirror.example.com", cfg.RegistryURL)
	assert.Equal(t, "4.2.3", config.RVersionFromEnv())
}

func TestLoadEnv_ExistingVariableWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCKR_R_VERSION=4.2.3\n"), 0o644))

	t.Setenv(config.EnvRVersion, "4.4.1")

	require.NoError(t, config.LoadEnv(dir))
	assert.Equal(t, "4.4.1", config.RVersionFromEnv())
}

func TestLoadEnv_Missing(t *testing.T) {
	require.NoError(t, config.LoadEnv(t.TempDir()))
}
