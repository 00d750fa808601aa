package initcmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/initcmd"
	"github.com/donaldgifford/dockr/internal/validate"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "project")

	path, err := initcmd.Run(&initcmd.Opts{Dir: dir, RMode: "rstudio", RVersion: "4.4.1"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.ProjectFileName), path)

	p, err := config.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "4.4.1", p.RVersion)
	assert.Equal(t, "rstudio", p.RMode)
	assert.Equal(t, "/home", p.HomeDir)
	assert.Nil(t, p.DataFile)
	require.NotNil(t, p.Comments)
	assert.True(t, *p.Comments)
}

func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path, err := initcmd.Run(&initcmd.Opts{Dir: dir})
	require.NoError(t, err)

	p, err := config.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "current", p.RVersion)
	assert.Equal(t, "base", p.RMode)
}

func TestRun_AlreadyExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, config.ProjectFileName)
	require.NoError(t, os.WriteFile(existing, []byte("r_mode: base\n"), 0o644))

	_, err := initcmd.Run(&initcmd.Opts{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "r_mode: base\n", string(content))
}

func TestRun_InvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := initcmd.Run(&initcmd.Opts{Dir: t.TempDir(), RMode: "studio"})
	require.ErrorIs(t, err, validate.ErrInvalidImageFamily)

	_, err = initcmd.Run(&initcmd.Opts{Dir: t.TempDir(), RVersion: "4.x"})
	require.ErrorIs(t, err, validate.ErrInvalidVersionFormat)
}

func TestRun_ExplicitCurrent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := initcmd.Run(&initcmd.Opts{Dir: dir, RVersion: "current"})
	require.NoError(t, err)
}
