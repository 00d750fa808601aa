package generate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/generate"
)

func TestApplyProject(t *testing.T) {
	t.Parallel()

	yes, no := true, false

	p := &config.Project{
		RVersion:       "4.4.1",
		RMode:          "tidyverse",
		DataFile:       []any{"data/a.csv", "/abs/b.csv"},
		CodeFile:       "analysis.R",
		AddUser:        "analyst",
		HomeDir:        "/srv",
		ExposePort:     "8888",
		InstallQuarto:  &yes,
		InstallSyslibs: &no,
		Comments:       &yes,
		Output:         "build/",
		RestoreScript:  "https://example.com/restore.sh",
	}

	opts := generate.Defaults()
	generate.ApplyProject(opts, p, "/project")

	assert.Equal(t, "4.4.1", opts.RVersion)
	assert.Equal(t, "tidyverse", opts.RMode)
	assert.Equal(t, []any{"/project/data/a.csv", "/abs/b.csv"}, opts.DataFile)
	assert.Equal(t, "/project/analysis.R", opts.CodeFile)
	assert.Nil(t, opts.MiscFile)
	assert.Equal(t, "analyst", opts.AddUser)
	assert.Equal(t, "/srv", opts.HomeDir)
	assert.Equal(t, "8888", opts.ExposePort)
	assert.True(t, opts.InstallQuarto)
	assert.False(t, opts.InstallSyslibs)
	assert.True(t, opts.Comments)
	assert.Equal(t, "/project/build/", opts.Output)
	assert.Equal(t, "https://example.com/restore.sh", opts.RestoreScript)
}

func TestApplyProject_LocalRestoreScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restore.sh"), []byte("RUN true\n"), 0o644))

	opts := generate.Defaults()
	generate.ApplyProject(opts, &config.Project{RestoreScript: "restore.sh"}, dir)

	assert.Equal(t, filepath.Join(dir, "restore.sh"), opts.RestoreScript)
}

func TestApplyProject_Nil(t *testing.T) {
	t.Parallel()

	opts := generate.Defaults()
	generate.ApplyProject(opts, nil, "/project")

	assert.Equal(t, generate.Defaults(), opts)
}

func TestApplyProject_KeepsInvalidShapes(t *testing.T) {
	t.Parallel()

	opts := generate.Defaults()
	generate.ApplyProject(opts, &config.Project{DataFile: 42}, "/project")

	assert.Equal(t, 42, opts.DataFile)
}
