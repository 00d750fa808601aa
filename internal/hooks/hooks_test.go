package hooks_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/hooks"
)

func TestRunPostGenerate_Environment(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	opts := &hooks.Opts{
		Commands:   []string{`echo "$DOCKR_DOCKERFILE $DOCKR_IMAGE"`},
		WorkDir:    t.TempDir(),
		Dockerfile: "/work/Dockerfile",
		Image:      "rocker/r-ver:4.3.0",
		Stdout:     &stdout,
		Stderr:     &bytes.Buffer{},
	}

	errs := hooks.RunPostGenerate(t.Context(), opts)
	assert.Empty(t, errs)
	assert.Equal(t, "/work/Dockerfile rocker/r-ver:4.3.0\n", stdout.String())
}

func TestRunPostGenerate_WorkDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("FROM x\n"), 0o644))

	var stdout bytes.Buffer

	opts := &hooks.Opts{
		Commands: []string{"cat Dockerfile"},
		WorkDir:  dir,
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
	}

	errs := hooks.RunPostGenerate(t.Context(), opts)
	assert.Empty(t, errs)
	assert.Equal(t, "FROM x\n", stdout.String())
}

func TestRunPostGenerate_FailureContinues(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	opts := &hooks.Opts{
		Commands: []string{"exit 3", "echo after-failure"},
		WorkDir:  t.TempDir(),
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
	}

	errs := hooks.RunPostGenerate(t.Context(), opts)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `hook "exit 3"`)
	assert.Contains(t, stdout.String(), "after-failure")
}

func TestRunPostGenerate_None(t *testing.T) {
	t.Parallel()

	assert.Nil(t, hooks.RunPostGenerate(t.Context(), &hooks.Opts{}))
}
