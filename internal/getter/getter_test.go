package getter_test

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/getter"
)

const script = "RUN R -e \"renv::restore()\"\n"

func TestNew(t *testing.T) {
	t.Parallel()

	// Verify New doesn't panic with nil logger.
	g := getter.New(nil)
	assert.NotNil(t, g)
}

func TestReadFile_LocalPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "restore.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	data, err := getter.New(nil).ReadFile(t.Context(), path, getter.FetchOpts{})
	require.NoError(t, err)
	assert.Equal(t, script, string(data))
}

func TestReadFile_RelativeToPwd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restore.sh"), []byte(script), 0o644))

	data, err := getter.New(nil).ReadFile(t.Context(), "restore.sh", getter.FetchOpts{Pwd: dir})
	require.NoError(t, err)
	assert.Equal(t, script, string(data))
}

func TestReadFile_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(script))
	}))
	t.Cleanup(srv.Close)

	sum := sha256.Sum256([]byte(script))

	data, err := getter.New(nil).ReadFile(t.Context(), srv.URL+"/restore.sh", getter.FetchOpts{
		Checksum: hex.EncodeToString(sum[:]),
	})
	require.NoError(t, err)
	assert.Equal(t, script, string(data))
}

func TestReadFile_ChecksumMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(script))
	}))
	t.Cleanup(srv.Close)

	sum := sha256.Sum256([]byte("something else"))

	_, err := getter.New(nil).ReadFile(t.Context(), srv.URL+"/restore.sh", getter.FetchOpts{
		Checksum: hex.EncodeToString(sum[:]),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching file")
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	_, err := getter.New(nil).ReadFile(t.Context(), srv.URL+"/missing.sh", getter.FetchOpts{})
	require.Error(t, err)
}
