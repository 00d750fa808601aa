package image_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dockr/internal/image"
)

func TestFamily_Repository(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family   image.Family
		expected string
	}{
		{image.Base, "rocker/r-ver"},
		{image.RStudio, "rocker/rstudio"},
		{image.Tidyverse, "rocker/tidyverse"},
		{image.TidyStudio, "rocker/verse"},
	}

	seen := map[string]bool{}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			t.Parallel()

			repo, err := tt.family.Repository()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, repo)
		})

		seen[tt.expected] = true
	}

	assert.Len(t, seen, len(image.Families()))
}

func TestFamily_Unknown(t *testing.T) {
	t.Parallel()

	f := image.Family("studio")

	assert.False(t, f.Valid())

	_, err := f.Repository()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studio")
}

func TestFamily_Interactive(t *testing.T) {
	t.Parallel()

	for _, f := range image.Families() {
		assert.Equal(t, f == image.RStudio, f.Interactive(), f.String())
	}
}

func TestReference(t *testing.T) {
	t.Parallel()

	ref, err := image.Reference(image.Base, "4.3.0")
	require.NoError(t, err)
	assert.Equal(t, "rocker/r-ver:4.3.0", ref)

	ref, err = image.Reference(image.RStudio, "4.4.1-cuda12.2-ubuntu22.04")
	require.NoError(t, err)
	assert.Equal(t, "rocker/rstudio:4.4.1-cuda12.2-ubuntu22.04", ref)
}

func TestReference_InvalidTag(t *testing.T) {
	t.Parallel()

	_, err := image.Reference(image.Base, "bad tag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tag")
}

func TestFamily_TagsURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://hub.docker.com/r/rocker/tidyverse/tags", image.Tidyverse.TagsURL())
}
