package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/dockr/internal/catalog"
	"github.com/donaldgifford/dockr/internal/config"
)

// These tests swap the package-level config and must not run in parallel.

func TestCatalogDescriptionAndLister(t *testing.T) {
	saved := globalCfg
	t.Cleanup(func() { globalCfg = saved })

	globalCfg = nil
	assert.Equal(t, "hub https://hub.docker.com", catalogDescription())
	assert.IsType(t, &catalog.HubLister{}, newLister(nil))

	globalCfg = &config.GlobalConfig{RegistryURL: "http://mirror.local"}
	assert.Equal(t, "hub http://mirror.local", catalogDescription())

	globalCfg = &config.GlobalConfig{Catalog: config.CatalogConfig{Source: config.SourceOCI, Registry: "ghcr.io"}}
	assert.Equal(t, "oci ghcr.io", catalogDescription())
	assert.IsType(t, &catalog.OCILister{}, newLister(nil))
}
