package cmd

import (
	"log/slog"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/samber/lo"

	"github.com/donaldgifford/dockr/internal/catalog"
	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/image"
)

// newLister builds the tag lister selected by the global config. onPage may
// be nil.
func newLister(onPage func(int)) catalog.Lister {
	cfg := globalCfg
	if cfg == nil {
		cfg = &config.GlobalConfig{}
	}

	if cfg.CatalogSource() == config.SourceOCI {
		return &catalog.OCILister{
			Registry: cfg.Catalog.Registry,
			Insecure: cfg.Catalog.Insecure,
		}
	}

	client := cleanhttp.DefaultClient()
	client.Timeout = cfg.HTTPTimeout

	return &catalog.HubLister{
		BaseURL: cfg.RegistryURL,
		Client:  client,
		OnPage:  onPage,
		Logger:  slog.Default(),
	}
}

func newResolver(onPage func(int)) *catalog.Resolver {
	return catalog.NewResolver(newLister(onPage), slog.Default())
}

func familyUsage() string {
	names := lo.Map(image.Families(), func(f image.Family, _ int) string {
		return f.String()
	})

	return "image family (" + strings.Join(names, ", ") + ")"
}

// catalogDescription names the tag source newLister would use.
func catalogDescription() string {
	cfg := globalCfg
	if cfg == nil {
		cfg = &config.GlobalConfig{}
	}

	if cfg.CatalogSource() == config.SourceOCI {
		registry := cfg.Catalog.Registry
		if registry == "" {
			registry = "index.docker.io"
		}

		return "oci " + registry
	}

	base := cfg.RegistryURL
	if base == "" {
		base = catalog.DefaultHubURL
	}

	return "hub " + base
}
