// Package catalog resolves the published version tags of rocker base images.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/mod/semver"

	"github.com/donaldgifford/dockr/internal/image"
	"github.com/donaldgifford/dockr/internal/validate"
)

// Catalog is the set of tags published for one repository. It is built fresh
// for every lookup.
type Catalog struct {
	// Repository is the registry repository the tags belong to.
	Repository string

	// Endpoint is the first URL queried to build the catalog.
	Endpoint string

	tags map[string]struct{}
}

// NewCatalog creates an empty catalog for repo.
func NewCatalog(repo, endpoint string) *Catalog {
	return &Catalog{
		Repository: repo,
		Endpoint:   endpoint,
		tags:       make(map[string]struct{}),
	}
}

// Add inserts tags. Inserting a tag twice is a no-op.
func (c *Catalog) Add(tags ...string) {
	for _, t := range tags {
		c.tags[t] = struct{}{}
	}
}

// Contains reports whether tag is published.
func (c *Catalog) Contains(tag string) bool {
	_, ok := c.tags[tag]
	return ok
}

// Len returns the number of distinct tags.
func (c *Catalog) Len() int {
	return len(c.tags)
}

// Tags returns the tags in lexical order.
func (c *Catalog) Tags() []string {
	tags := lo.Keys(c.tags)
	slices.Sort(tags)

	return tags
}

// Sorted returns numeric version tags newest first, followed by the
// remaining tags (latest, devel, ...) in lexical order. Variant tags such as
// 4.4.1-cuda12.2 sort directly after their plain version.
func (c *Catalog) Sorted() []string {
	versions, others := lo.FilterReject(lo.Keys(c.tags), func(t string, _ int) bool {
		core, _, _ := strings.Cut(t, "-")
		return semver.IsValid("v" + core)
	})

	slices.SortFunc(versions, func(a, b string) int {
		coreA, suffixA, _ := strings.Cut(a, "-")
		coreB, suffixB, _ := strings.Cut(b, "-")

		if cmp := semver.Compare("v"+coreB, "v"+coreA); cmp != 0 {
			return cmp
		}

		if cmp := strings.Compare(coreA, coreB); cmp != 0 {
			return cmp
		}

		return strings.Compare(suffixA, suffixB)
	})
	slices.Sort(others)

	return append(versions, others...)
}

// Lister fetches every tag of a repository.
type Lister interface {
	ListTags(ctx context.Context, repository string) (*Catalog, error)
}

// Resolver maps image families to repositories and queries their tags.
type Resolver struct {
	lister Lister
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by lister.
func NewResolver(lister Lister, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		lister: lister,
		logger: logger,
	}
}

// Resolve fetches the complete tag catalog for family. Results are never
// memoized; every call hits the registry.
func (r *Resolver) Resolve(ctx context.Context, family image.Family) (*Catalog, error) {
	repo, err := family.Repository()
	if err != nil {
		return nil, err
	}

	r.logger.Debug("resolving tags", "family", family, "repository", repo)

	cat, err := r.lister.ListTags(ctx, repo)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("resolved tags", "repository", repo, "count", cat.Len())

	return cat, nil
}

// TagExists validates version and family, then reports whether version is a
// published tag of the family's repository. Validation failures return before
// any network call.
func (r *Resolver) TagExists(ctx context.Context, version, family any) (bool, error) {
	v, err := validate.Version(version)
	if err != nil {
		return false, err
	}

	f, err := validate.Family(family)
	if err != nil {
		return false, err
	}

	cat, err := r.Resolve(ctx, f)
	if err != nil {
		return false, fmt.Errorf("resolving tags for %s: %w", f, err)
	}

	return cat.Contains(v), nil
}
