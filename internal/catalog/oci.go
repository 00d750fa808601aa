package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"

	"github.com/donaldgifford/dockr/internal/validate"
)

// OCILister lists tags through the OCI distribution API (/v2/<repo>/tags/list).
// It works against any registry, not only Docker Hub.
type OCILister struct {
	// Registry is the registry host, e.g. "index.docker.io". Empty means Docker Hub.
	Registry string

	// Insecure allows plain HTTP.
	Insecure bool

	// Options are passed through to remote.List.
	Options []remote.Option
}

// ListTags fetches every tag for repository.
func (o *OCILister) ListTags(ctx context.Context, repository string) (*Catalog, error) {
	ref := repository
	if o.Registry != "" {
		ref = o.Registry + "/" + repository
	}

	var nameOpts []name.Option
	if o.Insecure {
		nameOpts = append(nameOpts, name.Insecure)
	}

	repo, err := name.NewRepository(ref, nameOpts...)
	if err != nil {
		return nil, fmt.Errorf("parsing repository %q: %w", ref, err)
	}

	endpoint := fmt.Sprintf("%s://%s/v2/%s/tags/list", repo.Scheme(), repo.RegistryStr(), repo.RepositoryStr())

	opts := append([]remote.Option{remote.WithContext(ctx)}, o.Options...)

	tags, err := remote.List(repo, opts...)
	if err != nil {
		var terr *transport.Error
		if errors.As(err, &terr) {
			return nil, &validate.RegistryError{StatusCode: terr.StatusCode, Endpoint: endpoint, Err: err}
		}

		return nil, &validate.RegistryError{Endpoint: endpoint, Err: err}
	}

	cat := NewCatalog(repository, endpoint)
	cat.Add(tags...)

	return cat, nil
}
