package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/donaldgifford/dockr/internal/validate"
)

const (
	// DefaultHubURL is the Docker Hub API base.
	DefaultHubURL = "https://hub.docker.com"

	// DefaultPageSize is the page size requested from the tag listing endpoint.
	DefaultPageSize = 100
)

// HubLister lists tags through the Docker Hub repositories API, following
// next-page links until the listing is exhausted.
type HubLister struct {
	// BaseURL is the registry API base. Defaults to DefaultHubURL.
	BaseURL string

	// Client performs the requests. Defaults to a cleanhttp client.
	Client *http.Client

	// PageSize is the page_size query parameter. Defaults to DefaultPageSize.
	PageSize int

	// OnPage, if set, is called with the number of tags in each page fetched.
	OnPage func(count int)

	// Logger for debug output.
	Logger *slog.Logger
}

type tagPage struct {
	Next    *string `json:"next"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// ListTags fetches every page of tags for repository. A non-200 response on
// any page aborts the listing with a *validate.RegistryError.
func (h *HubLister) ListTags(ctx context.Context, repository string) (*Catalog, error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := h.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}

	endpoint := h.firstPage(repository)
	cat := NewCatalog(repository, endpoint)

	visited := map[string]bool{}

	for next := endpoint; next != "" && !visited[next]; {
		visited[next] = true

		page, err := fetchPage(ctx, client, next)
		if err != nil {
			return nil, err
		}

		for _, r := range page.Results {
			cat.Add(r.Name)
		}

		logger.Debug("fetched tag page", "url", next, "tags", len(page.Results))

		if h.OnPage != nil {
			h.OnPage(len(page.Results))
		}

		next = ""
		if page.Next != nil {
			next = *page.Next
		}
	}

	return cat, nil
}

func (h *HubLister) firstPage(repository string) string {
	base := h.BaseURL
	if base == "" {
		base = DefaultHubURL
	}

	size := h.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	return fmt.Sprintf("%s/v2/repositories/%s/tags?page_size=%d", strings.TrimRight(base, "/"), repository, size)
}

func fetchPage(ctx context.Context, client *http.Client, url string) (*tagPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &validate.RegistryError{Endpoint: url, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, &validate.RegistryError{StatusCode: resp.StatusCode, Endpoint: url}
	}

	var page tagPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding tag page %s: %w", url, err)
	}

	return &page, nil
}
