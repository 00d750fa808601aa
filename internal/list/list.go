// Package list renders the published tags of an image family.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/dockr/internal/catalog"
	"github.com/donaldgifford/dockr/internal/image"
)

// Opts configures the list output.
type Opts struct {
	// Family is the image family the catalog belongs to.
	Family image.Family
	// Catalog holds the resolved tags.
	Catalog *catalog.Catalog
	// Limit caps the number of tags shown. Zero shows all.
	Limit int
	// OutputFormat is "text" or "json".
	OutputFormat string
	// Writer is the output destination.
	Writer io.Writer
}

// TagsInfo is the JSON form of a tag listing.
type TagsInfo struct {
	Family     string   `json:"family"`
	Repository string   `json:"repository"`
	Endpoint   string   `json:"endpoint"`
	Total      int      `json:"total"`
	Tags       []string `json:"tags"`
}

// Run renders the catalog, newest versions first.
func Run(opts *Opts) error {
	tags := opts.Catalog.Sorted()
	if opts.Limit > 0 && len(tags) > opts.Limit {
		tags = tags[:opts.Limit]
	}

	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts, tags)
	default:
		return renderText(opts, tags)
	}
}

func renderText(opts *Opts, tags []string) error {
	tw := tabwriter.NewWriter(opts.Writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Family:\t%s\n", opts.Family); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(tw, "Repository:\t%s\n", opts.Catalog.Repository); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(tw, "Tags:\t%d\n", opts.Catalog.Len()); err != nil {
		return err
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(opts.Writer); err != nil {
		return err
	}

	for _, tag := range tags {
		if _, err := fmt.Fprintf(opts.Writer, "  %s\n", tag); err != nil {
			return err
		}
	}

	return nil
}

func renderJSON(opts *Opts, tags []string) error {
	out := TagsInfo{
		Family:     opts.Family.String(),
		Repository: opts.Catalog.Repository,
		Endpoint:   opts.Catalog.Endpoint,
		Total:      opts.Catalog.Len(),
		Tags:       tags,
	}

	enc := json.NewEncoder(opts.Writer)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
