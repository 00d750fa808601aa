// Package info describes the supported image families.
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/dockr/internal/image"
)

// Opts configures the families output.
type Opts struct {
	// Families to describe. Empty means all.
	Families []image.Family
	// Writer is the output destination.
	Writer io.Writer
	// OutputFormat is "text" or "json".
	OutputFormat string
}

// FamilyInfo is one row of the families output.
type FamilyInfo struct {
	Name        string `json:"name"`
	Repository  string `json:"repository"`
	Interactive bool   `json:"interactive"`
	TagsURL     string `json:"tags_url"`
}

// Run displays family information.
func Run(opts *Opts) error {
	families := opts.Families
	if len(families) == 0 {
		families = image.Families()
	}

	rows := make([]FamilyInfo, 0, len(families))

	for _, f := range families {
		repo, err := f.Repository()
		if err != nil {
			return err
		}

		rows = append(rows, FamilyInfo{
			Name:        f.String(),
			Repository:  repo,
			Interactive: f.Interactive(),
			TagsURL:     f.TagsURL(),
		})
	}

	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts.Writer, rows)
	default:
		return renderText(opts.Writer, rows)
	}
}

func renderText(w io.Writer, rows []FamilyInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "FAMILY\tREPOSITORY\tRSTUDIO\tTAGS"); err != nil {
		return err
	}

	for _, r := range rows {
		ide := ""
		if r.Interactive {
			ide = "yes"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Repository, ide, r.TagsURL); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, rows []FamilyInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rows)
}
