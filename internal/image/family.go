// Package image maps dockr image families to their rocker repositories and
// builds validated base-image references.
package image

import (
	"fmt"

	"github.com/distribution/reference"
)

// Family selects which rocker base image a Dockerfile starts from.
type Family string

// Supported image families.
const (
	Base       Family = "base"
	RStudio    Family = "rstudio"
	Tidyverse  Family = "tidyverse"
	TidyStudio Family = "tidystudio"
)

// repositories is the fixed family to registry repository table.
var repositories = map[Family]string{
	Base:       "rocker/r-ver",
	RStudio:    "rocker/rstudio",
	Tidyverse:  "rocker/tidyverse",
	TidyStudio: "rocker/verse",
}

// Families returns every supported family in display order.
func Families() []Family {
	return []Family{Base, RStudio, Tidyverse, TidyStudio}
}

// Valid reports whether f is one of the supported families.
func (f Family) Valid() bool {
	_, ok := repositories[f]
	return ok
}

// Repository returns the registry repository for the family.
func (f Family) Repository() (string, error) {
	repo, ok := repositories[f]
	if !ok {
		return "", fmt.Errorf("no repository for image family %q", f)
	}

	return repo, nil
}

// Interactive reports whether the family ships the browser-based RStudio IDE
// and therefore needs a published port.
func (f Family) Interactive() bool {
	return f == RStudio
}

// TagsURL points users at the registry page listing published tags.
func (f Family) TagsURL() string {
	repo, err := f.Repository()
	if err != nil {
		return "https://hub.docker.com/u/rocker"
	}

	return "https://hub.docker.com/r/" + repo + "/tags"
}

func (f Family) String() string {
	return string(f)
}

// Reference returns the familiar "repository:tag" form of the base image,
// e.g. "rocker/r-ver:4.3.0".
func Reference(f Family, tag string) (string, error) {
	repo, err := f.Repository()
	if err != nil {
		return "", err
	}

	named, err := reference.ParseNormalizedNamed(repo)
	if err != nil {
		return "", fmt.Errorf("parsing repository %q: %w", repo, err)
	}

	tagged, err := reference.WithTag(named, tag)
	if err != nil {
		return "", fmt.Errorf("invalid tag %q for %s: %w", tag, repo, err)
	}

	return reference.FamiliarString(tagged), nil
}
