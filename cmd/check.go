package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/image"
	"github.com/donaldgifford/dockr/internal/ui"
	"github.com/donaldgifford/dockr/internal/validate"
)

var checkRMode string

var checkCmd = &cobra.Command{
	Use:   "check <version>",
	Short: "Check whether a base image tag exists",
	Long: `Check whether an R version is published for an image family. Exits
non-zero when the tag is missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkRMode, "r-mode", "base", familyUsage())
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	version := args[0]

	ok, err := newResolver(nil).TagExists(cmd.Context(), version, checkRMode)
	if err != nil {
		return err
	}

	family := image.Family(checkRMode)

	ref, err := image.Reference(family, version)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: %s is not published, see %s", validate.ErrUnsupportedVersion, ref, family.TagsURL())
	}

	ui.NewWriter(noColor).Successf("%s is available", ref)

	return nil
}
