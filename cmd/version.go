package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/ui"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

// SetVersionInfo sets the build-time version information.
func SetVersionInfo(version, commit string) {
	buildVersion = version
	buildCommit = commit
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dockr version and the tag catalog in use",
	Run: func(cmd *cobra.Command, _ []string) {
		w := ui.NewWriter(noColor)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s (commit: %s)\n", w.Bold("dockr"), buildVersion, buildCommit) //nolint:errcheck
		fmt.Fprintf(out, "catalog: %s\n", catalogDescription())                            //nolint:errcheck
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
