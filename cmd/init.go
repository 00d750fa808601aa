package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/initcmd"
	"github.com/donaldgifford/dockr/internal/ui"
)

var (
	initRMode    string
	initRVersion string
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter dockr.yaml",
	Long: `Write a starter dockr.yaml into the given directory (or the current
directory). An existing dockr.yaml is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initRMode, "r-mode", "base", familyUsage())
	initCmd.Flags().StringVar(&initRVersion, "r-version", "current", "R version tag written to the file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	path, err := initcmd.Run(&initcmd.Opts{
		Dir:      dir,
		RMode:    initRMode,
		RVersion: initRVersion,
	})
	if err != nil {
		return err
	}

	ui.NewWriter(noColor).Successf("Created %s", path)

	return nil
}
