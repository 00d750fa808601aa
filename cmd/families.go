package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/info"
)

var familiesOutputFormat string

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "Show the supported image families",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return info.Run(&info.Opts{
			Writer:       os.Stdout,
			OutputFormat: familiesOutputFormat,
		})
	},
}

func init() {
	familiesCmd.Flags().StringVarP(&familiesOutputFormat, "output", "o", "text", "output format (text, json)")
	rootCmd.AddCommand(familiesCmd)
}
