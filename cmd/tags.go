package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/list"
	"github.com/donaldgifford/dockr/internal/validate"
)

var (
	tagsOutputFormat string
	tagsLimit        int
)

var tagsCmd = &cobra.Command{
	Use:   "tags <family>",
	Short: "List published tags for an image family",
	Long: `List the tags published for an image family, newest R versions first.
Tags are fetched from the registry on every call.`,
	Args: cobra.ExactArgs(1),
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().StringVarP(&tagsOutputFormat, "output", "o", "text", "output format (text, json)")
	tagsCmd.Flags().IntVar(&tagsLimit, "limit", 0, "show at most this many tags (0 shows all)")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	family, err := validate.Family(args[0])
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("listing %s tags", family)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Close() //nolint:errcheck

	resolver := newResolver(func(n int) {
		_ = bar.Add(n)
	})

	cat, err := resolver.Resolve(cmd.Context(), family)
	if err != nil {
		return err
	}

	_ = bar.Finish()

	return list.Run(&list.Opts{
		Family:       family,
		Catalog:      cat,
		Limit:        tagsLimit,
		OutputFormat: tagsOutputFormat,
		Writer:       os.Stdout,
	})
}
