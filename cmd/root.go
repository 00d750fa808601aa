// Package cmd defines the CLI commands for dockr.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/ui"
)

var (
	verbose bool
	noColor bool
	cfgFile string

	globalCfg *config.GlobalConfig
)

// rootCmd is the base command for the dockr CLI.
var rootCmd = &cobra.Command{
	Use:   "dockr",
	Short: "Generate Dockerfiles for R projects",
	Long: `Dockr generates a Dockerfile for an R project from its renv lockfile and
the data, code and miscellaneous files it needs. The base image comes from the
rocker project and its tag is checked against the registry before anything is
written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		initLogger()

		return loadConfig()
	},
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.NewWriter(noColor).Error(err.Error())
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dockr/config.yaml)")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads .env from the working directory, then the global config,
// then applies environment overrides.
func loadConfig() error {
	if err := config.LoadEnv("."); err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.ApplyEnv()
	globalCfg = cfg

	slog.Debug("config loaded", "path", path, "source", cfg.CatalogSource())

	return nil
}
