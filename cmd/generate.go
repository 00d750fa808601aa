package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/generate"
	"github.com/donaldgifford/dockr/internal/hooks"
	"github.com/donaldgifford/dockr/internal/ui"
)

var (
	genRVersion      string
	genRMode         string
	genDataFiles     []string
	genCodeFiles     []string
	genMiscFiles     []string
	genAddUser       string
	genHomeDir       string
	genInstallQuarto bool
	genExposePort    string
	genSyslibs       bool
	genComments      bool
	genOutput        string
	genRestoreScript string
	genProjectConfig string
	genNoHooks       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Dockerfile for an R project",
	Long: `Generate a Dockerfile for the R project in the current directory.

Settings come from dockr.yaml (if present), then DOCKR_R_VERSION, then flags.
The base image tag is confirmed against the registry before the Dockerfile is
written; nothing is written if any check fails.`,
	Aliases: []string{"gen"},
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genRVersion, "r-version", "current", `R version tag, or "current" for the host's R`)
	f.StringVar(&genRMode, "r-mode", "base", familyUsage())
	f.StringArrayVar(&genDataFiles, "data-file", nil, "data file to copy (can be repeated)")
	f.StringArrayVar(&genCodeFiles, "code-file", nil, "code file to copy (can be repeated)")
	f.StringArrayVar(&genMiscFiles, "misc-file", nil, "miscellaneous file to copy (can be repeated)")
	f.StringVar(&genAddUser, "add-user", "", "create this Linux user and run as it")
	f.StringVar(&genHomeDir, "home-dir", generate.DefaultHomeDir, "working directory inside the image")
	f.BoolVar(&genInstallQuarto, "install-quarto", false, "install Quarto")
	f.StringVar(&genExposePort, "expose-port", generate.DefaultExposePort, "port exposed for the rstudio family")
	f.BoolVar(&genSyslibs, "install-syslibs", true, "install system libraries for compiling R packages")
	f.BoolVar(&genComments, "comments", false, "add explanatory comments")
	f.StringVarP(&genOutput, "output", "o", "", "output file or directory (default ./Dockerfile)")
	f.StringVar(&genRestoreScript, "restore-script", "", "package restore snippet source (path or go-getter URL)")
	f.StringVar(&genProjectConfig, "project-config", config.ProjectFileName, "project settings file")
	f.BoolVar(&genNoHooks, "no-hooks", false, "skip post_generate hooks from the project settings")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts := generate.Defaults()

	w := ui.NewWriter(noColor)

	project, err := config.LoadProjectIfExists(genProjectConfig)
	if err != nil {
		return err
	}

	if project != nil {
		if verbose {
			w.Infof("using project settings from %s", genProjectConfig)
		}

		generate.ApplyProject(opts, project, filepath.Dir(genProjectConfig))
	}

	if v := config.RVersionFromEnv(); v != "" {
		opts.RVersion = v
	}

	applyGenerateFlags(cmd, opts)

	opts.Verbose = verbose
	opts.Progress = w
	opts.Resolver = newResolver(nil)
	opts.Logger = slog.Default()

	result, err := generate.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	w.Successf("Wrote %s (%s, %d lines)", result.Path, result.Image, result.Lines)

	if project == nil || genNoHooks {
		return nil
	}

	errs := hooks.RunPostGenerate(cmd.Context(), &hooks.Opts{
		Commands:   project.PostGenerate,
		WorkDir:    filepath.Dir(result.Path),
		Dockerfile: result.Path,
		Image:      result.Image,
		Stdout:     w.Out(),
		Stderr:     w.ErrOut(),
		Logger:     slog.Default(),
	})
	for _, err := range errs {
		w.Warningf("post_generate %v", err)
	}

	return nil
}

// applyGenerateFlags copies flags the user set explicitly over opts.
func applyGenerateFlags(cmd *cobra.Command, opts *generate.Opts) {
	f := cmd.Flags()

	if f.Changed("r-version") {
		opts.RVersion = genRVersion
	}

	if f.Changed("r-mode") {
		opts.RMode = genRMode
	}

	if f.Changed("data-file") {
		opts.DataFile = genDataFiles
	}

	if f.Changed("code-file") {
		opts.CodeFile = genCodeFiles
	}

	if f.Changed("misc-file") {
		opts.MiscFile = genMiscFiles
	}

	if f.Changed("add-user") {
		opts.AddUser = genAddUser
	}

	if f.Changed("home-dir") {
		opts.HomeDir = genHomeDir
	}

	if f.Changed("install-quarto") {
		opts.InstallQuarto = genInstallQuarto
	}

	if f.Changed("expose-port") {
		opts.ExposePort = genExposePort
	}

	if f.Changed("install-syslibs") {
		opts.InstallSyslibs = genSyslibs
	}

	if f.Changed("comments") {
		opts.Comments = genComments
	}

	if f.Changed("output") {
		opts.Output = genOutput
	}

	if f.Changed("restore-script") {
		opts.RestoreScript = genRestoreScript
	}
}
