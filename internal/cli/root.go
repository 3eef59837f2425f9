// Package cli implements the archigen command-line interface.
//
// The main commands are:
//   - generate: Render a diagram document to text, images, or an Archi model
//   - export: Write a diagram document as an Archi XML model
//   - validate: Check a diagram document for structural problems
//   - serve: Expose the generation pipeline over HTTP
//   - cache: Manage the local result cache
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context. Defaults for themes, paths, and
// backends can be set in a TOML config file (--config, or
// ~/.config/archigen/config.toml).
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/archigen/archigen/pkg/buildinfo"
)

const appName = "archigen"

// Execute runs the archigen CLI and returns an error if any command
// fails. The root command loads the config file and attaches a logger
// to the context before any subcommand runs.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)
	cfg := &Config{}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Archigen renders architecture diagrams from model documents",
		Long:         `Archigen is a CLI tool for turning layered architecture model documents into PlantUML diagrams, rendered images, and Archi-compatible XML models.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/archigen/config.toml)")

	root.AddCommand(newGenerateCmd(cfg))
	root.AddCommand(newExportCmd(cfg))
	root.AddCommand(newValidateCmd())
	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newCacheCmd(cfg))

	return root.ExecuteContext(context.Background())
}
