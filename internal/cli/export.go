package cli

import (
	"github.com/spf13/cobra"

	docio "github.com/archigen/archigen/pkg/io"
	"github.com/archigen/archigen/pkg/pipeline"
)

// newExportCmd creates the export command, which writes a model
// document as an Archi-compatible XML file.
func newExportCmd(cfg *Config) *cobra.Command {
	var (
		output   string
		viewName string
		refresh  bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a model document as an Archi XML model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			doc, err := docio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			d, err := doc.Diagram()
			if err != nil {
				return err
			}

			runner := newRunner(ctx, cfg, noCache, logger)
			defer runner.Close()

			prog := newProgress(logger)
			data, err := runner.Export(ctx, d, pipeline.Options{
				ViewName: viewName,
				Formats:  []string{pipeline.FormatXML},
				Refresh:  refresh,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			prog.done("Exported model")

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if _, err := out.Write(data); err != nil {
				return err
			}
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&viewName, "view-name", "", "name of the exported view")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache on reads")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}
