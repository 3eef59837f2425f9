package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	docio "github.com/archigen/archigen/pkg/io"
	"github.com/archigen/archigen/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output                 string // output file (single format) or base path
	direction              string
	theme                  string
	spacing                string
	componentStyle         string
	layoutEngine           string
	language               string
	viewName               string
	groupByLayer           bool
	hierarchical           bool
	groupByAspect          bool
	showEmptyGroups        bool
	hideTitle              bool
	hideLegend             bool
	showElementTypes       bool
	hideRelationshipLabels bool
	showDocumentation      bool
	disableStyling         bool
	refresh                bool
	noCache                bool
}

// newGenerateCmd creates the generate command. It reads a diagram
// document, runs the full pipeline, and writes the requested outputs.
func newGenerateCmd(cfg *Config) *cobra.Command {
	var formatsStr string
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate diagram outputs from a model document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &opts, cfg)
			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if err := pipeline.ValidateFormat(f); err != nil {
					return err
				}
			}
			return runGenerate(cmd.Context(), args[0], formats, &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): puml (default), xml, png, svg (comma-separated)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: horizontal (default), vertical, layered")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "visual theme: modern (default), classic, colorful, minimal, dark, professional")
	cmd.Flags().StringVar(&opts.spacing, "spacing", "", "node spacing preset: compact, normal (default), wide")
	cmd.Flags().StringVar(&opts.componentStyle, "component-style", "", "component style: uml1, uml2 (default), rectangle")
	cmd.Flags().StringVar(&opts.layoutEngine, "layout-engine", "", "layout engine pragma: default, smetana, dot, neato, sfdp, fdp, twopi, circo")
	cmd.Flags().StringVar(&opts.language, "language", "", "path to a translation file")
	cmd.Flags().StringVar(&opts.viewName, "view-name", "", "name of the exported view")
	cmd.Flags().BoolVar(&opts.groupByLayer, "group-by-layer", false, "group elements into layer packages")
	cmd.Flags().BoolVar(&opts.hierarchical, "hierarchical", false, "nest aspect groups inside layer packages")
	cmd.Flags().BoolVar(&opts.groupByAspect, "group-by-aspect", false, "group elements by aspect")
	cmd.Flags().BoolVar(&opts.showEmptyGroups, "show-empty-groups", false, "emit packages for empty groups")
	cmd.Flags().BoolVar(&opts.hideTitle, "hide-title", false, "omit the diagram title")
	cmd.Flags().BoolVar(&opts.hideLegend, "hide-legend", false, "omit the layer legend")
	cmd.Flags().BoolVar(&opts.showElementTypes, "show-element-types", false, "append the element type to each label")
	cmd.Flags().BoolVar(&opts.hideRelationshipLabels, "hide-relationship-labels", false, "omit relationship labels")
	cmd.Flags().BoolVar(&opts.showDocumentation, "show-documentation", false, "include element documentation")
	cmd.Flags().BoolVar(&opts.disableStyling, "no-styling", false, "skip theme skinparams")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache on reads")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

// applyConfigDefaults fills unset flags from the config file.
func applyConfigDefaults(cmd *cobra.Command, opts *generateOpts, cfg *Config) {
	if !cmd.Flags().Changed("theme") && cfg.Theme != "" {
		opts.theme = cfg.Theme
	}
	if !cmd.Flags().Changed("direction") && cfg.Direction != "" {
		opts.direction = cfg.Direction
	}
	if !cmd.Flags().Changed("language") && cfg.Language != "" {
		opts.language = cfg.Language
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["puml"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPUML}
	}
	return strings.Split(s, ",")
}

// pipelineOptions converts the flag set into pipeline options.
func (opts *generateOpts) pipelineOptions(formats []string) pipeline.Options {
	return pipeline.Options{
		Direction:              opts.direction,
		Theme:                  opts.theme,
		Spacing:                opts.spacing,
		ComponentStyle:         opts.componentStyle,
		LayoutEngine:           opts.layoutEngine,
		GroupByLayer:           opts.groupByLayer,
		Hierarchical:           opts.hierarchical,
		GroupByAspect:          opts.groupByAspect,
		ShowEmptyGroups:        opts.showEmptyGroups,
		HideTitle:              opts.hideTitle,
		HideLegend:             opts.hideLegend,
		ShowElementTypes:       opts.showElementTypes,
		HideRelationshipLabels: opts.hideRelationshipLabels,
		ShowDocumentation:      opts.showDocumentation,
		DisableStyling:         opts.disableStyling,
		Language:               opts.language,
		ViewName:               opts.viewName,
		Formats:                formats,
		Refresh:                opts.refresh,
	}
}

// runGenerate loads the document, runs the pipeline, and writes one
// output file per requested format.
func runGenerate(ctx context.Context, input string, formats []string, opts *generateOpts, cfg *Config) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Generating %s", input)

	doc, err := docio.ImportJSON(input)
	if err != nil {
		return err
	}
	d, err := doc.Diagram()
	if err != nil {
		return err
	}
	logger.Infof("Loaded model: %d elements, %d relationships", d.ElementCount(), d.RelationshipCount())

	runner := newRunner(ctx, cfg, opts.noCache, logger)
	defer runner.Close()

	pipeOpts := opts.pipelineOptions(formats)
	pipeOpts.Logger = logger

	if pipeOpts.WantsImages() {
		rast, err := newRasterizer(cfg)
		if err != nil {
			return err
		}
		runner.Rasterizer = rast
	}

	spin := newSpinnerWithContext(ctx, "Generating diagram...")
	spin.Start()
	result, err := runner.Execute(ctx, d, pipeOpts)
	spin.Stop()
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := outputFile(opts.output, base, format, len(formats))
		if err := writeArtifact(path, data); err != nil {
			return err
		}
		printFile(path)
	}

	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	printStats(result.Stats.ElementCount, result.Stats.RelationshipCount, result.CacheInfo.RenderHit)
	return nil
}

// formatExts maps pipeline formats onto file extensions.
var formatExts = map[string]string{
	pipeline.FormatPUML: "puml",
	pipeline.FormatXML:  "archimate",
	pipeline.FormatPNG:  "png",
	pipeline.FormatSVG:  "svg",
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input; a
// known format extension on output is stripped as well.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, e := range formatExts {
		if ext == e {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// outputFile picks the path for one artifact. A single requested
// format honors --output verbatim.
func outputFile(output, base, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	return fmt.Sprintf("%s.%s", base, formatExts[format])
}

func writeArtifact(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// nopCloser wraps an io.Writer with a no-op Close method. It makes
// os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. If path is
// empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
