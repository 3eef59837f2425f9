// Package pipeline runs the complete diagram generation flow: render
// the model into PlantUML text, optionally export it as an Archi XML
// model, and optionally rasterize the text into images.
//
// The same Runner backs the CLI and the HTTP server so caching and
// validation behave identically across entry points.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Theme:   "modern",
//	    Formats: []string{"puml", "png"},
//	}
//	result, err := runner.Execute(ctx, diagram, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	text, err := runner.RenderText(ctx, diagram, opts)
//	xml, err := runner.Export(ctx, diagram, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archigen/archigen/pkg/cache"
	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/i18n"
	"github.com/archigen/archigen/pkg/render/plantuml"
	"github.com/archigen/archigen/pkg/renderer"
)

// Format constants for pipeline outputs.
const (
	FormatPUML = "puml"
	FormatXML  = "xml"
	FormatPNG  = "png"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPUML: true,
	FormatXML:  true,
	FormatPNG:  true,
	FormatSVG:  true,
}

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Render options
	Direction              string `json:"direction,omitempty"`
	Theme                  string `json:"theme,omitempty"`
	ComponentStyle         string `json:"component_style,omitempty"`
	Spacing                string `json:"spacing,omitempty"`
	LayoutEngine           string `json:"layout_engine,omitempty"`
	GroupByLayer           bool   `json:"group_by_layer,omitempty"`
	Hierarchical           bool   `json:"hierarchical,omitempty"`
	GroupByAspect          bool   `json:"group_by_aspect,omitempty"`
	ShowEmptyGroups        bool   `json:"show_empty_groups,omitempty"`
	HideTitle              bool   `json:"hide_title,omitempty"`
	HideLegend             bool   `json:"hide_legend,omitempty"`
	ShowElementTypes       bool   `json:"show_element_types,omitempty"`
	HideRelationshipLabels bool   `json:"hide_relationship_labels,omitempty"`
	ShowDocumentation      bool   `json:"show_documentation,omitempty"`
	DisableStyling         bool   `json:"disable_styling,omitempty"`
	Language               string `json:"language,omitempty"` // path to a translation file

	// Export options
	ViewName string `json:"view_name,omitempty"`

	// Output options
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // bypass the cache on reads

	// Runtime options (not serialized)
	Logger     *log.Logger     `json:"-"`
	Translator i18n.Translator `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DiagramHash is the content hash of the input diagram.
	DiagramHash string

	// Text is the rendered diagram document.
	Text string

	// Artifacts contains outputs keyed by format.
	Artifacts map[string][]byte

	// Warnings carries non-fatal findings from export validation.
	Warnings []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount      int
	RelationshipCount int
	RenderTime        time.Duration
	ExportTime        time.Duration
	RasterTime        time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // rendered text came from cache
	ExportHit bool // exported XML came from cache
	RasterHit bool // all image artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: puml, xml, png, svg)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPUML}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}

	if o.Translator == nil {
		if o.Language != "" {
			dict, err := i18n.Load(o.Language)
			if err != nil {
				return err
			}
			o.Translator = dict
		} else {
			o.Translator = i18n.English()
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	// Render options are validated by the renderer itself; surface any
	// error now so stage helpers never see bad options.
	ropts := o.RenderOptions()
	if err := ropts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// RenderOptions converts pipeline options into renderer options.
func (o *Options) RenderOptions() plantuml.Options {
	ropts := plantuml.DefaultOptions()
	if o.Direction != "" {
		ropts.Direction = o.Direction
	}
	if o.Theme != "" {
		ropts.Theme = plantuml.Theme(o.Theme)
	}
	if o.ComponentStyle != "" {
		ropts.ComponentStyle = o.ComponentStyle
	}
	if o.Spacing != "" {
		ropts.Spacing = o.Spacing
	}
	if o.LayoutEngine != "" {
		ropts.LayoutEngine = o.LayoutEngine
	}
	ropts.GroupByLayer = o.GroupByLayer
	ropts.Hierarchical = o.Hierarchical
	ropts.GroupByAspect = o.GroupByAspect
	ropts.ShowEmptyGroups = o.ShowEmptyGroups
	ropts.ShowTitle = !o.HideTitle
	ropts.ShowLegend = !o.HideLegend
	ropts.ShowElementTypes = o.ShowElementTypes
	ropts.ShowRelationshipLabels = !o.HideRelationshipLabels
	ropts.ShowDocumentation = o.ShowDocumentation
	ropts.EnableStyling = !o.DisableStyling
	return ropts
}

// WantsImages reports whether any requested format needs the
// rasterizer.
func (o *Options) WantsImages() bool {
	for _, f := range o.Formats {
		if f == FormatPNG || f == FormatSVG {
			return true
		}
	}
	return false
}

// WantsExport reports whether XML export was requested.
func (o *Options) WantsExport() bool {
	for _, f := range o.Formats {
		if f == FormatXML {
			return true
		}
	}
	return false
}

// ImageFormats returns the requested rasterized formats.
func (o *Options) ImageFormats() []renderer.Format {
	var formats []renderer.Format
	for _, f := range o.Formats {
		if f == FormatPNG || f == FormatSVG {
			formats = append(formats, renderer.Format(f))
		}
	}
	return formats
}

// RenderKeyOpts returns cache key options for the render stage.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	grouping := "flat"
	switch {
	case o.Hierarchical:
		grouping = "hierarchical"
	case o.GroupByLayer:
		grouping = "layer"
	}
	return cache.RenderKeyOpts{
		Direction: o.Direction,
		Theme:     o.Theme,
		Grouping:  grouping,
		Language:  o.Language,
		Labels:    !o.HideRelationshipLabels,
	}
}

// ExportKeyOpts returns cache key options for the export stage.
func (o *Options) ExportKeyOpts() cache.ExportKeyOpts {
	return cache.ExportKeyOpts{ViewName: o.ViewName}
}

// ArtifactKeyOpts returns cache key options for one rasterized format.
func (o *Options) ArtifactKeyOpts(format renderer.Format) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: string(format)}
}
