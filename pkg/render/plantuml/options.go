package plantuml

import (
	"github.com/archigen/archigen/pkg/errors"
)

// Direction names for the top-level layout directive.
const (
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
	DirectionLayered    = "layered"
)

// ValidDirections enumerates accepted direction values.
var ValidDirections = map[string]bool{
	DirectionHorizontal: true,
	DirectionVertical:   true,
	DirectionLayered:    true,
}

// ValidComponentStyles enumerates accepted componentStyle values.
var ValidComponentStyles = map[string]bool{
	"uml1":      true,
	"uml2":      true,
	"rectangle": true,
}

// ValidSpacings enumerates accepted spacing presets.
var ValidSpacings = map[string]bool{
	"compact": true,
	"normal":  true,
	"wide":    true,
}

// ValidLayoutEngines enumerates accepted layout engine pragmas.
var ValidLayoutEngines = map[string]bool{
	"default": true,
	"smetana": true,
	"sfdp":    true,
	"dot":     true,
	"neato":   true,
	"fdp":     true,
	"twopi":   true,
	"circo":   true,
}

// DataBlock is an auxiliary JSON block embedded in the diagram.
type DataBlock struct {
	Name string
	JSON string
}

// Options configures a single render. Zero values are filled in by
// ValidateAndSetDefaults.
type Options struct {
	Direction  string // horizontal, vertical, layered
	ShowTitle  bool
	ShowLegend bool

	// Element section grouping.
	GroupByLayer    bool
	Hierarchical    bool // layer packages with nested aspect packages
	GroupByAspect   bool
	ShowEmptyGroups bool

	ShowElementTypes       bool
	ShowRelationshipLabels bool
	ShowDocumentation      bool

	// Styling.
	EnableStyling  bool
	Theme          Theme
	ComponentStyle string // uml1, uml2, rectangle
	Spacing        string // compact, normal, wide

	// Advanced layout controls.
	LayoutEngine string
	Concentrate  bool
	NodeSep      float64
	RankSep      float64

	DataBlocks []DataBlock
}

// DefaultOptions returns the standard rendering configuration.
func DefaultOptions() Options {
	return Options{
		Direction:              DirectionHorizontal,
		ShowTitle:              true,
		ShowLegend:             true,
		ShowRelationshipLabels: true,
		EnableStyling:          true,
		Theme:                  ThemeModern,
		ComponentStyle:         "uml2",
		Spacing:                "normal",
		LayoutEngine:           "default",
		NodeSep:                0.25,
		RankSep:                0.5,
	}
}

// ValidateAndSetDefaults fills zero values and rejects unknown settings.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Direction == "" {
		o.Direction = DirectionHorizontal
	}
	if !ValidDirections[o.Direction] {
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q", o.Direction)
	}

	if o.Theme == "" {
		o.Theme = ThemeModern
	}
	if !o.Theme.Valid() {
		return errors.New(errors.ErrCodeInvalidTheme, "invalid theme %q", o.Theme)
	}

	if o.ComponentStyle == "" {
		o.ComponentStyle = "uml2"
	}
	if !ValidComponentStyles[o.ComponentStyle] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid component style %q", o.ComponentStyle)
	}

	if o.Spacing == "" {
		o.Spacing = "normal"
	}
	if !ValidSpacings[o.Spacing] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid spacing %q", o.Spacing)
	}

	if o.LayoutEngine == "" {
		o.LayoutEngine = "default"
	}
	if !ValidLayoutEngines[o.LayoutEngine] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid layout engine %q", o.LayoutEngine)
	}

	if o.NodeSep == 0 {
		o.NodeSep = 0.25
	}
	if o.RankSep == 0 {
		o.RankSep = 0.5
	}

	return nil
}
