package plantuml

import (
	"fmt"
	"sort"
)

// Theme names a predefined visual styling preset.
type Theme string

const (
	ThemeModern       Theme = "modern"
	ThemeClassic      Theme = "classic"
	ThemeColorful     Theme = "colorful"
	ThemeMinimal      Theme = "minimal"
	ThemeDark         Theme = "dark"
	ThemeProfessional Theme = "professional"
)

// Themes lists all predefined themes.
func Themes() []Theme {
	return []Theme{ThemeModern, ThemeClassic, ThemeColorful, ThemeMinimal, ThemeDark, ThemeProfessional}
}

// Valid reports whether t names a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeModern, ThemeClassic, ThemeColorful, ThemeMinimal, ThemeDark, ThemeProfessional:
		return true
	}
	return false
}

// ColorScheme holds the palette of a styling preset.
type ColorScheme struct {
	Background  string
	Primary     string
	Secondary   string
	Accent      string
	Text        string
	Border      string
	LayerColors map[string]string
}

func defaultLayerColors() map[string]string {
	return map[string]string{
		"Business":       "#FF6B6B",
		"Application":    "#4ECDC4",
		"Technology":     "#45B7D1",
		"Physical":       "#FFA07A",
		"Motivation":     "#98D8C8",
		"Strategy":       "#F7DC6F",
		"Implementation": "#BB8FCE",
	}
}

// FontConfig holds the default font settings.
type FontConfig struct {
	Name string
	Size int
}

// ComponentStyling holds component box rendering settings.
type ComponentStyling struct {
	BorderThickness int
	BorderColor     string
	BackgroundColor string
	FontSize        int
	FontStyle       string
	Rounded         bool
}

// Styling is a complete visual configuration, usually obtained from a
// theme preset.
type Styling struct {
	Theme       Theme
	Colors      ColorScheme
	Font        FontConfig
	Component   ComponentStyling
	Spacing     string // compact, normal, wide
	ShowShadows bool
	ShowBorders bool
}

var spacingPresets = map[string]struct{ nodesep, ranksep int }{
	"compact": {20, 30},
	"normal":  {40, 50},
	"wide":    {60, 80},
}

// Preset returns the styling for a theme, falling back to modern for
// unknown names.
func Preset(t Theme) Styling {
	base := ComponentStyling{
		BorderThickness: 2,
		BorderColor:     "#333333",
		BackgroundColor: "#FEFEFE",
		FontSize:        12,
		FontStyle:       "normal",
		Rounded:         true,
	}
	s := Styling{
		Theme:       t,
		Font:        FontConfig{Name: "Arial", Size: 12},
		Component:   base,
		Spacing:     "normal",
		ShowShadows: true,
		ShowBorders: true,
	}

	switch t {
	case ThemeClassic:
		s.Colors = ColorScheme{
			Background: "#F8F9FA", Primary: "#6C757D", Secondary: "#ADB5BD",
			Accent: "#495057", Text: "#212529", Border: "#CED4DA",
		}
		s.Component.BorderThickness = 1
		s.Component.Rounded = false
	case ThemeColorful:
		s.Colors = ColorScheme{
			Background: "#FFF8E1", Primary: "#FF5722", Secondary: "#FFC107",
			Accent: "#4CAF50", Text: "#212529", Border: "#FF9800",
		}
		s.Component.BorderThickness = 3
	case ThemeMinimal:
		s.Colors = ColorScheme{
			Background: "#FFFFFF", Primary: "#000000", Secondary: "#CCCCCC",
			Accent: "#666666", Text: "#000000", Border: "#CCCCCC",
		}
		s.Component.BorderThickness = 1
		s.Component.Rounded = false
		s.ShowShadows = false
	case ThemeDark:
		s.Colors = ColorScheme{
			Background: "#2D3748", Primary: "#63B3ED", Secondary: "#4A5568",
			Accent: "#68D391", Text: "#E2E8F0", Border: "#4A5568",
		}
	case ThemeProfessional:
		s.Colors = ColorScheme{
			Background: "#FFFFFF", Primary: "#2C5282", Secondary: "#4A5568",
			Accent: "#3182CE", Text: "#2D3748", Border: "#CBD5E0",
		}
		s.Font = FontConfig{Name: "Segoe UI", Size: 11}
	default: // modern
		s.Theme = ThemeModern
		s.Colors = ColorScheme{
			Background: "#FFFFFF", Primary: "#007ACC", Secondary: "#6C757D",
			Accent: "#28A745", Text: "#212529", Border: "#DEE2E6",
		}
	}

	s.Colors.LayerColors = defaultLayerColors()
	return s
}

// Skinparams renders the styling as skinparam directive lines.
func (s Styling) Skinparams() []string {
	var params []string

	params = append(params,
		"skinparam backgroundColor "+s.Colors.Background,
		"skinparam defaultFontName "+s.Font.Name,
		fmt.Sprintf("skinparam defaultFontSize %d", s.Font.Size),
		"skinparam defaultFontColor "+s.Colors.Text,
	)

	params = append(params, "skinparam component {")
	params = append(params,
		fmt.Sprintf("  borderThickness %d", s.Component.BorderThickness),
		"  borderColor "+s.Component.BorderColor,
		"  backgroundColor "+s.Component.BackgroundColor,
		fmt.Sprintf("  fontSize %d", s.Component.FontSize),
		"  fontStyle "+s.Component.FontStyle,
	)
	if s.Component.Rounded {
		params = append(params, "  roundCorner 10")
	}
	if s.ShowShadows {
		params = append(params, "  shadowing true")
	}
	params = append(params, "}")

	for _, layer := range sortedLayerNames(s.Colors.LayerColors) {
		color := s.Colors.LayerColors[layer]
		params = append(params,
			fmt.Sprintf("skinparam component<<%s>> {", layer),
			"  backgroundColor "+color,
			"  borderColor "+color+"DD",
			"}",
		)
	}

	if s.ShowBorders {
		params = append(params, "skinparam componentBorderThickness 2")
	} else {
		params = append(params, "skinparam componentBorderThickness 0")
	}

	params = append(params,
		"skinparam note {",
		"  backgroundColor "+s.Colors.Secondary+"10",
		"  borderColor "+s.Colors.Secondary,
		"  fontColor "+s.Colors.Text,
		"}",
		"skinparam legend {",
		"  backgroundColor "+s.Colors.Background,
		"  borderColor "+s.Colors.Border,
		"  fontColor "+s.Colors.Text,
		"}",
		"skinparam interface {",
		"  backgroundColor "+s.Colors.Accent,
		"  borderColor "+s.Colors.Primary,
		"}",
		"skinparam package {",
		"  backgroundColor "+s.Colors.Secondary+"20",
		"  borderColor "+s.Colors.Secondary,
		"}",
		"skinparam node {",
		"  backgroundColor "+s.Colors.Primary+"15",
		"  borderColor "+s.Colors.Primary,
		"}",
		"skinparam arrow {",
		fmt.Sprintf("  thickness %d", s.Component.BorderThickness),
		"  color "+s.Colors.Primary,
		"}",
	)

	spacing, ok := spacingPresets[s.Spacing]
	if !ok {
		spacing = spacingPresets["normal"]
	}
	params = append(params,
		fmt.Sprintf("skinparam nodesep %d", spacing.nodesep),
		fmt.Sprintf("skinparam ranksep %d", spacing.ranksep),
	)

	for _, layer := range sortedLayerNames(s.Colors.LayerColors) {
		color := s.Colors.LayerColors[layer]
		lower := lowerFirst(layer)
		params = append(params,
			fmt.Sprintf("skinparam %sBackgroundColor %s", lower, color),
			fmt.Sprintf("skinparam %sBorderColor %sDD", lower, color),
		)
	}

	switch s.Theme {
	case ThemeDark:
		params = append(params,
			"skinparam backgroundColor #2D3748",
			"skinparam defaultFontColor #E2E8F0",
			"!define LIGHT_BG #4A5568",
			"!define LIGHT_BORDER #718096",
		)
	case ThemeColorful:
		params = append(params,
			"!define BRIGHT_BLUE #00BFFF",
			"!define BRIGHT_GREEN #32CD32",
			"!define BRIGHT_ORANGE #FF8C00",
			"!define BRIGHT_PURPLE #DA70D6",
		)
	case ThemeMinimal:
		params = append(params,
			"hide stereotype",
			"skinparam shadowing false",
			"skinparam borderThickness 1",
		)
	case ThemeProfessional:
		params = append(params,
			"skinparam shadowing true",
			"skinparam roundCorner 5",
		)
	}

	return params
}

// sortedLayerNames keeps skinparam output deterministic across runs.
func sortedLayerNames(colors map[string]string) []string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
