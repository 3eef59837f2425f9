// Package plantuml renders a diagram into PlantUML ArchiMate notation.
//
// Output is assembled line by line in a fixed order: header pragmas,
// skinparams, sprites, title and description, direction, layout pragmas,
// the element section, hide directives, relationships, data blocks and
// the legend. Visibility rules are applied before anything is emitted:
// excluded elements (and relationships touching them) never appear,
// hidden elements appear followed by a hide directive.
package plantuml

import (
	"fmt"
	"strings"

	"github.com/archigen/archigen/pkg/arrow"
	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/i18n"
	"github.com/archigen/archigen/pkg/model"
)

// Renderer emits PlantUML notation for diagrams. The zero value renders
// with the built-in English translator.
type Renderer struct {
	translator i18n.Translator
}

// NewRenderer creates a Renderer. A nil translator selects English.
func NewRenderer(tr i18n.Translator) *Renderer {
	if tr == nil {
		tr = i18n.English()
	}
	return &Renderer{translator: tr}
}

// Render produces the complete PlantUML document for the diagram.
func (rd *Renderer) Render(d *model.Diagram, opts Options) (string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", err
	}
	if d.ElementCount() == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "no elements defined for diagram generation")
	}

	visible, hidden := rd.partition(d)
	if len(visible) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "all elements are removed from the diagram")
	}

	var lines []string
	lines = append(lines, "@startuml", "!pragma charset UTF-8", "!include <archimate/Archimate>", "")

	if len(opts.DataBlocks) > 0 {
		lines = append(lines, "allowmixing", "")
	}

	if opts.EnableStyling {
		styling := Preset(opts.Theme)
		styling.Spacing = opts.Spacing
		lines = append(lines, styling.Skinparams()...)
		lines = append(lines, "")
	}

	lines = append(lines, "skinparam componentStyle "+opts.ComponentStyle, "")

	if sprites := spriteLines(visible); len(sprites) > 0 {
		lines = append(lines, sprites...)
		lines = append(lines, "")
	}

	if opts.ShowTitle && d.Name != "" {
		lines = append(lines, "title "+d.Name, "")
	}
	if d.Description != "" {
		lines = append(lines, "' Description: "+d.Description, "")
	}

	switch opts.Direction {
	case DirectionVertical:
		lines = append(lines, "top to bottom direction")
	case DirectionHorizontal:
		lines = append(lines, "left to right direction")
	}

	if opts.LayoutEngine != "default" {
		lines = append(lines, "!pragma layout "+opts.LayoutEngine)
	}
	if opts.Concentrate {
		lines = append(lines, "skinparam concentrate true")
	}
	if opts.NodeSep != 0.25 {
		lines = append(lines, fmt.Sprintf("skinparam nodesep %g", opts.NodeSep))
	}
	if opts.RankSep != 0.5 {
		lines = append(lines, fmt.Sprintf("skinparam ranksep %g", opts.RankSep))
	}
	lines = append(lines, "")

	if opts.GroupByLayer || opts.Hierarchical {
		lines = append(lines, rd.groupedElements(visible, opts)...)
	} else {
		lines = append(lines, rd.flatElements(visible, opts)...)
	}

	if len(hidden) > 0 {
		for _, e := range hidden {
			lines = append(lines, "hide "+e.ID)
		}
	}

	lines = append(lines, "")

	if rels := rd.relationshipLines(d, opts); len(rels) > 0 {
		lines = append(lines, rels...)
	}

	for _, block := range opts.DataBlocks {
		lines = append(lines, "", fmt.Sprintf("json %q {", block.Name))
		lines = append(lines, strings.Split(block.JSON, "\n")...)
		lines = append(lines, "}")
	}

	if opts.ShowLegend {
		lines = append(lines, "")
		lines = append(lines, rd.legendLines(visible)...)
	}

	lines = append(lines, "", "@enduml")
	return strings.Join(lines, "\n"), nil
}

// partition splits the diagram's elements into the emitted set and the
// subset of those that additionally get a hide directive.
func (rd *Renderer) partition(d *model.Diagram) (visible, hidden []*model.Element) {
	vis := d.Visibility()
	for _, e := range d.Elements() {
		if vis.Excluded(e) {
			continue
		}
		visible = append(visible, e)
		if vis.Hidden(e) {
			hidden = append(hidden, e)
		}
	}
	return visible, hidden
}

// spriteLines collects custom sprite definitions, de-duplicated by name
// in first-seen order.
func spriteLines(elements []*model.Element) []string {
	var lines []string
	seen := make(map[string]bool)
	for _, e := range elements {
		if e.Sprite == nil || seen[e.Sprite.Name] {
			continue
		}
		seen[e.Sprite.Name] = true
		lines = append(lines, fmt.Sprintf("sprite $%s %s", e.Sprite.Name, e.Sprite.Definition))
	}
	return lines
}

func (rd *Renderer) flatElements(visible []*model.Element, opts Options) []string {
	lines := []string{"' Elements"}
	for _, e := range visible {
		lines = append(lines, elementLines(e, opts)...)
	}
	return lines
}

// groupedElements renders the element section wrapped in layer
// containers. With exactly one layer present a comment header replaces
// the container; hierarchical mode nests aspect packages inside each
// layer package.
func (rd *Renderer) groupedElements(visible []*model.Element, opts Options) []string {
	buckets := make(map[model.Layer][]*model.Element)
	for _, e := range visible {
		buckets[e.Layer] = append(buckets[e.Layer], e)
	}
	var layers []model.Layer
	for _, l := range model.LayerOrder() {
		if len(buckets[l]) > 0 {
			layers = append(layers, l)
		}
	}

	var lines []string

	if opts.Hierarchical {
		for _, layer := range layers {
			lines = append(lines, fmt.Sprintf("package %q {", rd.translator.Layer(string(layer))), "")
			lines = append(lines, rd.aspectGroups(buckets[layer], opts)...)
			lines = append(lines, "}", "")
		}
		return lines
	}

	if len(layers) == 1 {
		layer := layers[0]
		lines = append(lines, "' "+rd.translator.Layer(string(layer)))
		for _, e := range buckets[layer] {
			lines = append(lines, elementLines(e, opts)...)
		}
		lines = append(lines, "")
		return lines
	}

	for _, layer := range layers {
		lines = append(lines, fmt.Sprintf("package %q {", rd.translator.Layer(string(layer))))
		for _, e := range buckets[layer] {
			for _, line := range elementLines(e, opts) {
				lines = append(lines, "  "+line)
			}
		}
		lines = append(lines, "}", "")
	}
	return lines
}

var aspectOrder = []model.Aspect{
	model.AspectActiveStructure,
	model.AspectBehavior,
	model.AspectPassiveStructure,
}

func (rd *Renderer) aspectGroups(elements []*model.Element, opts Options) []string {
	if !opts.GroupByAspect {
		var lines []string
		for _, e := range elements {
			for _, line := range elementLines(e, opts) {
				lines = append(lines, "  "+line)
			}
		}
		return lines
	}

	groups := make(map[model.Aspect][]*model.Element)
	for _, e := range elements {
		groups[e.EffectiveAspect()] = append(groups[e.EffectiveAspect()], e)
	}

	var lines []string
	for _, aspect := range aspectOrder {
		members := groups[aspect]
		if len(members) == 0 && !opts.ShowEmptyGroups {
			continue
		}
		lines = append(lines, fmt.Sprintf("  package %q {", string(aspect)))
		for _, e := range members {
			for _, line := range elementLines(e, opts) {
				lines = append(lines, "    "+line)
			}
		}
		lines = append(lines, "  }", "")
	}
	return lines
}

// relationshipLines renders every relationship whose endpoints are both
// emitted. Labels fall back to the translated relationship type when
// labels are enabled.
func (rd *Renderer) relationshipLines(d *model.Diagram, opts Options) []string {
	vis := d.Visibility()
	var lines []string
	for _, r := range d.Relationships() {
		src, ok := d.Element(r.Source)
		if !ok || vis.Excluded(src) {
			continue
		}
		tgt, ok := d.Element(r.Target)
		if !ok || vis.Excluded(tgt) {
			continue
		}

		rr := *r
		if !opts.ShowRelationshipLabels {
			rr.Label = ""
		} else if rr.Label == "" {
			rr.Label = rd.translator.Relationship(string(r.Type))
		}
		lines = append(lines, arrow.Line(&rr))
	}
	if len(lines) == 0 {
		return nil
	}
	return append([]string{"' Relationships"}, lines...)
}

// legendLines lists the distinct layers of the emitted elements in
// canonical order.
func (rd *Renderer) legendLines(visible []*model.Element) []string {
	present := make(map[model.Layer]bool)
	for _, e := range visible {
		present[e.Layer] = true
	}

	lines := []string{"' Legend", "legend right"}
	for _, layer := range model.LayerOrder() {
		if present[layer] {
			lines = append(lines, "  "+rd.translator.Layer(string(layer)))
		}
	}
	return append(lines, "end legend")
}
