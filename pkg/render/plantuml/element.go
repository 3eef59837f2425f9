package plantuml

import (
	"fmt"
	"strings"

	"github.com/archigen/archigen/pkg/model"
)

// elementLines renders a single element with its grouping container,
// interfaces, ports and notes.
func elementLines(e *model.Element, opts Options) []string {
	var lines []string

	if e.Grouping != model.GroupNone {
		lines = append(lines, fmt.Sprintf("%s %q {", e.Grouping, e.Name))
	}

	if e.AsComponent {
		lines = append(lines, componentLine(e))
	} else {
		lines = append(lines, archimateLine(e, opts))
	}

	for _, iface := range e.Interfaces {
		symbol := iface.Symbol
		if symbol == "" {
			symbol = "()"
		}
		lines = append(lines, fmt.Sprintf("%s %q as %s", symbol, iface.Name, iface.ID))
	}

	for _, port := range e.Ports {
		lines = append(lines, portLine(port))
	}

	for _, note := range e.Notes {
		lines = append(lines, noteLines(e.ID, note)...)
	}

	if opts.ShowDocumentation && e.Description != "" && len(e.Notes) == 0 {
		doc := model.Note{Content: e.Description, Position: model.NoteBottom}
		lines = append(lines, noteLines(e.ID, doc)...)
	}

	if e.Grouping != model.GroupNone {
		lines = append(lines, "}")
	}

	return lines
}

// archimateLine renders the element through its ArchiMate macro:
// Macro(id, "Display Name" <<stereotype>>).
func archimateLine(e *model.Element, opts Options) string {
	display := e.Name
	if opts.ShowElementTypes {
		display = fmt.Sprintf("%s\\n<<%s>>", e.Name, e.Type)
	}

	stereotype := ""
	if e.Stereotype != "" {
		stereotype = fmt.Sprintf(" <<%s>>", e.Stereotype)
	}

	return fmt.Sprintf("%s(%s, %q%s)", Macro(e.Type, e.Layer), e.ID, display, stereotype)
}

// componentLine renders the element as a plain UML component box:
// [Name] #color <<stereotype>> as id.
func componentLine(e *model.Element) string {
	var b strings.Builder
	if e.Color != "" {
		fmt.Fprintf(&b, "[%s] #%s", e.Name, strings.TrimPrefix(e.Color, "#"))
	} else {
		fmt.Fprintf(&b, "[%s]", e.Name)
	}
	if e.Stereotype != "" {
		fmt.Fprintf(&b, " <<%s>>", e.Stereotype)
	}
	fmt.Fprintf(&b, " as %s", e.ID)
	return b.String()
}

func portLine(p model.Port) string {
	direction := p.Direction
	if direction == "" {
		direction = model.PortBoth
	}
	label := p.Name
	if p.InterfaceType != "" {
		label += fmt.Sprintf(" (%s)", p.InterfaceType)
	}
	if p.Description != "" {
		label += "\\n" + p.Description
	}
	return fmt.Sprintf("%s %s [[%s]]", direction, p.ID, label)
}

func noteLines(elementID string, n model.Note) []string {
	colorStyle := noteColorStyle(n)
	content := strings.Split(n.Content, "\n")
	position := n.Position
	if position == "" {
		position = model.NoteRight
	}

	if len(content) == 1 {
		if n.Floating {
			return []string{
				fmt.Sprintf("note%s as %s_note", colorStyle, elementID),
				n.Content,
				"end note",
			}
		}
		return []string{fmt.Sprintf("note%s %s of %s: %s", colorStyle, position, elementID, n.Content)}
	}

	var lines []string
	if n.Floating {
		lines = append(lines, fmt.Sprintf("note%s as %s_note", colorStyle, elementID))
	} else {
		lines = append(lines, fmt.Sprintf("note%s %s of %s", colorStyle, position, elementID))
	}
	lines = append(lines, content...)
	lines = append(lines, "end note")
	return lines
}

func noteColorStyle(n model.Note) string {
	var parts []string
	if n.BackgroundColor != "" {
		parts = append(parts, "#"+strings.TrimPrefix(n.BackgroundColor, "#"))
	}
	if n.BorderColor != "" {
		parts = append(parts, "line:"+n.BorderColor)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, ",")
}
