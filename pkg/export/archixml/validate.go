package archixml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Validate inspects an exported document and returns advisory
// warnings. It never rejects a model: Archi tolerates far more than
// the ArchiMate schema admits, so findings here flag likely import
// problems instead of blocking the export.
func Validate(content []byte) []string {
	var warnings []string

	if !bytes.HasPrefix(bytes.TrimSpace(content), []byte("<?xml")) {
		warnings = append(warnings, "missing XML declaration")
	}

	dec := xml.NewDecoder(bytes.NewReader(content))

	var (
		rootSeen      bool
		viewsFolder   bool
		elementIDs    = map[string]bool{}
		relationships []relRef
	)

	depth := 0
	inRelations := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return append(warnings, fmt.Sprintf("malformed XML: %v", err))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1:
				rootSeen = true
				if t.Name.Local != "model" {
					warnings = append(warnings, fmt.Sprintf("unexpected root element %q, want model", t.Name.Local))
				}
			case depth == 2 && t.Name.Local == "folder":
				ft := attr(t, "type")
				inRelations = ft == "relations"
				if ft == "diagrams" {
					viewsFolder = true
				}
			case depth == 3 && t.Name.Local == "element":
				if inRelations {
					relationships = append(relationships, relRef{
						id:     attr(t, "id"),
						typ:    attr(t, "type"),
						source: attr(t, "source"),
						target: attr(t, "target"),
					})
				} else if id := attr(t, "id"); id != "" {
					elementIDs[id] = true
				}
			}
		case xml.EndElement:
			if depth == 2 {
				inRelations = false
			}
			depth--
		}
	}

	if !rootSeen {
		return append(warnings, "document contains no elements")
	}
	if !viewsFolder {
		warnings = append(warnings, "missing Views folder, diagram may not display in Archi")
	}

	for _, r := range relationships {
		if r.source == "" || r.target == "" {
			warnings = append(warnings, fmt.Sprintf("relationship %s: missing source or target", r.id))
			continue
		}
		if !elementIDs[r.source] {
			warnings = append(warnings, fmt.Sprintf("relationship %s: unknown source %s", r.id, r.source))
		}
		if !elementIDs[r.target] {
			warnings = append(warnings, fmt.Sprintf("relationship %s: unknown target %s", r.id, r.target))
		}
		if r.source == r.target {
			warnings = append(warnings, fmt.Sprintf("relationship %s: source and target are the same element", r.id))
		}
		if !strings.HasSuffix(r.typ, "Relationship") {
			warnings = append(warnings, fmt.Sprintf("relationship %s: unexpected type %q", r.id, r.typ))
		}
	}

	return warnings
}

type relRef struct {
	id     string
	typ    string
	source string
	target string
}

// attr returns the value of the named attribute, matching on the local
// name so namespace prefixes do not matter.
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
