package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

// FromDiagram captures a diagram back into its document form. Hidden
// and removed elements are recorded in the per-element visibility
// lists, so tag-based rules survive as their flattened effect.
func FromDiagram(d *model.Diagram) *Document {
	doc := &Document{
		Title:       d.Name,
		Description: d.Description,
	}

	vis := d.Visibility()
	for _, e := range d.Elements() {
		doc.Elements = append(doc.Elements, Element{
			ID:          e.ID,
			Name:        e.Name,
			ElementType: e.Type,
			Layer:       string(e.Layer),
			Aspect:      string(e.Aspect),
			Description: e.Description,
			Stereotype:  e.Stereotype,
			Color:       e.Color,
			Tags:        e.Tags,
		})
		switch {
		case vis.Excluded(e):
			doc.RemoveElements = append(doc.RemoveElements, e.ID)
		case vis.Hidden(e):
			doc.HideElements = append(doc.HideElements, e.ID)
		}
	}

	for _, r := range d.Relationships() {
		doc.Relationships = append(doc.Relationships, Relationship{
			ID:               r.ID,
			FromElement:      r.Source,
			ToElement:        r.Target,
			RelationshipType: string(r.Type),
			Direction:        string(r.Direction),
			Label:            r.Label,
			LineStyle:        string(r.LineStyle),
			Color:            r.Color,
		})
	}

	return doc
}

// WriteJSON encodes the document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}

// ExportJSON writes the document to the file at path, overwriting it
// if it exists.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
