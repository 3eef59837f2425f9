package io

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

// Element is the wire form of a diagram element.
type Element struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ElementType string   `json:"element_type"`
	Layer       string   `json:"layer,omitempty"`
	Aspect      string   `json:"aspect,omitempty"`
	Description string   `json:"description,omitempty"`
	Stereotype  string   `json:"stereotype,omitempty"`
	Color       string   `json:"color,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Relationship is the wire form of a relationship.
type Relationship struct {
	ID               string `json:"id"`
	FromElement      string `json:"from_element"`
	ToElement        string `json:"to_element"`
	RelationshipType string `json:"relationship_type"`
	Direction        string `json:"direction,omitempty"`
	Label            string `json:"label,omitempty"`
	LineStyle        string `json:"line_style,omitempty"`
	Color            string `json:"color,omitempty"`
}

// Document is the serialized form of a diagram.
type Document struct {
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships,omitempty"`

	// Visibility controls applied after construction.
	HideElements   []string `json:"hide_elements,omitempty"`
	RemoveElements []string `json:"remove_elements,omitempty"`
	HideTags       []string `json:"hide_tags,omitempty"`
	RemoveTags     []string `json:"remove_tags,omitempty"`
	RestoreTags    []string `json:"restore_tags,omitempty"`
	HideUnlinked   bool     `json:"hide_unlinked,omitempty"`
	RemoveUnlinked bool     `json:"remove_unlinked,omitempty"`
}

// Diagram builds the in-memory diagram described by the document,
// failing on the first structural problem.
func (doc *Document) Diagram() (*model.Diagram, error) {
	if len(doc.Elements) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document contains no elements")
	}

	d := model.New(doc.Title)
	d.Description = doc.Description

	for _, in := range doc.Elements {
		layer := model.Layer(in.Layer)
		if in.Layer == "" {
			if catalogLayer, ok := model.ElementTypeLayer(in.ElementType); ok {
				layer = catalogLayer
			} else {
				layer = model.LayerBusiness
			}
		}
		e := &model.Element{
			ID:          in.ID,
			Name:        in.Name,
			Type:        in.ElementType,
			Layer:       layer,
			Aspect:      model.Aspect(in.Aspect),
			Description: in.Description,
			Stereotype:  in.Stereotype,
			Color:       in.Color,
			Tags:        in.Tags,
		}
		if err := d.AddElement(e); err != nil {
			return nil, err
		}
	}

	for _, in := range doc.Relationships {
		// Direction and line style values are lowercase internally;
		// accept any casing on the wire.
		r := &model.Relationship{
			ID:        in.ID,
			Source:    in.FromElement,
			Target:    in.ToElement,
			Type:      model.RelationshipType(in.RelationshipType),
			Direction: model.Direction(strings.ToLower(in.Direction)),
			Label:     in.Label,
			LineStyle: model.LineStyle(strings.ToLower(in.LineStyle)),
			Color:     in.Color,
		}
		if err := d.AddRelationship(r); err != nil {
			return nil, err
		}
	}

	vis := d.Visibility()
	vis.HideElements(doc.HideElements...)
	vis.RemoveElements(doc.RemoveElements...)
	vis.HideTags(doc.HideTags...)
	vis.RemoveTags(doc.RemoveTags...)
	vis.RestoreTags(doc.RestoreTags...)
	if doc.HideUnlinked {
		d.HideUnlinked()
	}
	if doc.RemoveUnlinked {
		d.RemoveUnlinked()
	}

	return d, nil
}

// ReadJSON decodes a document from r. It does not close r, and it does
// not build the diagram; call [Document.Diagram] for that.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed document")
	}
	return &doc, nil
}

// ImportJSON reads the document file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
