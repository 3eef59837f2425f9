package model

import (
	"fmt"

	"github.com/archigen/archigen/pkg/errors"
)

// Diagram is the aggregate root: an insertion-ordered element collection,
// the relationships between elements, and the visibility state evaluated
// at render time.
//
// A Diagram is not safe for concurrent mutation. One instance serves one
// generation request; call Clear before reusing it.
type Diagram struct {
	Name        string
	Description string

	elements []*Element
	index    map[string]*Element
	rels     []*Relationship

	visibility *Visibility
}

// New creates an empty Diagram with the given display name.
func New(name string) *Diagram {
	return &Diagram{
		Name:       name,
		index:      make(map[string]*Element),
		visibility: NewVisibility(),
	}
}

// AddElement inserts an element, preserving insertion order. It fails
// with ErrCodeDuplicateID if the id is already present and leaves the
// diagram unchanged.
func (d *Diagram) AddElement(e *Element) error {
	if e == nil {
		return errors.New(errors.ErrCodeInvalidInput, "element cannot be nil")
	}
	if _, exists := d.index[e.ID]; exists {
		return errors.New(errors.ErrCodeDuplicateID, "element %q already exists", e.ID)
	}
	d.elements = append(d.elements, e)
	d.index[e.ID] = e
	return nil
}

// AddRelationship inserts a relationship after resolving both endpoints.
// If either endpoint is missing it fails with ErrCodeDangling naming the
// failing side(s), and the relationship list is unchanged.
func (d *Diagram) AddRelationship(r *Relationship) error {
	if r == nil {
		return errors.New(errors.ErrCodeInvalidInput, "relationship cannot be nil")
	}

	_, srcOK := d.index[r.Source]
	_, tgtOK := d.index[r.Target]
	switch {
	case !srcOK && !tgtOK:
		return errors.New(errors.ErrCodeDangling,
			"relationship %q references unknown source %q and unknown target %q", r.ID, r.Source, r.Target)
	case !srcOK:
		return errors.New(errors.ErrCodeDangling,
			"relationship %q references unknown source %q", r.ID, r.Source)
	case !tgtOK:
		return errors.New(errors.ErrCodeDangling,
			"relationship %q references unknown target %q", r.ID, r.Target)
	}

	d.rels = append(d.rels, r)
	return nil
}

// Element looks up an element by id.
func (d *Diagram) Element(id string) (*Element, bool) {
	e, ok := d.index[id]
	return e, ok
}

// Elements returns the elements in insertion order. The returned slice
// is shared; callers must not modify it.
func (d *Diagram) Elements() []*Element {
	return d.elements
}

// Relationships returns the relationships in insertion order. The
// returned slice is shared; callers must not modify it.
func (d *Diagram) Relationships() []*Relationship {
	return d.rels
}

// ElementCount returns the number of elements.
func (d *Diagram) ElementCount() int {
	return len(d.elements)
}

// RelationshipCount returns the number of relationships.
func (d *Diagram) RelationshipCount() int {
	return len(d.rels)
}

// Visibility returns the diagram's visibility state.
func (d *Diagram) Visibility() *Visibility {
	return d.visibility
}

// Layers returns the distinct layers present, in canonical order.
func (d *Diagram) Layers() []Layer {
	present := make(map[Layer]bool, len(d.elements))
	for _, e := range d.elements {
		present[e.Layer] = true
	}
	var layers []Layer
	for _, l := range LayerOrder() {
		if present[l] {
			layers = append(layers, l)
		}
	}
	return layers
}

// Validate returns a list of textual violations without failing. It is a
// pre-flight diagnostic distinct from the fail-fast mutators: callers may
// render a diagram that validates with warnings.
func (d *Diagram) Validate() []string {
	var violations []string

	for _, e := range d.elements {
		if e.ID == "" {
			violations = append(violations, fmt.Sprintf("element %q: id is required", e.Name))
		} else if err := errors.ValidateElementID(e.ID); err != nil {
			violations = append(violations, fmt.Sprintf("element %q: %s", e.ID, errors.UserMessage(err)))
		}
		if e.Name == "" {
			violations = append(violations, fmt.Sprintf("element %q: name is required", e.ID))
		}
		if !e.Layer.Valid() {
			violations = append(violations, fmt.Sprintf("element %q: unknown layer %q", e.ID, e.Layer))
		}
		if e.Type == "" {
			violations = append(violations, fmt.Sprintf("element %q: type is required", e.ID))
		} else if !KnownElementType(e.Type) {
			violations = append(violations, fmt.Sprintf("element %q: unknown element type %q", e.ID, e.Type))
		}
	}

	for _, r := range d.rels {
		if r.SelfReferential() {
			violations = append(violations, fmt.Sprintf("relationship %q: source and target are both %q", r.ID, r.Source))
		}
		if !r.Type.Valid() {
			violations = append(violations, fmt.Sprintf("relationship %q: unknown relationship type %q", r.ID, r.Type))
		}
		if !r.Direction.Valid() {
			violations = append(violations, fmt.Sprintf("relationship %q: unknown direction %q", r.ID, r.Direction))
		}
		if r.Length < 0 || r.Length > 5 {
			violations = append(violations, fmt.Sprintf("relationship %q: length %d out of range 1..5", r.ID, r.Length))
		}
	}

	return violations
}

// Clear removes all elements, relationships and visibility state,
// returning the diagram to its freshly constructed condition.
func (d *Diagram) Clear() {
	d.elements = nil
	d.rels = nil
	d.index = make(map[string]*Element)
	d.visibility = NewVisibility()
}
