package model

// Relationship is a directed edge between two elements, referenced by id.
// Relationships never own their endpoints; resolution happens against the
// Diagram at add time and at render time.
type Relationship struct {
	ID     string
	Source string
	Target string
	Type   RelationshipType
	Label  string

	// Presentation hints consumed by the arrow composer.
	ArrowOverride string // replaces the type's base token entirely
	LineStyle     LineStyle
	Orientation   Orientation
	Direction     Direction
	Color         string
	Length        int // 1..5, 0 means unset
	Hidden        bool
}

// SelfReferential reports whether both endpoints name the same element.
func (r *Relationship) SelfReferential() bool {
	return r.Source == r.Target && r.Source != ""
}
