package model

// Note is an annotation attached to an element.
type Note struct {
	Content         string
	Position        NotePosition // ignored when Floating
	Floating        bool
	BackgroundColor string
	BorderColor     string
}

// Port is a component port with an optional interface type.
type Port struct {
	ID            string
	Name          string
	Direction     PortDirection
	InterfaceType string
	Description   string
}

// Interface is a named component interface.
type Interface struct {
	ID          string
	Name        string
	Symbol      string // defaults to "()" when empty
	Description string
}

// Sprite is a custom icon definition emitted once per distinct name.
type Sprite struct {
	Name       string
	Definition string
}

// Element is a single node in the diagram. Elements are immutable after
// being added to a Diagram; the populate phase builds them fully before
// AddElement.
type Element struct {
	ID          string
	Name        string
	Type        string // canonical element type, e.g. "Business_Actor"
	Layer       Layer
	Aspect      Aspect
	Description string
	Stereotype  string
	Color       string
	Tags        []string

	// Component diagram features
	Grouping    GroupingStyle
	Notes       []Note
	Ports       []Port
	Interfaces  []Interface
	Sprite      *Sprite
	AsComponent bool
}

// HasTag reports whether the element carries the given tag.
func (e *Element) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tagged reports whether the element carries any tag at all.
func (e *Element) Tagged() bool {
	return len(e.Tags) > 0
}

// EffectiveAspect returns the element's aspect, using the catalog default
// when the field was left unset.
func (e *Element) EffectiveAspect() Aspect {
	if e.Aspect.Valid() {
		return e.Aspect
	}
	return DefaultAspect(e.Type)
}
