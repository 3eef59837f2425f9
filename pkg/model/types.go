// Package model implements the in-memory diagram model: typed elements
// organized into the seven ArchiMate layers, typed relationships between
// them, and the visibility state applied at render time.
//
// A Diagram serves exactly one generation request. Callers populate it
// through AddElement/AddRelationship, optionally adjust visibility, hand
// it to a renderer or exporter, and Clear it before reuse. Nothing in
// this package performs I/O.
package model

import (
	"github.com/archigen/archigen/pkg/errors"
)

// Layer is one of the seven ArchiMate 3.2 layers.
type Layer string

const (
	LayerBusiness       Layer = "Business"
	LayerApplication    Layer = "Application"
	LayerTechnology     Layer = "Technology"
	LayerPhysical       Layer = "Physical"
	LayerMotivation     Layer = "Motivation"
	LayerStrategy       Layer = "Strategy"
	LayerImplementation Layer = "Implementation"
)

// LayerOrder returns the canonical top-to-bottom layer ordering used for
// layout and legends. The order reflects decreasing abstraction and is
// deliberately not alphabetic.
func LayerOrder() []Layer {
	return []Layer{
		LayerMotivation,
		LayerStrategy,
		LayerBusiness,
		LayerApplication,
		LayerTechnology,
		LayerPhysical,
		LayerImplementation,
	}
}

// Valid reports whether l is one of the seven known layers.
func (l Layer) Valid() bool {
	switch l {
	case LayerBusiness, LayerApplication, LayerTechnology, LayerPhysical,
		LayerMotivation, LayerStrategy, LayerImplementation:
		return true
	}
	return false
}

// ParseLayer converts a string into a Layer, validating it.
func ParseLayer(s string) (Layer, error) {
	l := Layer(s)
	if !l.Valid() {
		return "", errors.New(errors.ErrCodeInvalidLayer, "unknown layer %q", s)
	}
	return l, nil
}

// Aspect is the cross-cutting ArchiMate classification orthogonal to Layer.
type Aspect string

const (
	AspectActiveStructure  Aspect = "Active Structure"
	AspectPassiveStructure Aspect = "Passive Structure"
	AspectBehavior         Aspect = "Behavior"
)

// Valid reports whether a is a known aspect.
func (a Aspect) Valid() bool {
	switch a {
	case AspectActiveStructure, AspectPassiveStructure, AspectBehavior:
		return true
	}
	return false
}

// RelationshipType is one of the eleven canonical ArchiMate relationship
// types.
type RelationshipType string

const (
	RelAccess         RelationshipType = "Access"
	RelAggregation    RelationshipType = "Aggregation"
	RelAssignment     RelationshipType = "Assignment"
	RelAssociation    RelationshipType = "Association"
	RelComposition    RelationshipType = "Composition"
	RelFlow           RelationshipType = "Flow"
	RelInfluence      RelationshipType = "Influence"
	RelRealization    RelationshipType = "Realization"
	RelServing        RelationshipType = "Serving"
	RelSpecialization RelationshipType = "Specialization"
	RelTriggering     RelationshipType = "Triggering"
)

// RelationshipTypes lists all canonical relationship types.
func RelationshipTypes() []RelationshipType {
	return []RelationshipType{
		RelAccess, RelAggregation, RelAssignment, RelAssociation,
		RelComposition, RelFlow, RelInfluence, RelRealization,
		RelServing, RelSpecialization, RelTriggering,
	}
}

// Valid reports whether t is a canonical relationship type.
func (t RelationshipType) Valid() bool {
	switch t {
	case RelAccess, RelAggregation, RelAssignment, RelAssociation,
		RelComposition, RelFlow, RelInfluence, RelRealization,
		RelServing, RelSpecialization, RelTriggering:
		return true
	}
	return false
}

// LineStyle selects the stroke of a relationship line.
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
	LineDotted LineStyle = "dotted"
)

// Orientation adjusts how a relationship's arrow segment is drawn.
type Orientation string

const (
	OrientVertical   Orientation = "vertical"
	OrientHorizontal Orientation = "horizontal"
	OrientDot        Orientation = "dot"
)

// Direction is an 8-way compass hint inserted into a relationship arrow.
type Direction string

const (
	DirNone      Direction = ""
	DirUp        Direction = "up"
	DirDown      Direction = "down"
	DirLeft      Direction = "left"
	DirRight     Direction = "right"
	DirUpLeft    Direction = "upleft"
	DirUpRight   Direction = "upright"
	DirDownLeft  Direction = "downleft"
	DirDownRight Direction = "downright"
)

// Valid reports whether d is empty or one of the eight compass words.
func (d Direction) Valid() bool {
	switch d {
	case DirNone, DirUp, DirDown, DirLeft, DirRight,
		DirUpLeft, DirUpRight, DirDownLeft, DirDownRight:
		return true
	}
	return false
}

// GroupingStyle names the container keyword wrapping an element.
type GroupingStyle string

const (
	GroupNone      GroupingStyle = ""
	GroupPackage   GroupingStyle = "package"
	GroupNode      GroupingStyle = "node"
	GroupFolder    GroupingStyle = "folder"
	GroupFrame     GroupingStyle = "frame"
	GroupCloud     GroupingStyle = "cloud"
	GroupDatabase  GroupingStyle = "database"
	GroupRectangle GroupingStyle = "rectangle"
)

// NotePosition places a note relative to its element.
type NotePosition string

const (
	NoteTop    NotePosition = "top"
	NoteBottom NotePosition = "bottom"
	NoteLeft   NotePosition = "left"
	NoteRight  NotePosition = "right"
)

// PortDirection selects the port keyword for a component port.
type PortDirection string

const (
	PortIn   PortDirection = "portin"
	PortOut  PortDirection = "portout"
	PortBoth PortDirection = "port"
)
