package model

import "strings"

// TagWildcard in the removed-tags set matches every tagged element,
// enabling "remove all, then selectively restore" workflows.
const TagWildcard = "*"

// Visibility holds four independent sets over element ids and tags.
// Precedence is fixed: removed beats hidden beats visible. A removed
// element is excluded from output entirely; a hidden element is emitted
// followed by a hide directive.
type Visibility struct {
	hiddenElements  map[string]bool
	removedElements map[string]bool
	hiddenTags      map[string]bool
	removedTags     map[string]bool

	// restoredTags exempts carriers of a tag from the wildcard after a
	// "remove all, restore some" sequence. A direct tag match in
	// removedTags still wins over an exemption.
	restoredTags map[string]bool
}

// NewVisibility creates an empty visibility state: everything visible.
func NewVisibility() *Visibility {
	return &Visibility{
		hiddenElements:  make(map[string]bool),
		removedElements: make(map[string]bool),
		hiddenTags:      make(map[string]bool),
		removedTags:     make(map[string]bool),
		restoredTags:    make(map[string]bool),
	}
}

// HideElements marks element ids as hidden.
func (v *Visibility) HideElements(ids ...string) {
	for _, id := range ids {
		v.hiddenElements[id] = true
	}
}

// RemoveElements marks element ids as removed.
func (v *Visibility) RemoveElements(ids ...string) {
	for _, id := range ids {
		v.removedElements[id] = true
	}
}

// HideTags marks tags as hidden.
func (v *Visibility) HideTags(tags ...string) {
	for _, tag := range tags {
		v.hiddenTags[tag] = true
	}
}

// RemoveTags marks tags as removed. The literal tag "*" removes every
// tagged element.
func (v *Visibility) RemoveTags(tags ...string) {
	for _, tag := range tags {
		v.removedTags[tag] = true
		delete(v.restoredTags, tag)
	}
}

// RestoreElements clears ids from both the hidden and removed element
// sets. It performs set difference only; an element can still be hidden
// or removed through a matching tag.
func (v *Visibility) RestoreElements(ids ...string) {
	for _, id := range ids {
		delete(v.hiddenElements, id)
		delete(v.removedElements, id)
	}
}

// RestoreTags clears tags from both the hidden and removed tag sets and
// exempts their carriers from an active wildcard. An element stays
// excluded if a different still-active tag matches it.
func (v *Visibility) RestoreTags(tags ...string) {
	for _, tag := range tags {
		delete(v.hiddenTags, tag)
		delete(v.removedTags, tag)
		v.restoredTags[tag] = true
	}
}

// Excluded reports whether the element is removed from output entirely.
// An element is excluded if its id is in the removed set, any of its tags
// is in the removed-tags set, the wildcard is active and the element
// carries any tag, or its name begins with "$" while its id equals its
// name. The last rule reserves unaliased sprite-style marker names that
// would collide with the target notation.
func (v *Visibility) Excluded(e *Element) bool {
	if v.removedElements[e.ID] {
		return true
	}
	if len(v.removedTags) > 0 && e.Tagged() {
		for _, tag := range e.Tags {
			if v.removedTags[tag] {
				return true
			}
		}
		if v.removedTags[TagWildcard] && !v.exempted(e) {
			return true
		}
	}
	if strings.HasPrefix(e.Name, "$") && e.ID == e.Name {
		return true
	}
	return false
}

// exempted reports whether any of the element's tags was explicitly
// restored, lifting the wildcard for that element.
func (v *Visibility) exempted(e *Element) bool {
	for _, tag := range e.Tags {
		if v.restoredTags[tag] {
			return true
		}
	}
	return false
}

// Hidden reports whether a non-excluded element should be emitted with a
// hide directive. Callers must check Excluded first; precedence between
// the two is fixed and not configurable.
func (v *Visibility) Hidden(e *Element) bool {
	if v.hiddenElements[e.ID] {
		return true
	}
	for _, tag := range e.Tags {
		if v.hiddenTags[tag] {
			return true
		}
	}
	return false
}

// HideUnlinked hides every element that participates in no relationship.
func (d *Diagram) HideUnlinked() {
	for _, id := range d.unlinkedIDs() {
		d.visibility.HideElements(id)
	}
}

// RemoveUnlinked removes every element that participates in no
// relationship.
func (d *Diagram) RemoveUnlinked() {
	for _, id := range d.unlinkedIDs() {
		d.visibility.RemoveElements(id)
	}
}

func (d *Diagram) unlinkedIDs() []string {
	linked := make(map[string]bool, len(d.elements))
	for _, r := range d.rels {
		linked[r.Source] = true
		linked[r.Target] = true
	}
	var ids []string
	for _, e := range d.elements {
		if !linked[e.ID] {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
