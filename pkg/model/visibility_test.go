package model

import "testing"

func TestVisibilityPrecedence(t *testing.T) {
	// Removed always beats hidden.
	v := NewVisibility()
	v.HideElements("a")
	v.RemoveElements("a")

	e := &Element{ID: "a", Name: "A"}
	if !v.Excluded(e) {
		t.Error("Excluded() = false for removed element, want true")
	}
}

func TestVisibilityTags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Visibility)
		element  *Element
		excluded bool
		hidden   bool
	}{
		{
			name:     "untouched element is visible",
			setup:    func(v *Visibility) {},
			element:  &Element{ID: "a", Name: "A", Tags: []string{"web"}},
			excluded: false,
			hidden:   false,
		},
		{
			name:     "removed tag excludes",
			setup:    func(v *Visibility) { v.RemoveTags("web") },
			element:  &Element{ID: "a", Name: "A", Tags: []string{"web"}},
			excluded: true,
		},
		{
			name:     "hidden tag hides",
			setup:    func(v *Visibility) { v.HideTags("web") },
			element:  &Element{ID: "a", Name: "A", Tags: []string{"web"}},
			excluded: false,
			hidden:   true,
		},
		{
			name:     "wildcard removes any tagged element",
			setup:    func(v *Visibility) { v.RemoveTags(TagWildcard) },
			element:  &Element{ID: "a", Name: "A", Tags: []string{"anything"}},
			excluded: true,
		},
		{
			name:     "wildcard spares untagged elements",
			setup:    func(v *Visibility) { v.RemoveTags(TagWildcard) },
			element:  &Element{ID: "a", Name: "A"},
			excluded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVisibility()
			tt.setup(v)
			if got := v.Excluded(tt.element); got != tt.excluded {
				t.Errorf("Excluded() = %v, want %v", got, tt.excluded)
			}
			if !tt.excluded {
				if got := v.Hidden(tt.element); got != tt.hidden {
					t.Errorf("Hidden() = %v, want %v", got, tt.hidden)
				}
			}
		})
	}
}

func TestVisibilitySpriteNameConvention(t *testing.T) {
	v := NewVisibility()

	// An unaliased marker name (name starts with "$", id equals name) is
	// always excluded, with no rules configured at all.
	marker := &Element{ID: "$sprite", Name: "$sprite"}
	if !v.Excluded(marker) {
		t.Error("Excluded($sprite/$sprite) = false, want true")
	}

	// Same name under a different id renders normally.
	aliased := &Element{ID: "icon_db", Name: "$sprite"}
	if v.Excluded(aliased) {
		t.Error("Excluded(icon_db/$sprite) = true, want false")
	}
}

func TestVisibilityWildcardThenRestore(t *testing.T) {
	// Remove everything tagged, then selectively restore one tag: only
	// its carriers reappear.
	v := NewVisibility()
	v.RemoveTags(TagWildcard)
	v.RestoreTags("$keep")

	kept := &Element{ID: "a", Name: "A", Tags: []string{"$keep"}}
	dropped := &Element{ID: "b", Name: "B", Tags: []string{"other"}}
	untagged := &Element{ID: "c", Name: "C"}

	if v.Excluded(kept) {
		t.Error("restored tag carrier should be visible again")
	}
	if !v.Excluded(dropped) {
		t.Error("element with unrestored tag should remain excluded")
	}
	if v.Excluded(untagged) {
		t.Error("untagged element was never captured by the wildcard")
	}

	// An explicit removal of the restored tag re-captures its carriers.
	v.RemoveTags("$keep")
	if !v.Excluded(kept) {
		t.Error("re-removed tag carrier should be excluded again")
	}
}

func TestVisibilityRestoreIsSetDifferenceOnly(t *testing.T) {
	// Restoring one tag never edits an element's own tag list: a second
	// still-active tag keeps the element excluded.
	v := NewVisibility()
	v.RemoveTags("web", "legacy")
	v.RestoreTags("web")

	both := &Element{ID: "a", Name: "A", Tags: []string{"web", "legacy"}}
	webOnly := &Element{ID: "b", Name: "B", Tags: []string{"web"}}

	if !v.Excluded(both) {
		t.Error("element with a still-removed tag should remain excluded")
	}
	if v.Excluded(webOnly) {
		t.Error("element whose only removed tag was restored should be visible")
	}
}

func TestVisibilityRestoreElements(t *testing.T) {
	v := NewVisibility()
	v.HideElements("a")
	v.RemoveElements("a")
	v.RestoreElements("a")

	e := &Element{ID: "a", Name: "A", Tags: []string{"web"}}
	if v.Excluded(e) || v.Hidden(e) {
		t.Error("restored element should be fully visible")
	}

	// A still-active tag rule re-captures the element.
	v.HideTags("web")
	if !v.Hidden(e) {
		t.Error("restored element should re-enter hidden state via active tag")
	}
}

func TestUnlinkedHelpers(t *testing.T) {
	d := New("test")
	_ = d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness))
	_ = d.AddElement(newElement("b", "B", "Business_Service", LayerBusiness))
	_ = d.AddElement(newElement("island", "Island", "Node", LayerTechnology))
	_ = d.AddRelationship(&Relationship{ID: "r", Source: "a", Target: "b", Type: RelServing})

	d.HideUnlinked()
	island, _ := d.Element("island")
	linked, _ := d.Element("a")
	if !d.Visibility().Hidden(island) {
		t.Error("unlinked element should be hidden")
	}
	if d.Visibility().Hidden(linked) {
		t.Error("linked element should stay visible")
	}

	d.RemoveUnlinked()
	if !d.Visibility().Excluded(island) {
		t.Error("unlinked element should be excluded after RemoveUnlinked")
	}
}
