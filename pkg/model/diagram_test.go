package model

import (
	"testing"

	"github.com/archigen/archigen/pkg/errors"
)

func newElement(id, name, typ string, layer Layer) *Element {
	return &Element{ID: id, Name: name, Type: typ, Layer: layer}
}

func TestAddElement(t *testing.T) {
	d := New("test")

	if err := d.AddElement(newElement("web", "Web App", "Application_Component", LayerApplication)); err != nil {
		t.Fatalf("AddElement() error = %v", err)
	}
	if d.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, want 1", d.ElementCount())
	}

	// Duplicate id must be rejected without mutating state.
	err := d.AddElement(newElement("web", "Another", "Application_Component", LayerApplication))
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("AddElement(duplicate) code = %v, want %v", errors.GetCode(err), errors.ErrCodeDuplicateID)
	}
	if d.ElementCount() != 1 {
		t.Errorf("ElementCount() after duplicate = %d, want 1", d.ElementCount())
	}

	e, ok := d.Element("web")
	if !ok || e.Name != "Web App" {
		t.Errorf("Element(web) = %v, %v; want original element", e, ok)
	}
}

func TestAddElementPreservesInsertionOrder(t *testing.T) {
	d := New("test")
	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		if err := d.AddElement(newElement(id, id, "Node", LayerTechnology)); err != nil {
			t.Fatalf("AddElement(%s) error = %v", id, err)
		}
	}

	for i, e := range d.Elements() {
		if e.ID != ids[i] {
			t.Errorf("Elements()[%d] = %q, want %q", i, e.ID, ids[i])
		}
	}
}

func TestAddRelationship(t *testing.T) {
	d := New("test")
	if err := d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness)); err != nil {
		t.Fatal(err)
	}
	if err := d.AddElement(newElement("b", "B", "Business_Service", LayerBusiness)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		rel     *Relationship
		wantErr bool
	}{
		{"both endpoints exist", &Relationship{ID: "r1", Source: "a", Target: "b", Type: RelServing}, false},
		{"missing source", &Relationship{ID: "r2", Source: "ghost", Target: "b", Type: RelServing}, true},
		{"missing target", &Relationship{ID: "r3", Source: "a", Target: "ghost", Type: RelServing}, true},
		{"both missing", &Relationship{ID: "r4", Source: "x", Target: "y", Type: RelServing}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := d.RelationshipCount()
			err := d.AddRelationship(tt.rel)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddRelationship() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeDangling) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeDangling)
				}
				if d.RelationshipCount() != before {
					t.Errorf("RelationshipCount() changed on failed add: %d -> %d", before, d.RelationshipCount())
				}
			}
		})
	}
}

func TestAddRelationshipErrorNamesFailingSides(t *testing.T) {
	d := New("test")
	if err := d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness)); err != nil {
		t.Fatal(err)
	}

	err := d.AddRelationship(&Relationship{ID: "r", Source: "missing_src", Target: "missing_tgt", Type: RelFlow})
	if err == nil {
		t.Fatal("AddRelationship() error = nil, want dangling reference")
	}
	msg := err.Error()
	for _, want := range []string{"missing_src", "missing_tgt"} {
		if !contains(msg, want) {
			t.Errorf("error %q does not name %q", msg, want)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		build      func() *Diagram
		violations int
	}{
		{
			name: "clean diagram",
			build: func() *Diagram {
				d := New("ok")
				_ = d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness))
				_ = d.AddElement(newElement("b", "B", "Business_Service", LayerBusiness))
				_ = d.AddRelationship(&Relationship{ID: "r", Source: "a", Target: "b", Type: RelServing})
				return d
			},
			violations: 0,
		},
		{
			name: "empty name",
			build: func() *Diagram {
				d := New("bad")
				_ = d.AddElement(newElement("a", "", "Business_Actor", LayerBusiness))
				return d
			},
			violations: 1,
		},
		{
			name: "malformed id",
			build: func() *Diagram {
				d := New("bad")
				_ = d.AddElement(newElement("bad-id", "Bad", "Business_Actor", LayerBusiness))
				return d
			},
			violations: 1,
		},
		{
			name: "unknown element type",
			build: func() *Diagram {
				d := New("bad")
				_ = d.AddElement(newElement("a", "A", "Quantum_Widget", LayerBusiness))
				return d
			},
			violations: 1,
		},
		{
			name: "self referential relationship",
			build: func() *Diagram {
				d := New("bad")
				_ = d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness))
				_ = d.AddRelationship(&Relationship{ID: "r", Source: "a", Target: "a", Type: RelAssociation})
				return d
			},
			violations: 1,
		},
		{
			name: "unknown relationship type",
			build: func() *Diagram {
				d := New("bad")
				_ = d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness))
				_ = d.AddElement(newElement("b", "B", "Business_Actor", LayerBusiness))
				_ = d.AddRelationship(&Relationship{ID: "r", Source: "a", Target: "b", Type: "Teleports"})
				return d
			},
			violations: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().Validate()
			if len(got) != tt.violations {
				t.Errorf("Validate() = %v (%d violations), want %d", got, len(got), tt.violations)
			}
		})
	}
}

func TestClear(t *testing.T) {
	d := New("test")
	_ = d.AddElement(newElement("a", "A", "Business_Actor", LayerBusiness))
	_ = d.AddElement(newElement("b", "B", "Business_Actor", LayerBusiness))
	_ = d.AddRelationship(&Relationship{ID: "r", Source: "a", Target: "b", Type: RelFlow})
	d.Visibility().HideElements("a")

	d.Clear()

	if d.ElementCount() != 0 || d.RelationshipCount() != 0 {
		t.Errorf("after Clear: %d elements, %d relationships, want 0, 0", d.ElementCount(), d.RelationshipCount())
	}
	if _, ok := d.Element("a"); ok {
		t.Error("Element(a) still resolvable after Clear")
	}

	// Prior ids are reusable after a clear.
	if err := d.AddElement(newElement("a", "Fresh", "Node", LayerTechnology)); err != nil {
		t.Errorf("AddElement after Clear error = %v", err)
	}
	if d.Visibility().Hidden(&Element{ID: "a"}) {
		t.Error("visibility state survived Clear")
	}
}

func TestLayersCanonicalOrder(t *testing.T) {
	d := New("test")
	// Insert in reverse canonical order to prove sorting is not insertion based.
	_ = d.AddElement(newElement("impl", "I", "Work_Package", LayerImplementation))
	_ = d.AddElement(newElement("tech", "T", "Node", LayerTechnology))
	_ = d.AddElement(newElement("biz", "B", "Business_Actor", LayerBusiness))
	_ = d.AddElement(newElement("mot", "M", "Goal", LayerMotivation))

	got := d.Layers()
	want := []Layer{LayerMotivation, LayerBusiness, LayerTechnology, LayerImplementation}
	if len(got) != len(want) {
		t.Fatalf("Layers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Layers()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
