package model

import "testing"

func TestCatalogLayersAreValid(t *testing.T) {
	for _, typ := range ElementTypes() {
		layer, ok := ElementTypeLayer(typ)
		if !ok {
			t.Fatalf("ElementTypeLayer(%q) not found", typ)
		}
		if !layer.Valid() {
			t.Errorf("catalog type %q has invalid layer %q", typ, layer)
		}
		if !DefaultAspect(typ).Valid() {
			t.Errorf("catalog type %q has invalid aspect", typ)
		}
	}
}

func TestElementTypeLayer(t *testing.T) {
	tests := []struct {
		typ   string
		layer Layer
		known bool
	}{
		{"Business_Actor", LayerBusiness, true},
		{"Data_Object", LayerApplication, true},
		{"System_Software", LayerTechnology, true},
		{"Equipment", LayerPhysical, true},
		{"Stakeholder", LayerMotivation, true},
		{"Course_of_Action", LayerStrategy, true},
		{"Work_Package", LayerImplementation, true},
		{"Quantum_Widget", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			layer, ok := ElementTypeLayer(tt.typ)
			if ok != tt.known || layer != tt.layer {
				t.Errorf("ElementTypeLayer(%q) = %v, %v; want %v, %v", tt.typ, layer, ok, tt.layer, tt.known)
			}
		})
	}
}

func TestParseLayer(t *testing.T) {
	if _, err := ParseLayer("Business"); err != nil {
		t.Errorf("ParseLayer(Business) error = %v", err)
	}
	if _, err := ParseLayer("Cosmic"); err == nil {
		t.Error("ParseLayer(Cosmic) error = nil, want error")
	}
}

func TestEffectiveAspect(t *testing.T) {
	explicit := &Element{Type: "Business_Process", Aspect: AspectActiveStructure}
	if got := explicit.EffectiveAspect(); got != AspectActiveStructure {
		t.Errorf("EffectiveAspect() = %v, want explicit aspect honored", got)
	}

	inferred := &Element{Type: "Business_Process"}
	if got := inferred.EffectiveAspect(); got != AspectBehavior {
		t.Errorf("EffectiveAspect() = %v, want %v from catalog", got, AspectBehavior)
	}

	unknown := &Element{Type: "Quantum_Widget"}
	if got := unknown.EffectiveAspect(); got != AspectActiveStructure {
		t.Errorf("EffectiveAspect() = %v, want fallback %v", got, AspectActiveStructure)
	}
}
