// Package i18n provides display-string lookup for layers, element types
// and relationship types. Renderers consult a Translator for legend
// entries and fallback relationship labels; the model itself always
// stores canonical English type names.
package i18n

import "strings"

// Translator returns display strings for diagram vocabulary. Lookups
// never fail: unknown keys fall back to a readable form of the key.
type Translator interface {
	Layer(layer string) string
	Relationship(relType string) string
	Element(elementType string) string
}

// Dictionary is a plain lookup-table Translator.
type Dictionary struct {
	Layers        map[string]string `toml:"layers"`
	Relationships map[string]string `toml:"relationships"`
	Elements      map[string]string `toml:"elements"`
}

// Layer implements Translator.
func (d *Dictionary) Layer(layer string) string {
	if s, ok := d.Layers[layer]; ok {
		return s
	}
	return layer
}

// Relationship implements Translator.
func (d *Dictionary) Relationship(relType string) string {
	if s, ok := d.Relationships[relType]; ok {
		return s
	}
	return strings.ToLower(relType)
}

// Element implements Translator.
func (d *Dictionary) Element(elementType string) string {
	if s, ok := d.Elements[elementType]; ok {
		return s
	}
	return strings.ReplaceAll(elementType, "_", " ")
}

// English returns the built-in English dictionary.
func English() *Dictionary {
	return &Dictionary{
		Layers: map[string]string{
			"Business":       "Business Layer",
			"Application":    "Application Layer",
			"Technology":     "Technology Layer",
			"Physical":       "Physical Layer",
			"Motivation":     "Motivation Layer",
			"Strategy":       "Strategy Layer",
			"Implementation": "Implementation Layer",
		},
		Relationships: map[string]string{
			"Access":         "accesses",
			"Aggregation":    "aggregates",
			"Assignment":     "assigned to",
			"Association":    "associated with",
			"Composition":    "composed of",
			"Flow":           "flows to",
			"Influence":      "influences",
			"Realization":    "realizes",
			"Serving":        "serves",
			"Specialization": "specializes",
			"Triggering":     "triggers",
		},
		// Element display names follow the canonical names with spaces;
		// the fallback covers them, so no per-type table is needed here.
		Elements: map[string]string{},
	}
}
