package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnglishDictionary(t *testing.T) {
	en := English()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"known layer", en.Layer("Business"), "Business Layer"},
		{"unknown layer falls back", en.Layer("Cosmic"), "Cosmic"},
		{"known relationship", en.Relationship("Serving"), "serves"},
		{"unknown relationship lowercased", en.Relationship("Teleports"), "teleports"},
		{"element underscores become spaces", en.Element("Business_Actor"), "Business Actor"},
		{"plain element unchanged", en.Element("Gap"), "Gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sk.toml")
	content := `
[layers]
Business = "Biznis vrstva"

[relationships]
Serving = "obsluhuje"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := d.Layer("Business"); got != "Biznis vrstva" {
		t.Errorf("Layer(Business) = %q", got)
	}
	if got := d.Relationship("Serving"); got != "obsluhuje" {
		t.Errorf("Relationship(Serving) = %q", got)
	}
	// Untranslated keys fall back.
	if got := d.Layer("Application"); got != "Application" {
		t.Errorf("Layer(Application) = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() error = nil for missing file")
	}
}
