// Package renderer rasterizes diagram text into image artifacts.
//
// The only production implementation drives the PlantUML jar through
// the local Java runtime. The Renderer interface exists so the pipeline
// and server can be tested without Java installed.
package renderer

import (
	"context"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Valid reports whether the format is renderable.
func (f Format) Valid() bool {
	return f == FormatPNG || f == FormatSVG
}

// Artifact is one rasterized output.
type Artifact struct {
	Format Format
	Data   []byte
}

// Renderer turns diagram text into image artifacts.
type Renderer interface {
	// Render rasterizes the text into one artifact per requested
	// format.
	Render(ctx context.Context, text string, formats ...Format) ([]Artifact, error)

	// Check verifies the text is renderable without producing output.
	Check(ctx context.Context, text string) error
}
