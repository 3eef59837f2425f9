// Package cache provides caching for rendered diagram documents and
// exported artifacts.
//
// Rendering a large model and shelling out to PlantUML are the
// expensive steps of the pipeline, so both the generated text and the
// rasterized bytes are cacheable. Keys are derived from a content hash
// of the diagram plus the options that shaped the output, so any model
// or option change produces a different key.
//
// Implementations:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
package cache

import (
	"context"
	"time"
)

// TTLs per cached stage. Rendered text and exported XML are cheap to
// recompute, artifacts require a Java round trip and live longer.
const (
	TTLRender   = 24 * time.Hour
	TTLExport   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL stores without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// RenderKey identifies a rendered diagram document.
	RenderKey(diagramHash string, opts RenderKeyOpts) string

	// ExportKey identifies an exported XML model.
	ExportKey(diagramHash string, opts ExportKeyOpts) string

	// ArtifactKey identifies a rasterized artifact derived from a
	// rendered document.
	ArtifactKey(textHash string, opts ArtifactKeyOpts) string
}

// RenderKeyOpts are the option fields that change rendered output.
type RenderKeyOpts struct {
	Direction string
	Theme     string
	Grouping  string
	Language  string
	Labels    bool
}

// ExportKeyOpts are the option fields that change exported XML.
type ExportKeyOpts struct {
	ViewName string
}

// ArtifactKeyOpts are the option fields that change rasterized output.
type ArtifactKeyOpts struct {
	Format string
	DPI    int
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered diagram document.
func (k *DefaultKeyer) RenderKey(diagramHash string, opts RenderKeyOpts) string {
	return hashKey("render", diagramHash, opts)
}

// ExportKey generates a key for an exported XML model.
func (k *DefaultKeyer) ExportKey(diagramHash string, opts ExportKeyOpts) string {
	return hashKey("export", diagramHash, opts)
}

// ArtifactKey generates a key for a rasterized artifact.
func (k *DefaultKeyer) ArtifactKey(textHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", textHash, opts)
}
