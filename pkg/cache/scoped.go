package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or
// users sharing one Redis instance get isolated namespaces.
//
// Example usage:
//
//	// Per-project keys on a shared server
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "project:acme:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for a rendered diagram document.
func (k *ScopedKeyer) RenderKey(diagramHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(diagramHash, opts)
}

// ExportKey generates a prefixed key for an exported XML model.
func (k *ScopedKeyer) ExportKey(diagramHash string, opts ExportKeyOpts) string {
	return k.prefix + k.inner.ExportKey(diagramHash, opts)
}

// ArtifactKey generates a prefixed key for a rasterized artifact.
func (k *ScopedKeyer) ArtifactKey(textHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(textHash, opts)
}
