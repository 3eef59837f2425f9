package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archigen/archigen/pkg/cache"
	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/export/archixml"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/plantuml"
	"github.com/archigen/archigen/pkg/renderer"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, rasterizer and logger.
// Multiple goroutines can safely use the same Runner with different
// diagrams and options.
type Runner struct {
	Cache      cache.Cache
	Keyer      cache.Keyer
	Rasterizer renderer.Renderer
	Logger     *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The rasterizer may be nil; requesting png/svg then fails.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs render → export → rasterize with caching.
func (r *Runner) Execute(ctx context.Context, d *model.Diagram, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		DiagramHash: cache.DiagramHash(d),
		Artifacts:   make(map[string][]byte),
	}
	result.Stats.ElementCount = d.ElementCount()
	result.Stats.RelationshipCount = d.RelationshipCount()

	// Stage 1: render text. Every downstream stage consumes it.
	renderStart := time.Now()
	text, renderHit, err := r.renderTextWithCacheInfo(ctx, d, result.DiagramHash, opts)
	if err != nil {
		return nil, err
	}
	result.Text = text
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered diagram",
		"elements", result.Stats.ElementCount,
		"relationships", result.Stats.RelationshipCount,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	for _, f := range opts.Formats {
		if f == FormatPUML {
			result.Artifacts[FormatPUML] = []byte(text)
		}
	}

	// Stage 2: XML export.
	if opts.WantsExport() {
		exportStart := time.Now()
		xmlData, exportHit, err := r.exportWithCacheInfo(ctx, d, result.DiagramHash, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[FormatXML] = xmlData
		result.Warnings = archixml.Validate(xmlData)
		result.Stats.ExportTime = time.Since(exportStart)
		result.CacheInfo.ExportHit = exportHit

		opts.Logger.Info("exported model",
			"bytes", len(xmlData),
			"warnings", len(result.Warnings),
			"cached", exportHit,
			"duration", result.Stats.ExportTime)
	}

	// Stage 3: rasterization.
	if opts.WantsImages() {
		rasterStart := time.Now()
		images, rasterHit, err := r.rasterizeWithCacheInfo(ctx, text, opts)
		if err != nil {
			return nil, err
		}
		for format, data := range images {
			result.Artifacts[format] = data
		}
		result.Stats.RasterTime = time.Since(rasterStart)
		result.CacheInfo.RasterHit = rasterHit

		opts.Logger.Info("rasterized diagram",
			"formats", opts.ImageFormats(),
			"cached", rasterHit,
			"duration", result.Stats.RasterTime)
	}

	return result, nil
}

// RenderText renders the diagram document, using the cache.
func (r *Runner) RenderText(ctx context.Context, d *model.Diagram, opts Options) (string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", err
	}
	text, _, err := r.renderTextWithCacheInfo(ctx, d, cache.DiagramHash(d), opts)
	return text, err
}

// Export produces the Archi XML document, using the cache.
func (r *Runner) Export(ctx context.Context, d *model.Diagram, opts Options) ([]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	data, _, err := r.exportWithCacheInfo(ctx, d, cache.DiagramHash(d), opts)
	return data, err
}

func (r *Runner) renderTextWithCacheInfo(ctx context.Context, d *model.Diagram, diagramHash string, opts Options) (string, bool, error) {
	key := r.Keyer.RenderKey(diagramHash, opts.RenderKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return string(data), true, nil
		}
	}

	text, err := plantuml.NewRenderer(opts.Translator).Render(d, opts.RenderOptions())
	if err != nil {
		return "", false, err
	}

	_ = r.Cache.Set(ctx, key, []byte(text), cache.TTLRender)
	return text, false, nil
}

func (r *Runner) exportWithCacheInfo(ctx context.Context, d *model.Diagram, diagramHash string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ExportKey(diagramHash, opts.ExportKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	data, err := archixml.NewExporter().Export(d, archixml.Options{ViewName: opts.ViewName})
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, data, cache.TTLExport)
	return data, false, nil
}

func (r *Runner) rasterizeWithCacheInfo(ctx context.Context, text string, opts Options) (map[string][]byte, bool, error) {
	if r.Rasterizer == nil {
		return nil, false, errors.New(errors.ErrCodeRenderFailed, "image output requested but no rasterizer is configured")
	}

	textHash := cache.Hash([]byte(text))
	formats := opts.ImageFormats()

	// Try to get all formats from cache first.
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		allCached := true
		for _, f := range formats {
			key := r.Keyer.ArtifactKey(textHash, opts.ArtifactKeyOpts(f))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[string(f)] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached {
			return artifacts, true, nil
		}
	}

	rendered, err := r.Rasterizer.Render(ctx, text, formats...)
	if err != nil {
		return nil, false, err
	}

	artifacts = make(map[string][]byte, len(rendered))
	for _, a := range rendered {
		artifacts[string(a.Format)] = a.Data
		key := r.Keyer.ArtifactKey(textHash, opts.ArtifactKeyOpts(a.Format))
		_ = r.Cache.Set(ctx, key, a.Data, cache.TTLArtifact)
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
// Must run before ValidateAndSetDefaults, which installs a silent
// logger on nil.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
