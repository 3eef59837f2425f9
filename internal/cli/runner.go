package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/archigen/archigen/pkg/cache"
	"github.com/archigen/archigen/pkg/pipeline"
	"github.com/archigen/archigen/pkg/renderer"
)

// newRunner creates a pipeline runner backed by the configured cache.
// Redis is used when an address is configured, otherwise results land
// in the file cache; cache failures degrade to no caching.
func newRunner(ctx context.Context, cfg *Config, noCache bool, logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(newCache(ctx, cfg, noCache, logger), nil, logger)
}

func newCache(ctx context.Context, cfg *Config, noCache bool, logger *log.Logger) cache.Cache {
	if noCache || (cfg != nil && cfg.Cache.Disabled) {
		return cache.NewNullCache()
	}

	if cfg != nil && cfg.Redis.Addr != "" {
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err == nil {
			return c
		}
		logger.Warn("redis unavailable, falling back to file cache", "addr", cfg.Redis.Addr, "err", err)
	}

	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("file cache unavailable, caching disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return c
}

// newRasterizer locates the PlantUML jar and builds an image renderer.
// The configured jar path wins over discovery.
func newRasterizer(cfg *Config) (renderer.Renderer, error) {
	jar := ""
	if cfg != nil {
		jar = cfg.PlantUMLJar
	}
	return renderer.NewPlantUML(jar)
}
