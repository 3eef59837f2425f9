package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
theme = "dark"
direction = "vertical"
plantuml_jar = "/opt/plantuml/plantuml.jar"

[cache]
dir = "/tmp/archigen-cache"

[redis]
addr = "localhost:6379"
db = 2

[serve]
addr = ":9000"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Theme != "dark" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.Direction != "vertical" {
		t.Errorf("direction = %q", cfg.Direction)
	}
	if cfg.PlantUMLJar != "/opt/plantuml/plantuml.jar" {
		t.Errorf("plantuml_jar = %q", cfg.PlantUMLJar)
	}
	if cfg.Cache.Dir != "/tmp/archigen-cache" {
		t.Errorf("cache.dir = %q", cfg.Cache.Dir)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Errorf("serve.addr = %q", cfg.Serve.Addr)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("explicit missing config file should fail")
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.Theme != "" {
		t.Errorf("theme = %q, want zero config", cfg.Theme)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `theme = [broken`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config should fail")
	}
}

func TestCacheDir(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Dir: "/custom/cache"}}
	dir, err := cacheDir(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/custom/cache" {
		t.Errorf("dir = %q, configured value should win", dir)
	}

	t.Setenv("XDG_CACHE_HOME", "/xdg")
	dir, err = cacheDir(&Config{})
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/xdg", appName) {
		t.Errorf("dir = %q", dir)
	}
}
