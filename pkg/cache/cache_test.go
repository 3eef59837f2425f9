package cache

import (
	"context"
	"testing"
	"time"

	"github.com/archigen/archigen/pkg/model"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Round trip
	if err := c.Set(ctx, "doc", []byte("@startuml"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "@startuml" {
		t.Errorf("Get = %q, %v; want @startuml, true", data, hit)
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "old", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}

	// Delete
	if err := c.Delete(ctx, "doc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "doc"); hit {
		t.Error("deleted entry should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "ghost"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func hashTestDiagram(t *testing.T) *model.Diagram {
	t.Helper()
	d := model.New("Sales")
	for _, e := range []*model.Element{
		{ID: "crm", Name: "CRM", Type: "Application_Component", Layer: model.LayerApplication},
		{ID: "rep", Name: "Sales Rep", Type: "Business_Actor", Layer: model.LayerBusiness},
	} {
		if err := d.AddElement(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.AddRelationship(&model.Relationship{
		ID: "r1", Source: "crm", Target: "rep", Type: model.RelServing,
	}); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDiagramHash(t *testing.T) {
	h1 := DiagramHash(hashTestDiagram(t))
	h2 := DiagramHash(hashTestDiagram(t))
	if h1 != h2 {
		t.Error("identical diagrams should hash identically")
	}

	// Content changes move the hash
	d := hashTestDiagram(t)
	e, _ := d.Element("crm")
	e.Name = "CRM v2"
	if DiagramHash(d) == h1 {
		t.Error("renamed element should change the hash")
	}

	// Visibility changes move the hash too
	d = hashTestDiagram(t)
	d.Visibility().HideElements("crm")
	if DiagramHash(d) == h1 {
		t.Error("hiding an element should change the hash")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// RenderKey should include options in hash
	rk1 := k.RenderKey("hash123", RenderKeyOpts{Theme: "modern", Direction: "vertical"})
	rk2 := k.RenderKey("hash123", RenderKeyOpts{Theme: "dark", Direction: "vertical"})
	if rk1 == rk2 {
		t.Error("Different RenderKeyOpts should produce different keys")
	}
	if rk1[:7] != "render:" {
		t.Errorf("RenderKey prefix unexpected: %s", rk1)
	}

	// ExportKey
	ek1 := k.ExportKey("hash123", ExportKeyOpts{ViewName: "Overview"})
	ek2 := k.ExportKey("hash456", ExportKeyOpts{ViewName: "Overview"})
	if ek1 == ek2 {
		t.Error("Different diagram hashes should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "project:acme:")

	key := scoped.RenderKey("hash123", RenderKeyOpts{})
	if key[:13] != "project:acme:" {
		t.Errorf("ScopedKeyer RenderKey should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "png"})
	if key[:7] != "prefix:" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
