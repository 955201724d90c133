package cache

import (
	"testing"
	"time"
)

func TestTTLCachePutGet(t *testing.T) {
	c := NewTTLCache[string, int](2, time.Second)
	c.Put("a", 1, 0)

	value, ok := c.Get("a")
	if !ok {
		t.Fatalf("expected value")
	}
	if value != 1 {
		t.Fatalf("expected 1, got %d", value)
	}
}

func TestTTLCacheEvictsOldest(t *testing.T) {
	c := NewTTLCache[string, int](2, time.Second)
	c.Put("a", 1, 0)
	c.Put("b", 2, 0)
	c.Put("c", 3, 0)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected key 'a' to be evicted")
	}
	if value, ok := c.Get("b"); !ok || value != 2 {
		t.Fatalf("expected key 'b' to remain")
	}
	if value, ok := c.Get("c"); !ok || value != 3 {
		t.Fatalf("expected key 'c' to remain")
	}
}

func TestTTLCacheExpires(t *testing.T) {
	c := NewTTLCache[string, int](2, time.Minute)
	c.Put("a", 1, 20*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected key 'a' to expire")
	}
}

func TestTTLCachePerEntryTTLOverridesDefault(t *testing.T) {
	c := NewTTLCache[string, int](4, 20*time.Millisecond)
	c.Put("short", 1, 0)
	c.Put("long", 2, time.Minute)
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Fatalf("expected default-ttl entry to expire")
	}
	if value, ok := c.Get("long"); !ok || value != 2 {
		t.Fatalf("expected long-ttl entry to survive")
	}
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTLCache[string, int](2, time.Second)
	c.Put("a", 1, 0)
	c.Delete("a")

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected key 'a' to be deleted")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", c.Len())
	}
}
