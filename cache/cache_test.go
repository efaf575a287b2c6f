// ABOUTME: Tests for the TTL cache
// ABOUTME: Covers set/get, expiry, and clearing

package cache

import (
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New()

	c.Set("key", "value", time.Minute)

	val, found := c.Get("key")
	if !found {
		t.Fatal("Expected cache hit")
	}
	if val.(string) != "value" {
		t.Errorf("Expected 'value', got %v", val)
	}
}

func TestCache_Get_Missing(t *testing.T) {
	c := New()

	if _, found := c.Get("missing"); found {
		t.Error("Expected cache miss for missing key")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New()

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, found := c.Get("key"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New()

	c.Set("key", "value", time.Minute)
	c.Clear("key")

	if _, found := c.Get("key"); found {
		t.Error("Expected cleared key to miss")
	}
}

func TestCache_OverwriteResetsTTL(t *testing.T) {
	c := New()

	c.Set("key", "old", 10*time.Millisecond)
	c.Set("key", "new", time.Minute)
	time.Sleep(20 * time.Millisecond)

	val, found := c.Get("key")
	if !found {
		t.Fatal("Expected overwritten entry to survive the old TTL")
	}
	if val.(string) != "new" {
		t.Errorf("Expected 'new', got %v", val)
	}
}
