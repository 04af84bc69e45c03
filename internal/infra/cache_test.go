package infra

import (
	"strconv"
	"testing"
	"time"
)

// fakeClock returns a cache clock that tests can advance.
func fakeClock(c *Cache[int]) *time.Time {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return &now
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache[string](time.Minute)
	if _, ok := c.Get("NVDA"); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Set("NVDA", "NVIDIA Corporation")
	got, ok := c.Get("NVDA")
	if !ok || got != "NVIDIA Corporation" {
		t.Fatalf("Get = (%q, %v)", got, ok)
	}
}

func TestCacheGetDropsExpiredEntry(t *testing.T) {
	c := NewCache[int](time.Minute)
	now := fakeClock(c)

	c.Set("a", 1)
	c.Set("b", 2)
	*now = now.Add(30 * time.Second)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = (%d, %v) before expiry", v, ok)
	}

	*now = now.Add(31 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("expected expired entry to miss")
	}
	if n := c.size(); n != 1 {
		t.Errorf("size() = %d after expired Get, want 1", n)
	}
}

func TestCacheSetSweepsExpiredEntries(t *testing.T) {
	c := NewCache[int](time.Minute)
	now := fakeClock(c)

	for i := 0; i < minSweep-1; i++ {
		c.Set("old"+strconv.Itoa(i), i)
	}
	*now = now.Add(2 * time.Minute)

	// Reaching the sweep threshold removes everything that expired.
	c.Set("fresh", 1)
	if n := c.size(); n != 1 {
		t.Fatalf("size() = %d after sweep, want 1", n)
	}
	if v, ok := c.Get("fresh"); !ok || v != 1 {
		t.Errorf("Get(fresh) = (%d, %v)", v, ok)
	}

	// Distinct keys over many TTL windows stay bounded.
	for round := 0; round < 10; round++ {
		*now = now.Add(2 * time.Minute)
		for i := 0; i < 100; i++ {
			c.Set(strconv.Itoa(round)+"-"+strconv.Itoa(i), i)
		}
	}
	if n := c.size(); n > 2*100+minSweep {
		t.Errorf("size() = %d, cache grew without bound", n)
	}
}
