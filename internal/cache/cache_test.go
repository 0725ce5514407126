package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	k1 := CacheKey("1", "P:A")
	k2 := CacheKey("1", "P:A")
	k3 := CacheKey("2", "P:A")
	k4 := CacheKey("1", "P:B")

	if !strings.HasPrefix(k1, "geoshort:v1:") {
		t.Errorf("expected geoshort:v1: prefix, got %s", k1)
	}
	if k1 != k2 {
		t.Error("expected identical keys for identical input")
	}
	if k1 == k3 {
		t.Error("expected engine version to change the key")
	}
	if k1 == k4 {
		t.Error("expected statement to change the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("Construct point A."), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "Construct point A." {
		t.Errorf("expected stored value, got %q (found=%v)", val, found)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}

	_ = c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}

	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)
	_ = c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after clear, got %d", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := CacheKey("1", "S:AB")

	if _, found := c.Get(key); found {
		t.Error("expected miss before set")
	}

	if err := c.Set(key, []byte("Connect segment AB."), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "Connect segment AB." {
		t.Errorf("expected stored value, got %q (found=%v)", val, found)
	}

	// a second instance over the same directory sees the entry
	other := NewDiskCache(dir, time.Hour)
	if _, found := other.Get(key); !found {
		t.Error("expected entry to persist across instances")
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("expected deleting a missing key to succeed, got %v", err)
	}
}

func TestDiskCache_Expired(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expected expired entry file to be removed")
	}
}

func TestDiskCache_Corrupt(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := os.WriteFile(c.path("k"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected corrupt entry to miss")
	}
}

func TestDiskCache_ClearKeepsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)
	foreign := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(foreign, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected entries removed")
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("expected foreign file kept, got %v", err)
	}

	missing := NewDiskCache(filepath.Join(dir, "nope"), time.Hour)
	if err := missing.Clear(); err != nil {
		t.Errorf("expected clear of missing dir to succeed, got %v", err)
	}
}

func TestDiskCache_PathIsPortable(t *testing.T) {
	c := NewDiskCache("dir", time.Hour)
	if strings.Contains(filepath.Base(c.path("geoshort:v1:abc")), ":") {
		t.Error("expected colons replaced in file name")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	disk := NewDiskCache(dir, time.Hour)
	if err := disk.Set("k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	memory := NewMemoryCache(time.Minute, time.Minute)
	c := &LayeredCache{memory: memory, disk: disk}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("expected disk hit, got %q (found=%v)", val, found)
	}
	if _, found := memory.Get("k"); !found {
		t.Error("expected disk hit promoted to memory")
	}
}

func TestLayeredCache_SetDeleteClear(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.disk.Get("k"); !found {
		t.Error("expected write-through to disk")
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}

	_ = c.Set("a", []byte("1"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected miss after clear")
	}
}
