package blockscene

import (
	"errors"
	"image"
	"testing"
)

// TestCacheBasicOperations tests the basic operations of the SimpleCache
func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	indices := make([]int, len(items))

	for i, item := range items {
		index, err := cache.Register(item, item)
		if err != nil {
			t.Errorf("Failed to register item %s: %v", item, err)
		}
		indices[i] = index

		if index != i {
			t.Errorf("Index for item %s is %d, expected %d", item, index, i)
		}
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		if !found {
			t.Errorf("Item %s not found in cache", item)
		}
		if index != indices[i] {
			t.Errorf("Index for item %s is %d, expected %d", item, index, indices[i])
		}
		if got := *cache.GetItem(index); got != item {
			t.Errorf("Item at index %d is %s, expected %s", index, got, item)
		}
		if got := *cache.GetItem32(uint32(index)); got != item {
			t.Errorf("Item at index %d is %s, expected %s", index, got, item)
		}
	}

	if _, found := cache.GetIndex("nonexistent"); found {
		t.Errorf("Found non-existent item in cache")
	}
}

// TestCacheCapacity tests the cache capacity limits
func TestCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := FactoryNewCache[int](capacity)

	for i := 1; i <= capacity; i++ {
		key := "item" + string(rune(i+'0'))
		if _, err := cache.Register(key, i); err != nil {
			t.Errorf("Failed to register item %s: %v", key, err)
		}
	}

	_, err := cache.Register("overflow", 100)
	var full CacheFullError
	if !errors.As(err, &full) {
		t.Fatalf("Register over capacity: got %v, want CacheFullError", err)
	}
	if full.Capacity != capacity {
		t.Errorf("CacheFullError.Capacity = %d, want %d", full.Capacity, capacity)
	}

	// Re-registering a known key replaces in place and needs no room
	idx, err := cache.Register("item1", 42)
	if err != nil {
		t.Fatalf("Re-register failed: %v", err)
	}
	if *cache.GetItem(idx) != 42 {
		t.Errorf("Re-registered item = %d, want 42", *cache.GetItem(idx))
	}
}

func TestCacheClear(t *testing.T) {
	cache := &SimpleCache[int]{itemIndices: make(map[string]int), maxCapacity: 2}
	cache.Register("a", 1)
	cache.Register("b", 2)
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", cache.Len())
	}
	if _, err := cache.Register("c", 3); err != nil {
		t.Errorf("Register after Clear: %v", err)
	}
}

type countingLoader struct {
	calls map[string]int
	fail  map[string]error
}

func (l *countingLoader) LoadTexture(path string) (image.Image, error) {
	if l.calls == nil {
		l.calls = make(map[string]int)
	}
	l.calls[path]++
	if err := l.fail[path]; err != nil {
		return nil, err
	}
	return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
}

func TestTextureManagerLoadsOnce(t *testing.T) {
	loader := &countingLoader{}
	textures := Factory.NewTextureManager(loader, 4)

	first, err := textures.Load("cube/cube.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := textures.Load("cube/cube.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if first != second {
		t.Errorf("Same path gave handles %d and %d", first, second)
	}
	if loader.calls["cube/cube.png"] != 1 {
		t.Errorf("Loader called %d times, want 1", loader.calls["cube/cube.png"])
	}

	other, err := textures.Load("floor.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if other == first {
		t.Errorf("Different paths share handle %d", other)
	}

	tex, ok := textures.Texture(first)
	if !ok || tex.Path != "cube/cube.png" || tex.Image == nil {
		t.Errorf("Texture(%d) = %+v, %v", first, tex, ok)
	}
	if _, ok := textures.Texture(99); ok {
		t.Errorf("Texture(99) found an unknown handle")
	}
}

func TestTextureManagerErrors(t *testing.T) {
	boom := errors.New("boom")
	loader := &countingLoader{fail: map[string]error{"bad.png": boom}}
	textures := Factory.NewTextureManager(loader, 1)

	if _, err := textures.Load("bad.png"); !errors.Is(err, boom) {
		t.Errorf("Load(bad.png) error = %v, want wrapped boom", err)
	}
	if textures.Len() != 0 {
		t.Errorf("Failed load was cached")
	}

	if _, err := textures.Load("a.png"); err != nil {
		t.Fatalf("Load(a.png): %v", err)
	}
	var full CacheFullError
	if _, err := textures.Load("b.png"); !errors.As(err, &full) {
		t.Errorf("Load over capacity error = %v, want CacheFullError", err)
	}
}
