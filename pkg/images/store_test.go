package images

import (
	"fmt"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageStore_SetGet(t *testing.T) {
	store := NewImageStore()
	a := testImage(2, 2, color.White)
	b := testImage(3, 3, color.Black)

	_, ok := store.Get("/a.png")
	assert.False(t, ok)

	store.Set("/a.png", a)
	got, ok := store.Get("/a.png")
	assert.True(t, ok)
	assert.Same(t, a, got)

	// Overwrite: last writer wins
	store.Set("/a.png", b)
	got, ok = store.Get("/a.png")
	assert.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, 1, store.Len())
}

func TestImageStore_NilIgnored(t *testing.T) {
	store := NewImageStore()
	store.Set("/nil.png", nil)
	_, ok := store.Get("/nil.png")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestImageStore_Clear(t *testing.T) {
	store := NewImageStore()
	keys := []string{"/a.png", "/b.png", "/c.png#10x10#fill"}
	for _, k := range keys {
		store.Set(k, testImage(1, 1, color.White))
	}
	assert.Equal(t, 3, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
	for _, k := range keys {
		_, ok := store.Get(k)
		assert.False(t, ok, k)
	}

	// Still usable after a clear
	store.Set("/a.png", testImage(1, 1, color.Black))
	_, ok := store.Get("/a.png")
	assert.True(t, ok)
}

func TestImageStore_Concurrency(t *testing.T) {
	store := NewImageStore()
	img := testImage(1, 1, color.White)
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				store.Set(fmt.Sprintf("/%d/%d.png", w, i), img)
			}
		}(w)
	}
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				store.Get(fmt.Sprintf("/0/%d.png", i))
				store.Len()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, store.Len())
}
