package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheEmptyAfterClear(t *testing.T) {
	var c Cache
	assert.True(t, c.IsEmpty())

	c.Store(sizeNone(), sizeNone(), SizeAvailableSpace{Width: Definite(10), Height: Definite(10)}, PerformLayout, InherentSize, LayoutOutput{})
	assert.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCacheHitOnMatchingAvailableSpace(t *testing.T) {
	var c Cache
	space := SizeAvailableSpace{Width: Definite(100), Height: MaxContent}
	want := LayoutOutput{Size: SizeF{Width: 50, Height: 20}}
	c.Store(sizeNone(), sizeNone(), space, PerformLayout, InherentSize, want)

	got, ok := c.Get(sizeNone(), space, PerformLayout)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCacheMissOnDifferentRunMode(t *testing.T) {
	var c Cache
	space := SizeAvailableSpace{Width: Definite(100), Height: Definite(100)}
	c.Store(sizeNone(), sizeNone(), space, PerformLayout, InherentSize, LayoutOutput{})

	_, ok := c.Get(sizeNone(), space, ComputeSize)
	assert.False(t, ok)
}

func TestCacheMissOnDifferentAvailableSpace(t *testing.T) {
	var c Cache
	c.Store(sizeNone(), sizeNone(), SizeAvailableSpace{Width: Definite(100), Height: Definite(100)}, PerformLayout, InherentSize, LayoutOutput{})

	_, ok := c.Get(sizeNone(), SizeAvailableSpace{Width: Definite(50), Height: Definite(100)}, PerformLayout)
	assert.False(t, ok)
}

func TestCacheHitOnKnownDimensionsRegardlessOfAvailableSpace(t *testing.T) {
	var c Cache
	known := SizeOpt{Width: Some(42), Height: Some(10)}
	want := LayoutOutput{Size: SizeF{Width: 42, Height: 10}}
	c.Store(known, sizeNone(), SizeAvailableSpace{Width: Definite(100), Height: Definite(100)}, PerformLayout, InherentSize, want)

	// Same known width and height, a totally different available space: must still hit
	// per the "matches any query with the same definite values" rule.
	got, ok := c.Get(known, SizeAvailableSpace{Width: MaxContent, Height: MinContent}, PerformLayout)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	var c Cache
	spaceFor := func(w float64) SizeAvailableSpace {
		return SizeAvailableSpace{Width: Definite(w), Height: Definite(1)}
	}
	for i := 0; i < cacheSlotCount; i++ {
		c.Store(sizeNone(), sizeNone(), spaceFor(float64(i)), PerformLayout, InherentSize, LayoutOutput{Size: SizeF{Width: float64(i)}})
	}
	// Table is now full; one more store must evict the first entry written.
	c.Store(sizeNone(), sizeNone(), spaceFor(999), PerformLayout, InherentSize, LayoutOutput{Size: SizeF{Width: 999}})

	_, ok := c.Get(sizeNone(), spaceFor(0), PerformLayout)
	assert.False(t, ok, "oldest entry must have been evicted")

	got, ok := c.Get(sizeNone(), spaceFor(999), PerformLayout)
	assert.True(t, ok)
	assert.Equal(t, float64(999), got.Size.Width)
}
