package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCryptoSource_InRange(t *testing.T) {
	src := NewCryptoSource()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		v := src.Intn(n)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, n)
	})
}

func TestCryptoSource_PanicsOnNonPositive(t *testing.T) {
	src := NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-5) })
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededSource_InRange(t *testing.T) {
	src := NewSeededSource(7)
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		v := src.Intn(n)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, n)
	})
}

func TestPick_CoversWholePool(t *testing.T) {
	src := NewSeededSource(1)
	pool := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Pick(src, pool)] = true
	}
	assert.Len(t, seen, 3)
}

func TestPick_PanicsOnEmptyPool(t *testing.T) {
	src := NewSeededSource(1)
	assert.Panics(t, func() { Pick(src, []string(nil)) })
}
