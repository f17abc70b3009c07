package random

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestStringUsesAlphabet(t *testing.T) {
	const alphabet = "abc"
	s := New().String(32, alphabet)
	assert.Len(t, s, 32)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(alphabet, c))
	}
	assert.Empty(t, New().String(0, alphabet))
	assert.Empty(t, New().String(5, ""))
}

func TestPermIsPermutation(t *testing.T) {
	perm := New().Perm(50)
	sorted := slices.Clone(perm)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
	assert.Empty(t, New().Perm(0))
}
