package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	r := New()
	for i := 0; i < 100; i++ {
		v := r.Intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededRandomDiffersBySeed(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1<<30) != b.Intn(1<<30) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestString(t *testing.T) {
	r := NewSeeded(7)
	s := r.String(8, "ab")
	assert.Len(t, s, 8)
	for _, c := range s {
		assert.Contains(t, "ab", string(c))
	}
	assert.Empty(t, r.String(0, "ab"))
	assert.Empty(t, r.String(4, ""))
}
