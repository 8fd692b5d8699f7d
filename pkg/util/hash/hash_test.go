package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// key is a structural key whose hashcode collapses to a fixed set of values,
// forcing bucket collisions.
type key struct {
	name string
	code uint64
}

func (k key) Equals(other key) bool {
	return k.name == other.name
}

func (k key) Hash() uint64 {
	return k.code
}

func TestMapInsertGet(t *testing.T) {
	m := NewMap[key, int](4)
	//
	assert.False(t, m.Insert(key{"a", 1}, 10))
	assert.False(t, m.Insert(key{"b", 2}, 20))
	assert.Equal(t, uint(2), m.Size())
	//
	v, ok := m.Get(key{"a", 1})
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	//
	assert.True(t, m.ContainsKey(key{"b", 2}))
	assert.False(t, m.ContainsKey(key{"c", 3}))
	//
	_, ok = m.Get(key{"c", 3})
	assert.False(t, ok)
}

func TestMapOverwrite(t *testing.T) {
	m := NewMap[key, int](4)
	//
	assert.False(t, m.Insert(key{"a", 1}, 10))
	// Equal key replaces the previous value
	assert.True(t, m.Insert(key{"a", 1}, 11))
	assert.Equal(t, uint(1), m.Size())
	//
	v, _ := m.Get(key{"a", 1})
	assert.Equal(t, 11, v)
}

func TestMapCollisions(t *testing.T) {
	m := NewMap[key, int](4)
	// Distinct keys sharing one hashcode
	m.Insert(key{"a", 7}, 10)
	m.Insert(key{"b", 7}, 20)
	m.Insert(key{"c", 7}, 30)
	//
	assert.Equal(t, uint(3), m.Size())
	//
	for _, k := range []struct {
		name  string
		value int
	}{{"a", 10}, {"b", 20}, {"c", 30}} {
		v, ok := m.Get(key{k.name, 7})
		assert.True(t, ok)
		assert.Equal(t, k.value, v)
	}
}

func TestMapEach(t *testing.T) {
	m := NewMap[key, int](4)
	//
	m.Insert(key{"a", 1}, 10)
	m.Insert(key{"b", 1}, 20)
	m.Insert(key{"c", 2}, 30)
	//
	sum := 0
	m.Each(func(k key, v int) { sum += v })
	assert.Equal(t, 60, sum)
}

func TestFold(t *testing.T) {
	// Order matters
	assert.NotEqual(t, Fold(1, 2), Fold(2, 1))
	// Deterministic
	assert.Equal(t, Fold(1, 2, 3), Fold(1, 2, 3))
	// String folding distinguishes contents
	assert.NotEqual(t, FoldString(Fold(), "ab"), FoldString(Fold(), "ba"))
	assert.Equal(t, FoldString(Fold(), "ab"), FoldString(Fold(), "ab"))
}
