package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	s, err := Parse("hello")
	require.NoError(t, err)
	require.NotNil(t, s.AsSymbol())
	assert.Equal(t, "hello", s.AsSymbol().Value)
}

func TestParseList(t *testing.T) {
	s, err := Parse("(compose f g)")
	require.NoError(t, err)
	//
	l := s.AsList()
	require.NotNil(t, l)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "compose", l.Get(0).AsSymbol().Value)
	assert.Equal(t, "f", l.Get(1).AsSymbol().Value)
	assert.Equal(t, "g", l.Get(2).AsSymbol().Value)
}

func TestParseNested(t *testing.T) {
	s, err := Parse("(mtimes (mtimes x y) z)")
	require.NoError(t, err)
	//
	l := s.AsList()
	require.NotNil(t, l)
	require.Equal(t, 3, l.Len())
	//
	inner := l.Get(1).AsList()
	require.NotNil(t, inner)
	assert.Equal(t, 3, inner.Len())
	assert.Equal(t, "mtimes", inner.Get(0).AsSymbol().Value)
}

func TestParseEmptyList(t *testing.T) {
	s, err := Parse("()")
	require.NoError(t, err)
	require.NotNil(t, s.AsList())
	assert.Equal(t, 0, s.AsList().Len())
}

func TestParseComments(t *testing.T) {
	s, err := Parse("; leading comment\n(munit) ; trailing")
	require.NoError(t, err)
	require.NotNil(t, s.AsList())
	assert.Equal(t, 1, s.AsList().Len())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
	//
	_, err = Parse("(mtimes x y")
	assert.Error(t, err)
	//
	_, err = Parse(")")
	assert.Error(t, err)
	//
	_, err = Parse("(munit) trailing")
	assert.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	for _, text := range []string{
		"x",
		"(munit)",
		"(compose f g)",
		"(mtimes (mtimes x y) z)",
	} {
		s, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, text, s.String(false))
	}
}
