package theories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"category", "monoid", "monoidal-category"}, Names())
	//
	sig, ok := Lookup("category")
	require.True(t, ok)
	assert.Equal(t, "Category", sig.Name())
	//
	_, ok = Lookup("groupoid")
	assert.False(t, ok)
}

func TestMonoidSignature(t *testing.T) {
	mtimes, ok := Monoid.Term("mtimes")
	require.True(t, ok)
	assert.True(t, mtimes.Variadic)
	assert.Equal(t, []string{"Elem", "Elem"}, mtimes.ParamSorts())
	//
	munit, ok := Monoid.Term("munit")
	require.True(t, ok)
	assert.Equal(t, uint(0), munit.Arity())
}

func TestCategorySignature(t *testing.T) {
	hom, ok := Category.Sort("Hom")
	require.True(t, ok)
	assert.Equal(t, uint(2), hom.Arity())
	//
	compose, ok := Category.Term("compose")
	require.True(t, ok)
	assert.Equal(t, []string{"Hom", "Hom"}, compose.ParamSorts())
	require.Len(t, compose.Equations, 1)
	assert.Equal(t, "proj(f,1) == proj(g,0)", compose.Equations[0].String())
}

func TestMonoidalCategoryInheritsCategory(t *testing.T) {
	// Inherited constructors come first
	terms := MonoidalCategory.Terms()
	require.GreaterOrEqual(t, len(terms), 2)
	assert.Equal(t, "id", terms[0].Name)
	assert.Equal(t, "compose", terms[1].Name)
	//
	_, ok := MonoidalCategory.Sort("Hom")
	assert.True(t, ok)
	//
	braid, ok := MonoidalCategory.Term("braid")
	require.True(t, ok)
	assert.Equal(t, "Hom(otimes(A,B),otimes(B,A))", braid.Result.String())
	//
	lunitor, ok := MonoidalCategory.Term("lunitor")
	require.True(t, ok)
	assert.Equal(t, "Hom(otimes(munit(),A),A)", lunitor.Result.String())
}
