package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal graph theory used throughout these tests: vertices and dependent
// edges between them.
func graphTheory(t *testing.T) *Signature {
	v := SortOf("V")
	//
	sig, err := New("Graph").
		Sort("V").
		Sort("E",
			NewParam("src", v),
			NewParam("tgt", v)).
		Term("loop",
			Takes(NewParam("x", v)),
			Returns("E", Var("x"), Var("x"))).
		Build()
	//
	require.NoError(t, err)
	//
	return sig
}

func TestBuilderLookups(t *testing.T) {
	sig := graphTheory(t)
	//
	assert.Equal(t, "Graph", sig.Name())
	//
	e, ok := sig.Sort("E")
	require.True(t, ok)
	assert.Equal(t, uint(2), e.Arity())
	//
	loop, ok := sig.Term("loop")
	require.True(t, ok)
	assert.Equal(t, uint(1), loop.Arity())
	assert.Equal(t, []string{"V"}, loop.ParamSorts())
	//
	_, ok = sig.Sort("W")
	assert.False(t, ok)
	_, ok = sig.Term("unloop")
	assert.False(t, ok)
}

func TestBuilderDuplicateNames(t *testing.T) {
	_, err := New("Bad").Sort("V").Sort("V").Build()
	assert.Error(t, err)
	//
	_, err = New("Bad").Sort("V").Term("V", Returns("V")).Build()
	assert.Error(t, err)
	//
	_, err = New("Bad").
		Sort("V").
		Term("f", Returns("V")).
		Term("f", Returns("V")).
		Build()
	assert.Error(t, err)
}

func TestBuilderUnknownSorts(t *testing.T) {
	// Unknown result sort
	_, err := New("Bad").Sort("V").Term("f", Returns("W")).Build()
	assert.Error(t, err)
	// Unknown parameter sort on a term
	_, err = New("Bad").
		Sort("V").
		Term("f",
			Takes(NewParam("x", SortOf("W"))),
			Returns("V")).
		Build()
	assert.Error(t, err)
	// Unknown parameter sort on a dependent sort
	_, err = New("Bad").
		Sort("E", NewParam("src", SortOf("V"))).
		Build()
	assert.Error(t, err)
}

func TestBuilderResultArity(t *testing.T) {
	v := SortOf("V")
	// Result sort under-applied
	_, err := New("Bad").
		Sort("V").
		Sort("E", NewParam("src", v), NewParam("tgt", v)).
		Term("loop",
			Takes(NewParam("x", v)),
			Returns("E", Var("x"))).
		Build()
	assert.Error(t, err)
}

func TestBuilderParameterReferences(t *testing.T) {
	v := SortOf("V")
	// Result references an undeclared parameter
	_, err := New("Bad").
		Sort("V").
		Sort("E", NewParam("src", v), NewParam("tgt", v)).
		Term("loop",
			Takes(NewParam("x", v)),
			Returns("E", Var("x"), Var("y"))).
		Build()
	assert.Error(t, err)
	// Context parameters are legal references
	_, err = New("Good").
		Sort("V").
		Sort("E", NewParam("src", v), NewParam("tgt", v)).
		Term("f",
			Takes(NewParam("e", SortOf("E", Var("A"), Var("B")))),
			InContext(NewParam("A", v), NewParam("B", v)),
			Returns("E", Proj(Var("e"), 0), Proj(Var("e"), 1))).
		Build()
	assert.NoError(t, err)
}

func TestBuilderProjectionBounds(t *testing.T) {
	v := SortOf("V")
	// Projecting the third parameter of a two-parameter sort
	_, err := New("Bad").
		Sort("V").
		Sort("E", NewParam("src", v), NewParam("tgt", v)).
		Term("f",
			Takes(NewParam("e", SortOf("E", Var("A"), Var("B")))),
			InContext(NewParam("A", v), NewParam("B", v)),
			Returns("E", Proj(Var("e"), 0), Proj(Var("e"), 2))).
		Build()
	assert.Error(t, err)
}

func TestBuilderApplicationChecks(t *testing.T) {
	v := SortOf("V")
	// Applying an unknown operation in a result expression
	_, err := New("Bad").
		Sort("V").
		Sort("E", NewParam("src", v), NewParam("tgt", v)).
		Term("f",
			Takes(NewParam("x", v)),
			Returns("E", App("g", Var("x")), Var("x"))).
		Build()
	assert.Error(t, err)
	// Applying a known operation with the wrong arity
	_, err = New("Bad").
		Sort("V").
		Sort("E", NewParam("src", v), NewParam("tgt", v)).
		Term("g", Takes(NewParam("x", v)), Returns("V")).
		Term("f",
			Takes(NewParam("x", v)),
			Returns("E", App("g", Var("x"), Var("x")), Var("x"))).
		Build()
	assert.Error(t, err)
}

func TestBuilderVariadicMustBeBinary(t *testing.T) {
	v := SortOf("V")
	//
	_, err := New("Bad").
		Sort("V").
		Term("f", Takes(NewParam("x", v)), Returns("V"), Variadic()).
		Build()
	assert.Error(t, err)
}

func TestBuilderMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		New("Bad").Term("f", Returns("V")).MustBuild()
	})
}

func TestSignatureInclusion(t *testing.T) {
	base := graphTheory(t)
	//
	ext, err := New("Pointed Graph").
		Include(base).
		Term("basepoint", Returns("V")).
		Build()
	require.NoError(t, err)
	// Inherited constructors come first, in declaration order
	terms := ext.Terms()
	require.Len(t, terms, 2)
	assert.Equal(t, "loop", terms[0].Name)
	assert.Equal(t, "basepoint", terms[1].Name)
	// Lookup sees inherited constructors
	_, ok := ext.Sort("E")
	assert.True(t, ok)
	_, ok = ext.Term("loop")
	assert.True(t, ok)
	//
	require.Len(t, ext.Includes(), 1)
	assert.Equal(t, "Graph", ext.Includes()[0].Name())
	// Extension may reference inherited constructors
	_, err = New("Looped").
		Include(base).
		Term("double",
			Takes(NewParam("x", SortOf("V"))),
			Returns("E", Var("x"), Var("x")),
			Requires(App("loop", Var("x")), App("loop", Var("x")))).
		Build()
	assert.NoError(t, err)
	// Clashes with inherited names are rejected
	_, err = New("Bad").Include(base).Sort("V").Build()
	assert.Error(t, err)
}

func TestTermExprStrings(t *testing.T) {
	assert.Equal(t, "x", Var("x").String())
	assert.Equal(t, "proj(f,1)", Proj(Var("f"), 1).String())
	assert.Equal(t, "compose(f,g)", App("compose", Var("f"), Var("g")).String())
	//
	eq := Equation{Proj(Var("f"), 1), Proj(Var("g"), 0)}
	assert.Equal(t, "proj(f,1) == proj(g,0)", eq.String())
}
