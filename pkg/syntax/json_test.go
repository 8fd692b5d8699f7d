package syntax

import (
	"errors"
	"testing"

	"github.com/gatlab/go-gat/pkg/theory/theories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWireFormat(t *testing.T) {
	ns := MustAssemble(theories.Category)
	//
	x, _ := ns.Generator("Ob", Sym("X"))
	y, _ := ns.Generator("Ob", Sym("Y"))
	z, _ := ns.Generator("Ob", Sym("Z"))
	f, _ := ns.Generator("Hom", Sym("f"), x, y)
	g, _ := ns.Generator("Hom", Sym("g"), y, z)
	fg, _ := ns.Apply("compose", f, g)
	//
	data, err := ToJSON(fg)
	require.NoError(t, err)
	// Operations as [op, arg...]; generators as [sort, leaf, typeArg...]
	expected := `["compose",["Hom","f",["Ob","X"],["Ob","Y"]],["Hom","g",["Ob","Y"],["Ob","Z"]]]`
	assert.Equal(t, expected, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	ns := MustAssemble(theories.Category)
	//
	x, _ := ns.Generator("Ob", Sym("X"))
	y, _ := ns.Generator("Ob", Sym("Y"))
	z, _ := ns.Generator("Ob", Sym("Z"))
	f, _ := ns.Generator("Hom", Sym("f"), x, y)
	g, _ := ns.Generator("Hom", Sym("g"), y, z)
	fg, _ := ns.Apply("compose", f, g)
	idX, _ := ns.Apply("id", x)
	//
	for _, e := range []*Expr{x, f, fg, idX} {
		data, err := ToJSON(e)
		require.NoError(t, err)
		//
		back, err := FromJSON(ns, data, JSONOptions{Symbols: true})
		require.NoError(t, err)
		//
		assert.True(t, e.Equals(back), "round trip of %s", e)
	}
}

func TestJSONNumericLeaves(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	// Numeric leaves serialise as JSON numbers, not strings
	three, _ := ns.Generator("Elem", Num(3))
	four, _ := ns.Generator("Elem", Num(4))
	product, _ := ns.Apply("mtimes", three, four)
	//
	data, err := ToJSON(product)
	require.NoError(t, err)
	assert.Equal(t, `["mtimes",["Elem",3],["Elem",4]]`, string(data))
	//
	back, err := FromJSON(ns, data, JSONOptions{Symbols: true})
	require.NoError(t, err)
	assert.True(t, product.Equals(back))
}

func TestJSONSymbolsOption(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	sym, _ := ns.Generator("Elem", Sym("x"))
	str, _ := ns.Generator("Elem", Str("x"))
	// Both kinds serialise to the same wire text
	symData, _ := ToJSON(sym)
	strData, _ := ToJSON(str)
	assert.Equal(t, string(symData), string(strData))
	// The Symbols option determines how leaves come back
	back, err := FromJSON(ns, symData, JSONOptions{Symbols: true})
	require.NoError(t, err)
	assert.True(t, back.Equals(sym))
	assert.False(t, back.Equals(str))
	//
	back, err = FromJSON(ns, strData, JSONOptions{Symbols: false})
	require.NoError(t, err)
	assert.True(t, back.Equals(str))
}

func TestJSONUnknownConstructor(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	_, err := FromJSON(ns, []byte(`["mdivide",["Elem","x"],["Elem","y"]]`), JSONOptions{Symbols: true})
	//
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "mdivide", lookupErr.Name)
}

func TestJSONMalformed(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	for _, text := range []string{
		`[]`,                 // empty constructor array
		`"mtimes"`,           // bare leaf at top level
		`[42,["Elem","x"]]`,  // non-string constructor name
		`["Elem"]`,           // generator missing its value
		`["mtimes",["Elem"]]`, // nested generator missing its value
	} {
		_, err := FromJSON(ns, []byte(text), JSONOptions{Symbols: true})
		assert.Error(t, err, "decoding %s", text)
	}
}

func TestJSONStrictOption(t *testing.T) {
	ns := MustAssemble(theories.Category)
	// Composition whose intermediate objects disagree
	bad := `["compose",["Hom","f",["Ob","X"],["Ob","Y"]],["Hom","h",["Ob","Z"],["Ob","Z"]]]`
	// Non-strict decoding accepts it
	_, err := FromJSON(ns, []byte(bad), JSONOptions{Symbols: true})
	require.NoError(t, err)
	// Strict decoding reports the broken equation
	_, err = FromJSON(ns, []byte(bad), JSONOptions{Symbols: true, Strict: true})
	//
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "compose", domainErr.Op)
	// A compatible composition passes strictly
	good := `["compose",["Hom","f",["Ob","X"],["Ob","Y"]],["Hom","g",["Ob","Y"],["Ob","Z"]]]`
	//
	_, err = FromJSON(ns, []byte(good), JSONOptions{Symbols: true, Strict: true})
	assert.NoError(t, err)
}
