package syntax

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/gatlab/go-gat/pkg/theory/theories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The free monoid of strings under concatenation.
func concatModel() *Model {
	return NewModel("strings").
		Term("mtimes", func(args []any) (any, error) {
			var r string
			//
			for _, arg := range args {
				r += arg.(string)
			}
			//
			return r, nil
		}).
		Term("munit", func(args []any) (any, error) {
			return "", nil
		})
}

func TestEvaluateStringMonoid(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	x, _ := ns.Generator("Elem", Sym("x"))
	y, _ := ns.Generator("Elem", Sym("y"))
	z, _ := ns.Generator("Elem", Sym("z"))
	//
	env := NewEvaluation().
		Bind(x, "x").
		Bind(y, "y").
		Bind(z, "z")
	//
	model := concatModel()
	//
	yz, _ := ns.Apply("mtimes", y, z)
	xyz, _ := ns.Apply("mtimes", x, yz)
	//
	value, err := Evaluate(model, xyz, env)
	require.NoError(t, err)
	assert.Equal(t, "xyz", value)
	// Units evaluate to the model's unit
	e, _ := ns.Apply("munit")
	xe, _ := ns.Apply("mtimes", x, e)
	//
	value, err = Evaluate(model, xe, env)
	require.NoError(t, err)
	assert.Equal(t, "x", value)
}

func TestEvaluateHomomorphism(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	x, _ := ns.Generator("Elem", Sym("x"))
	y, _ := ns.Generator("Elem", Sym("y"))
	z, _ := ns.Generator("Elem", Sym("z"))
	//
	env := NewEvaluation().Bind(x, "x").Bind(y, "y").Bind(z, "z")
	model := concatModel()
	// Structurally distinct bracketings evaluate to the same value in any
	// lawful model.
	xy, _ := ns.Apply("mtimes", x, y)
	yz, _ := ns.Apply("mtimes", y, z)
	left, _ := ns.Apply("mtimes", xy, z)
	right, _ := ns.Apply("mtimes", x, yz)
	//
	require.False(t, left.Equals(right))
	//
	lv, err := Evaluate(model, left, env)
	require.NoError(t, err)
	rv, err := Evaluate(model, right, env)
	require.NoError(t, err)
	//
	assert.Equal(t, lv, rv)
}

func TestEvaluateStructurallyEqualGenerators(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	// Bindings resolve by structural equality, not node identity.
	x1, _ := ns.Generator("Elem", Sym("x"))
	x2, _ := ns.Generator("Elem", Sym("x"))
	//
	env := NewEvaluation().Bind(x1, "bound")
	//
	value, err := Evaluate(concatModel(), x2, env)
	require.NoError(t, err)
	assert.Equal(t, "bound", value)
}

func TestEvaluateResolutionOrder(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	x, _ := ns.Generator("Elem", Sym("x"))
	y, _ := ns.Generator("Elem", Sym("y"))
	// Model falls back to naming generators by their leaf
	model := concatModel().
		Generator("Elem", func(leaf Leaf, typeArgs []any) (any, error) {
			return "model:" + leaf.String(), nil
		})
	// Per-sort environment function sits between exact bindings and the
	// model fallback.
	env := NewEvaluation().
		Bind(x, "exact:x").
		BindSort("Elem", func(e *Expr) (any, error) {
			leaf, _ := e.Leaf()
			return "sort:" + leaf.String(), nil
		})
	//
	vx, err := Evaluate(model, x, env)
	require.NoError(t, err)
	assert.Equal(t, "exact:x", vx)
	//
	vy, err := Evaluate(model, y, env)
	require.NoError(t, err)
	assert.Equal(t, "sort:y", vy)
	// Without the environment, the model's own interpretation applies
	vz, err := Evaluate(model, y, nil)
	require.NoError(t, err)
	assert.Equal(t, "model:y", vz)
}

func TestEvaluateLookupErrors(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	x, _ := ns.Generator("Elem", Sym("x"))
	xx, _ := ns.Apply("mtimes", x, x)
	// No generator interpretation anywhere
	_, err := Evaluate(concatModel(), x, nil)
	//
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "Elem", lookupErr.Name)
	// No term interpretation
	empty := NewModel("empty").
		Generator("Elem", func(leaf Leaf, typeArgs []any) (any, error) {
			return leaf.String(), nil
		})
	//
	_, err = Evaluate(empty, xx, nil)
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "mtimes", lookupErr.Name)
}

func TestEvaluateFieldMonoid(t *testing.T) {
	ns := MustAssemble(theories.Monoid)
	//
	three, _ := ns.Generator("Elem", Num(3))
	four, _ := ns.Generator("Elem", Num(4))
	product, _ := ns.Apply("mtimes", three, four)
	// The multiplicative monoid of the BLS12-377 scalar field
	model := NewModel("fr").
		Term("mtimes", func(args []any) (any, error) {
			var r fr.Element
			//
			r.SetOne()
			//
			for _, arg := range args {
				elem := arg.(fr.Element)
				r.Mul(&r, &elem)
			}
			//
			return r, nil
		}).
		Generator("Elem", func(leaf Leaf, typeArgs []any) (any, error) {
			var elem fr.Element
			//
			if _, err := elem.SetString(leaf.String()); err != nil {
				return nil, err
			}
			//
			return elem, nil
		})
	//
	value, err := Evaluate(model, product, nil)
	require.NoError(t, err)
	//
	var twelve fr.Element
	twelve.SetUint64(12)
	//
	assert.Equal(t, twelve, value)
}

func TestNamespaceAsModel(t *testing.T) {
	// Rebuilding free syntax inside a normalising syntax over the same
	// signature yields canonical forms.
	free := MustAssemble(theories.Monoid)
	norm := normalisingMonoid(true)
	//
	x, _ := free.Generator("Elem", Sym("x"))
	y, _ := free.Generator("Elem", Sym("y"))
	e, _ := free.Apply("munit")
	//
	xe, _ := free.Apply("mtimes", x, e)
	xey, _ := free.Apply("mtimes", xe, y)
	//
	value, err := Evaluate(norm.Model(), xey, nil)
	require.NoError(t, err)
	//
	result, ok := value.(*Expr)
	require.True(t, ok)
	//
	nx, _ := norm.Generator("Elem", Sym("x"))
	ny, _ := norm.Generator("Elem", Sym("y"))
	nxy, _ := norm.Apply("mtimes", nx, ny)
	//
	assert.True(t, result.Equals(nxy))
}

func TestNamespaceAsModelTypeArgs(t *testing.T) {
	// Generator rebuilding carries sort parameters across
	src := MustAssemble(theories.Category)
	dst := MustAssemble(theories.Category, WithName("Copy"))
	//
	a, _ := src.Generator("Ob", Sym("A"))
	b, _ := src.Generator("Ob", Sym("B"))
	f, _ := src.Generator("Hom", Sym("f"), a, b)
	//
	value, err := Evaluate(dst.Model(), f, nil)
	require.NoError(t, err)
	//
	result, ok := value.(*Expr)
	require.True(t, ok)
	assert.True(t, result.Equals(f))
	assert.True(t, result.TypeArg(0).Equals(a))
}
