// Copyright the go-gat authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package syntax

import (
	"fmt"

	"github.com/gatlab/go-gat/pkg/util/hash"
)

// Model is a concrete interpretation of a signature: one same-named,
// same-arity function per term constructor, over arbitrary carrier values,
// plus (optionally) one generator interpreter per sort.  Models are the
// codomains of functorial evaluation; the system does not verify that a
// model's functions satisfy the theory's laws.
type Model struct {
	name string
	// Term constructor interpretations, by operation name.
	terms map[string]func([]any) (any, error)
	// Generator interpretations, by sort name.
	gens map[string]func(Leaf, []any) (any, error)
}

// NewModel constructs an empty model with a given name.
func NewModel(name string) *Model {
	return &Model{
		name:  name,
		terms: make(map[string]func([]any) (any, error)),
		gens:  make(map[string]func(Leaf, []any) (any, error)),
	}
}

// Name returns the name of this model.
func (p *Model) Name() string {
	return p.name
}

// Term registers the interpretation of a term constructor, returning the
// model for chaining.
func (p *Model) Term(name string, fn func([]any) (any, error)) *Model {
	p.terms[name] = fn
	return p
}

// Generator registers the interpretation of a sort's generators, returning
// the model for chaining.
func (p *Model) Generator(sortName string, fn func(Leaf, []any) (any, error)) *Model {
	p.gens[sortName] = fn
	return p
}

// Evaluation supplies per-call generator mappings for Evaluate.
type Evaluation struct {
	// Generators maps specific generator nodes, compared by structural
	// equality rather than identity, to their values in the codomain.
	Generators *hash.Map[*Expr, any]
	// GeneratorTerms interprets any generator of a given sort, keyed by the
	// node's producing sort.
	GeneratorTerms map[string]func(*Expr) (any, error)
}

// NewEvaluation constructs an empty evaluation environment.
func NewEvaluation() *Evaluation {
	return &Evaluation{
		Generators:     hash.NewMap[*Expr, any](16),
		GeneratorTerms: make(map[string]func(*Expr) (any, error)),
	}
}

// Bind maps one generator node to its value in the codomain, returning the
// environment for chaining.
func (p *Evaluation) Bind(gen *Expr, value any) *Evaluation {
	p.Generators.Insert(gen, value)
	return p
}

// BindSort maps every generator of a given sort through a function of the
// generator node, returning the environment for chaining.
func (p *Evaluation) BindSort(sortName string, fn func(*Expr) (any, error)) *Evaluation {
	p.GeneratorTerms[sortName] = fn
	return p
}

// Evaluate walks an expression tree and reconstructs it inside a model,
// yielding a homomorphism of the free term algebra into the target (provided
// the target's functions satisfy the theory's laws).  Generator nodes resolve
// through the environment first: an exact node mapping, then a per-sort
// generator function, then the model's own generator interpretation.
// Operation nodes evaluate every sub-expression recursively, pass raw leaf
// arguments through unchanged, and invoke the model's same-named term
// function.  A missing interpretation is a lookup error.  Evaluation is pure
// and unmemoised: a shared sub-expression is evaluated once per occurrence.
func Evaluate(model *Model, e *Expr, env *Evaluation) (any, error) {
	if e.IsGenerator() {
		return evaluateGenerator(model, e, env)
	}
	// Operation node: evaluate arguments recursively
	args := make([]any, len(e.Args()))
	//
	for i, arg := range e.Args() {
		if sub := arg.AsExpr(); sub != nil {
			value, err := Evaluate(model, sub, env)
			if err != nil {
				return nil, err
			}
			//
			args[i] = value
		} else {
			// Raw leaves pass through unchanged
			args[i] = *arg.AsLeaf()
		}
	}
	// Invoke same-named term function in the codomain
	fn, ok := model.terms[e.Op()]
	if !ok {
		return nil, &LookupError{model.name, e.Op()}
	}
	//
	return fn(args)
}

func evaluateGenerator(model *Model, e *Expr, env *Evaluation) (any, error) {
	// Exact node mapping first
	if env != nil && env.Generators != nil {
		if value, ok := env.Generators.Get(e); ok {
			return value, nil
		}
	}
	// Then sort-keyed generator function
	if env != nil {
		if fn, ok := env.GeneratorTerms[e.Sort()]; ok {
			return fn(e)
		}
	}
	// Else fall through to structural reconstruction
	fn, ok := model.gens[e.Sort()]
	if !ok {
		return nil, &LookupError{model.name, e.Sort()}
	}
	//
	typeArgs := make([]any, len(e.TypeArgs()))
	//
	for i, ta := range e.TypeArgs() {
		value, err := Evaluate(model, ta, env)
		if err != nil {
			return nil, err
		}
		//
		typeArgs[i] = value
	}
	//
	leaf, _ := e.Leaf()
	//
	return fn(leaf, typeArgs)
}

// Model adapts this namespace itself into an evaluation codomain, so that
// expressions of one syntax can be functorially rebuilt inside another
// (possibly normalising) syntax over the same signature.
func (p *Namespace) Model() *Model {
	m := NewModel(p.name)
	//
	for _, tc := range p.sig.Terms() {
		op := tc.Name
		//
		m.Term(op, func(args []any) (any, error) {
			converted, err := asArgs(args)
			if err != nil {
				return nil, err
			}
			//
			return p.Apply(op, converted...)
		})
	}
	//
	for _, sc := range p.sig.Sorts() {
		sortName := sc.Name
		//
		m.Generator(sortName, func(leaf Leaf, typeArgs []any) (any, error) {
			converted := make([]*Expr, len(typeArgs))
			//
			for i, ta := range typeArgs {
				expr, ok := ta.(*Expr)
				if !ok {
					return nil, fmt.Errorf("sort parameter %d of %s generator is not an expression", i, sortName)
				}
				//
				converted[i] = expr
			}
			//
			return p.Generator(sortName, leaf, converted...)
		})
	}
	//
	return m
}

// asArgs converts evaluated values back into expression arguments, which must
// each be an expression or a leaf.
func asArgs(values []any) ([]Arg, error) {
	args := make([]Arg, len(values))
	//
	for i, value := range values {
		switch value := value.(type) {
		case *Expr:
			args[i] = value
		case Leaf:
			args[i] = value
		default:
			return nil, fmt.Errorf("value %v is neither an expression nor a leaf", value)
		}
	}
	//
	return args, nil
}
