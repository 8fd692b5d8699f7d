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

	"github.com/gatlab/go-gat/pkg/theory"
)

// synthesizeGenerator produces the default generator-introduction function of
// a sort: it accepts a raw leaf value plus one type argument per declared
// sort parameter, and builds a generator-tagged node.
func (p *Namespace) synthesizeGenerator(sc theory.SortConstructor) GenFunc {
	return func(value Leaf, typeArgs ...*Expr) (*Expr, error) {
		if uint(len(typeArgs)) != sc.Arity() {
			return nil, &ArityError{sc.Name, sc.Arity(), uint(len(typeArgs))}
		}
		//
		return NewExpr(sc.Name, sc.Name, true, []Arg{value}, typeArgs), nil
	}
}

// synthesizeTerm produces the default term-building function of a term
// constructor.  The synthesized function checks arity, enforces the declared
// equations when invoked strictly, computes the node's type arguments by
// substituting the actual arguments into the declared result sort, and builds
// a fresh node.  Construction is atomic: on any failure no node exists.
func (p *Namespace) synthesizeTerm(tc theory.TermConstructor) TermFunc {
	return func(strict bool, args ...Arg) (*Expr, error) {
		if uint(len(args)) != tc.Arity() {
			return nil, &ArityError{tc.Name, tc.Arity(), uint(len(args))}
		}
		// Bind formal parameters to actual arguments
		binding := make(map[string]Arg, len(args))
		//
		for i, param := range tc.Params {
			binding[param.Name] = args[i]
		}
		// Enforce equations (strict mode only)
		if strict {
			for _, eq := range tc.Equations {
				lhs, err := p.substitute(eq.Lhs, binding)
				if err != nil {
					return nil, err
				}
				//
				rhs, err := p.substitute(eq.Rhs, binding)
				if err != nil {
					return nil, err
				}
				//
				if !lhs.Equals(rhs) {
					return nil, &DomainError{tc.Name, args, eq.String()}
				}
			}
		}
		// Compute type arguments from the declared result sort
		typeArgs := make([]*Expr, len(tc.Result.Args))
		//
		for i, arg := range tc.Result.Args {
			ta, err := p.substitute(arg, binding)
			if err != nil {
				return nil, err
			}
			//
			typeArgs[i] = ta
		}
		//
		return NewExpr(tc.Result.Sort, tc.Name, false, args, typeArgs), nil
	}
}

// synthesizeFold wraps a binary term function with the signature-level
// variadic default: two arguments go straight to the binary form, whilst n>2
// arguments fold left through the *resolved* binary operation of this
// namespace, so that any override applies at every step.
func (p *Namespace) synthesizeFold(tc theory.TermConstructor, binary TermFunc) TermFunc {
	return func(strict bool, args ...Arg) (*Expr, error) {
		if len(args) == 2 {
			return binary(strict, args...)
		} else if len(args) < 2 {
			return nil, &ArityError{tc.Name, 2, uint(len(args))}
		}
		// Left fold through the resolved binary operation
		acc := args[0]
		//
		for _, next := range args[1:] {
			e, err := p.invoke(tc.Name, strict, []Arg{acc, next})
			//
			if err != nil {
				return nil, err
			}
			//
			acc = e
		}
		//
		return acc.AsExpr(), nil
	}
}

// substitute evaluates a symbolic term expression against a binding of formal
// parameters to actual arguments, yielding a concrete expression.  Parameter
// references resolve through the binding; projections extract a computed sort
// parameter of the bound expression; applications invoke the corresponding
// resolved constructor of this namespace, which is how nested (possibly
// nullary) constructor references in a result sort are resolved.
func (p *Namespace) substitute(e theory.TermExpr, binding map[string]Arg) (*Expr, error) {
	switch {
	case e.AsVar() != nil:
		name := e.AsVar().Name
		//
		arg, ok := binding[name]
		if !ok {
			return nil, fmt.Errorf("unbound parameter %q", name)
		} else if expr := arg.AsExpr(); expr != nil {
			return expr, nil
		}
		//
		return nil, fmt.Errorf("parameter %q is bound to a raw value, not an expression", name)
	case e.AsProj() != nil:
		proj := e.AsProj()
		//
		expr, err := p.substitute(proj.Arg, binding)
		if err != nil {
			return nil, err
		} else if proj.Index >= uint(len(expr.TypeArgs())) {
			return nil, fmt.Errorf("projection %d out of bounds for %s", proj.Index, expr)
		}
		//
		return expr.TypeArg(proj.Index), nil
	case e.AsApp() != nil:
		app := e.AsApp()
		//
		args := make([]Arg, len(app.Args))
		//
		for i, arg := range app.Args {
			sub, err := p.substitute(arg, binding)
			if err != nil {
				return nil, err
			}
			//
			args[i] = sub
		}
		//
		return p.Apply(app.Op, args...)
	default:
		panic("unreachable")
	}
}
