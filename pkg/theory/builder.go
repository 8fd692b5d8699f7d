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
package theory

import (
	"fmt"
)

// Builder provides a fluent interface for declaring a signature.  Errors
// arising during declaration (duplicate names, references to unknown sorts or
// parameters, malformed return sorts) are accumulated and reported by Build,
// so declarations can be chained without intermediate checks.
type Builder struct {
	sig  *Signature
	errs []error
}

// New constructs a builder for a signature with a given theory name.
func New(name string) *Builder {
	return &Builder{&Signature{name: name}, nil}
}

// Include inherits all constructors of a given signature, in declaration
// order ahead of anything declared directly on this builder.
func (p *Builder) Include(sig *Signature) *Builder {
	p.sig.includes = append(p.sig.includes, sig)
	return p
}

// Sort declares a new sort constructor with zero or more term parameters.
func (p *Builder) Sort(name string, params ...Param) *Builder {
	if p.nameTaken(name) {
		p.errorf("duplicate constructor name %q", name)
	}
	// Check parameter sorts are declared
	for _, param := range params {
		if _, ok := p.lookupSort(param.Sort.Sort); !ok {
			p.errorf("sort %q parameter %q has unknown sort %q", name, param.Name, param.Sort.Sort)
		}
	}
	//
	p.sig.sorts = append(p.sig.sorts, SortConstructor{name, params})
	//
	return p
}

// TermOption configures one aspect of a term constructor declaration.
type TermOption func(*TermConstructor)

// Takes declares the formal term parameters of an operation.
func Takes(params ...Param) TermOption {
	return func(tc *TermConstructor) { tc.Params = params }
}

// InContext declares the implicit context parameters referenced by the
// parameter sorts of an operation.
func InContext(params ...Param) TermOption {
	return func(tc *TermConstructor) { tc.Context = params }
}

// Returns declares the result sort of an operation, applied to term
// expressions over the formal parameters.
func Returns(sort string, args ...TermExpr) TermOption {
	return func(tc *TermConstructor) { tc.Result = SortOf(sort, args...) }
}

// Requires declares an equational side condition, enforced in strict mode.
func Requires(lhs, rhs TermExpr) TermOption {
	return func(tc *TermConstructor) {
		tc.Equations = append(tc.Equations, Equation{lhs, rhs})
	}
}

// Variadic marks a binary operation as additionally accepting n>2 arguments,
// via a left fold of its binary form.
func Variadic() TermOption {
	return func(tc *TermConstructor) { tc.Variadic = true }
}

// Term declares a new term constructor.
func (p *Builder) Term(name string, opts ...TermOption) *Builder {
	var tc = TermConstructor{Name: name}
	//
	for _, opt := range opts {
		opt(&tc)
	}
	//
	p.checkTerm(&tc)
	//
	p.sig.terms = append(p.sig.terms, tc)
	//
	return p
}

// Build finalises the signature, reporting the first declaration error (if
// any arose).
func (p *Builder) Build() (*Signature, error) {
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	//
	return p.sig, nil
}

// MustBuild finalises the signature, panicking on any declaration error.
// Intended for statically known signatures built during initialisation.
func (p *Builder) MustBuild() *Signature {
	sig, err := p.Build()
	if err != nil {
		panic(err)
	}
	//
	return sig
}

// ===================================================================
// Validation
// ===================================================================

func (p *Builder) checkTerm(tc *TermConstructor) {
	if p.nameTaken(tc.Name) {
		p.errorf("duplicate constructor name %q", tc.Name)
	}
	// Check result sort is declared and fully applied
	if sc, ok := p.lookupSort(tc.Result.Sort); !ok {
		p.errorf("operation %q returns unknown sort %q", tc.Name, tc.Result.Sort)
	} else if uint(len(tc.Result.Args)) != sc.Arity() {
		p.errorf("operation %q returns %s with %d of %d sort parameters",
			tc.Name, tc.Result.Sort, len(tc.Result.Args), sc.Arity())
	}
	// Check parameter sorts are declared
	for _, param := range tc.Params {
		if _, ok := p.lookupSort(param.Sort.Sort); !ok {
			p.errorf("operation %q parameter %q has unknown sort %q", tc.Name, param.Name, param.Sort.Sort)
		}
	}
	// Check term expressions of the result and equations
	for _, arg := range tc.Result.Args {
		p.checkTermExpr(tc, arg)
	}
	//
	for _, eq := range tc.Equations {
		p.checkTermExpr(tc, eq.Lhs)
		p.checkTermExpr(tc, eq.Rhs)
	}
	// Check variadic form is binary
	if tc.Variadic && tc.Arity() != 2 {
		p.errorf("variadic operation %q must be binary, has arity %d", tc.Name, tc.Arity())
	}
}

// Check every parameter referenced by a term expression is declared, every
// applied operation exists with matching arity, and every projection off a
// directly named parameter is within bounds.
func (p *Builder) checkTermExpr(tc *TermConstructor, e TermExpr) {
	switch {
	case e.AsVar() != nil:
		name := e.AsVar().Name
		if _, ok := p.lookupParam(tc, name); !ok {
			p.errorf("operation %q references undeclared parameter %q", tc.Name, name)
		}
	case e.AsProj() != nil:
		proj := e.AsProj()
		p.checkTermExpr(tc, proj.Arg)
		// Bounds check where the projected sort is statically known
		if v := proj.Arg.AsVar(); v != nil {
			if param, ok := p.lookupParam(tc, v.Name); ok {
				if sc, ok := p.lookupSort(param.Sort.Sort); ok && proj.Index >= sc.Arity() {
					p.errorf("operation %q projects parameter %d of %s, which has %d",
						tc.Name, proj.Index, param.Sort.Sort, sc.Arity())
				}
			}
		}
	case e.AsApp() != nil:
		app := e.AsApp()
		//
		if applied, ok := p.lookupTerm(app.Op); !ok {
			p.errorf("operation %q applies unknown operation %q", tc.Name, app.Op)
		} else if uint(len(app.Args)) != applied.Arity() {
			p.errorf("operation %q applies %q with %d of %d arguments",
				tc.Name, app.Op, len(app.Args), applied.Arity())
		}
		//
		for _, arg := range app.Args {
			p.checkTermExpr(tc, arg)
		}
	}
}

func (p *Builder) lookupSort(name string) (SortConstructor, bool) {
	for _, s := range p.sig.Sorts() {
		if s.Name == name {
			return s, true
		}
	}
	//
	return SortConstructor{}, false
}

func (p *Builder) lookupTerm(name string) (TermConstructor, bool) {
	for _, t := range p.sig.Terms() {
		if t.Name == name {
			return t, true
		}
	}
	//
	return TermConstructor{}, false
}

func (p *Builder) lookupParam(tc *TermConstructor, name string) (Param, bool) {
	for _, param := range tc.Params {
		if param.Name == name {
			return param, true
		}
	}
	//
	for _, param := range tc.Context {
		if param.Name == name {
			return param, true
		}
	}
	//
	return Param{}, false
}

func (p *Builder) nameTaken(name string) bool {
	_, sok := p.lookupSort(name)
	_, tok := p.lookupTerm(name)
	//
	return sok || tok
}

func (p *Builder) errorf(format string, args ...any) {
	p.errs = append(p.errs, fmt.Errorf(format, args...))
}
