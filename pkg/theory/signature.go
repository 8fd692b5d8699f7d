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

// Param declares a single formal parameter, along with its (possibly
// dependent) sort.
type Param struct {
	Name string
	Sort SortExpr
}

// NewParam constructs a formal parameter declaration.
func NewParam(name string, sort SortExpr) Param {
	return Param{name, sort}
}

// SortConstructor declares a sort of the theory, e.g. Ob or Hom.  A sort may
// itself take term parameters, making it dependent: the sort Hom(A,B) is
// identified by its two object parameters.
type SortConstructor struct {
	// Name of this sort, unique within the assembled signature.
	Name string
	// Term parameters of this sort (empty for a simple sort).
	Params []Param
}

// Arity returns the number of term parameters of this sort.
func (p *SortConstructor) Arity() uint {
	return uint(len(p.Params))
}

// Equation declares an equality between two term expressions which must hold
// (up to structural equality) whenever the enclosing term constructor is
// invoked in strict mode.  For example, compose(f,g) requires
// proj(f,1) == proj(g,0), i.e. the codomain of f equals the domain of g.
type Equation struct {
	Lhs TermExpr
	Rhs TermExpr
}

func (p Equation) String() string {
	return p.Lhs.String() + " == " + p.Rhs.String()
}

// TermConstructor declares an operation of the theory which builds a new term
// from zero or more typed arguments.
type TermConstructor struct {
	// Name of this operation, unique within the assembled signature.
	Name string
	// Formal term parameters, in declaration order.
	Params []Param
	// Additional context parameters referenced by the parameter sorts (e.g.
	// the objects A,B,C implicit in compose).  These never appear as call
	// arguments; they document the dependencies of the parameter sorts.
	Context []Param
	// Result sort expression, whose arguments are term expressions over the
	// formal parameters.
	Result SortExpr
	// Equational side conditions, enforced only in strict mode.
	Equations []Equation
	// Variadic marks a binary operation which additionally accepts n>2
	// arguments via a left fold of its binary form.
	Variadic bool
}

// Arity returns the number of formal term parameters of this operation.
func (p *TermConstructor) Arity() uint {
	return uint(len(p.Params))
}

// ParamSorts returns the ordered parameter sort pattern of this operation,
// i.e. the sort constructor name of each formal parameter.
func (p *TermConstructor) ParamSorts() []string {
	sorts := make([]string, len(p.Params))
	//
	for i, param := range p.Params {
		sorts[i] = param.Sort.Sort
	}
	//
	return sorts
}

// Signature is a complete declaration of an algebraic theory: an ordered
// sequence of sort constructors and term constructors, optionally inheriting
// the constructors of zero or more included signatures.  Signatures are
// immutable once built (see Builder).
type Signature struct {
	// Name of this theory.
	name string
	// Included (parent) signatures, whose constructors are inherited in
	// declaration order.
	includes []*Signature
	// Sort constructors declared directly by this signature.
	sorts []SortConstructor
	// Term constructors declared directly by this signature.
	terms []TermConstructor
}

// Name returns the name of this theory.
func (p *Signature) Name() string {
	return p.name
}

// Includes returns the signatures included by this signature.
func (p *Signature) Includes() []*Signature {
	return p.includes
}

// Sorts returns all sort constructors of this signature, with inherited
// constructors first, in declaration order.
func (p *Signature) Sorts() []SortConstructor {
	var sorts []SortConstructor
	//
	for _, inc := range p.includes {
		sorts = append(sorts, inc.Sorts()...)
	}
	//
	return append(sorts, p.sorts...)
}

// Terms returns all term constructors of this signature, with inherited
// constructors first, in declaration order.
func (p *Signature) Terms() []TermConstructor {
	var terms []TermConstructor
	//
	for _, inc := range p.includes {
		terms = append(terms, inc.Terms()...)
	}
	//
	return append(terms, p.terms...)
}

// Sort looks up a sort constructor by name, including inherited sorts.
func (p *Signature) Sort(name string) (SortConstructor, bool) {
	for _, s := range p.Sorts() {
		if s.Name == name {
			return s, true
		}
	}
	//
	return SortConstructor{}, false
}

// Term looks up a term constructor by name, including inherited terms.
func (p *Signature) Term(name string) (TermConstructor, bool) {
	for _, t := range p.Terms() {
		if t.Name == name {
			return t, true
		}
	}
	//
	return TermConstructor{}, false
}
