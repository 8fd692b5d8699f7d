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
	"strings"
)

// TermExpr is a symbolic expression over the formal parameters of a
// constructor.  Term expressions occur in three places within a signature:
// the arguments of a dependent sort expression, the return-sort expression of
// a term constructor, and the two sides of an equation.  A TermExpr is either
// a parameter reference, a projection of a sort parameter out of another term
// expression (e.g. the codomain of a morphism parameter), or an application
// of another term constructor (e.g. a nullary monoidal unit).
type TermExpr interface {
	// AsVar checks whether this term expression is a parameter reference and,
	// if so, returns it.  Otherwise, it returns nil.
	AsVar() *VarExpr
	// AsProj checks whether this term expression is a projection and, if so,
	// returns it.  Otherwise, it returns nil.
	AsProj() *ProjExpr
	// AsApp checks whether this term expression is a constructor application
	// and, if so, returns it.  Otherwise, it returns nil.
	AsApp() *AppExpr
	// Vars appends the names of all parameters referenced within this term
	// expression.
	Vars(set map[string]bool)
	//
	String() string
}

// ===================================================================
// Variable
// ===================================================================

// VarExpr references a formal parameter of the enclosing constructor by name.
type VarExpr struct {
	Name string
}

var _ TermExpr = (*VarExpr)(nil)

// Var constructs a reference to a formal parameter.
func Var(name string) TermExpr {
	return &VarExpr{name}
}

// AsVar returns the given variable.
func (p *VarExpr) AsVar() *VarExpr { return p }

// AsProj returns nil for a variable.
func (p *VarExpr) AsProj() *ProjExpr { return nil }

// AsApp returns nil for a variable.
func (p *VarExpr) AsApp() *AppExpr { return nil }

// Vars records the referenced parameter.
func (p *VarExpr) Vars(set map[string]bool) { set[p.Name] = true }

func (p *VarExpr) String() string { return p.Name }

// ===================================================================
// Projection
// ===================================================================

// ProjExpr extracts the ith sort parameter of the expression denoted by Arg.
// For example, given a morphism parameter f of sort Hom(A,B), Proj(Var("f"),1)
// denotes its codomain B.
type ProjExpr struct {
	Arg   TermExpr
	Index uint
}

var _ TermExpr = (*ProjExpr)(nil)

// Proj constructs a projection of the ith sort parameter of a term.
func Proj(arg TermExpr, index uint) TermExpr {
	return &ProjExpr{arg, index}
}

// AsVar returns nil for a projection.
func (p *ProjExpr) AsVar() *VarExpr { return nil }

// AsProj returns the given projection.
func (p *ProjExpr) AsProj() *ProjExpr { return p }

// AsApp returns nil for a projection.
func (p *ProjExpr) AsApp() *AppExpr { return nil }

// Vars records parameters referenced by the projected term.
func (p *ProjExpr) Vars(set map[string]bool) { p.Arg.Vars(set) }

func (p *ProjExpr) String() string {
	return fmt.Sprintf("proj(%s,%d)", p.Arg, p.Index)
}

// ===================================================================
// Application
// ===================================================================

// AppExpr applies another term constructor of the enclosing signature to zero
// or more term expressions.  A nullary application (e.g. munit()) is how a
// return-sort expression can reference a constant object of the theory.
type AppExpr struct {
	Op   string
	Args []TermExpr
}

var _ TermExpr = (*AppExpr)(nil)

// App constructs an application of a named term constructor.
func App(op string, args ...TermExpr) TermExpr {
	return &AppExpr{op, args}
}

// AsVar returns nil for an application.
func (p *AppExpr) AsVar() *VarExpr { return nil }

// AsProj returns nil for an application.
func (p *AppExpr) AsProj() *ProjExpr { return nil }

// AsApp returns the given application.
func (p *AppExpr) AsApp() *AppExpr { return p }

// Vars records parameters referenced by any argument.
func (p *AppExpr) Vars(set map[string]bool) {
	for _, arg := range p.Args {
		arg.Vars(set)
	}
}

func (p *AppExpr) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Op)
	builder.WriteString("(")
	//
	for i, arg := range p.Args {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ===================================================================
// Sort Expression
// ===================================================================

// SortExpr is a sort constructor applied to zero or more term expressions,
// e.g. Hom(proj(f,0), proj(g,1)).  It describes the (possibly dependent) sort
// of a parameter or of a constructor's result.
type SortExpr struct {
	// Name of the sort constructor.
	Sort string
	// Term arguments of the sort, one per sort parameter.
	Args []TermExpr
}

// SortOf constructs a sort expression.
func SortOf(sort string, args ...TermExpr) SortExpr {
	return SortExpr{sort, args}
}

func (p SortExpr) String() string {
	if len(p.Args) == 0 {
		return p.Sort
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(p.Sort)
	builder.WriteString("(")
	//
	for i, arg := range p.Args {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
