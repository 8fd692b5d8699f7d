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
	"math/big"
	"strings"

	"github.com/gatlab/go-gat/pkg/util/hash"
)

// Arg is a single argument of an expression node: either a nested expression
// (for an operation argument) or a raw leaf value (for a generator).
type Arg interface {
	// AsExpr checks whether this argument is a nested expression and, if so,
	// returns it.  Otherwise, it returns nil.
	AsExpr() *Expr
	// AsLeaf checks whether this argument is a raw leaf value and, if so,
	// returns it.  Otherwise, it returns nil.
	AsLeaf() *Leaf
	// Hash returns a hashcode consistent with structural equality.
	Hash() uint64
	//
	String() string
}

// ===================================================================
// Leaf
// ===================================================================

type leafKind uint8

const (
	leafSymbol leafKind = iota
	leafString
	leafNumber
)

// Leaf is a raw value introduced by a generator, or passed through an
// operation unchanged.  A leaf is a symbolic identifier, a plain string or an
// integer.  Symbols and plain strings carry the same text but are distinct
// values; serialisation options decide which of the two a wire string
// becomes.
type Leaf struct {
	kind leafKind
	name string
	num  *big.Int
}

var _ Arg = Leaf{}
var _ hash.Hasher[Leaf] = Leaf{}

// Sym constructs a symbolic identifier leaf.
func Sym(name string) Leaf {
	return Leaf{leafSymbol, name, nil}
}

// Str constructs a plain string leaf.
func Str(value string) Leaf {
	return Leaf{leafString, value, nil}
}

// Num constructs an integer leaf.
func Num(value int64) Leaf {
	return Leaf{leafNumber, "", big.NewInt(value)}
}

// BigNum constructs an integer leaf from a big integer.
func BigNum(value *big.Int) Leaf {
	return Leaf{leafNumber, "", value}
}

// IsSymbol checks whether this leaf is a symbolic identifier.
func (p Leaf) IsSymbol() bool { return p.kind == leafSymbol }

// IsString checks whether this leaf is a plain string.
func (p Leaf) IsString() bool { return p.kind == leafString }

// IsNumber checks whether this leaf is an integer.
func (p Leaf) IsNumber() bool { return p.kind == leafNumber }

// Name returns the text of a symbol or string leaf.
func (p Leaf) Name() string { return p.name }

// Number returns the value of an integer leaf, or nil otherwise.
func (p Leaf) Number() *big.Int { return p.num }

// AsExpr returns nil for a leaf.
func (p Leaf) AsExpr() *Expr { return nil }

// AsLeaf returns the given leaf.
func (p Leaf) AsLeaf() *Leaf { return &p }

// Equals checks structural equality of two leaves: same kind, same value.
func (p Leaf) Equals(other Leaf) bool {
	if p.kind != other.kind {
		return false
	} else if p.kind == leafNumber {
		return p.num.Cmp(other.num) == 0
	}
	//
	return p.name == other.name
}

// Hash returns a hashcode consistent with Equals.
func (p Leaf) Hash() uint64 {
	h := hash.Fold(uint64(p.kind))
	//
	if p.kind == leafNumber {
		return hash.FoldString(h, p.num.String())
	}
	//
	return hash.FoldString(h, p.name)
}

func (p Leaf) String() string {
	if p.kind == leafNumber {
		return p.num.String()
	}
	//
	return p.name
}

// ===================================================================
// Expression
// ===================================================================

// Expr is a node of the free term algebra: an operation applied to ordered
// arguments, or a generator introduced from a raw leaf value.  Every node
// carries the term arguments it was built from together with the computed
// sort parameters (type arguments) of its sort, e.g. the domain and codomain
// of a morphism.  Nodes are immutable and only ever built through the
// synthesized constructors of a Namespace; equality and hashing are
// structural throughout.
type Expr struct {
	// Sort constructor which produced this node.
	sort string
	// Term constructor which produced this node; equal to the sort name for
	// generator nodes, which are nevertheless tagged distinctly via the
	// generator flag.
	op string
	// Generator nodes carry a single raw leaf argument.
	generator bool
	// Ordered arguments: sub-expressions, or a raw leaf for a generator.
	args []Arg
	// Computed sort parameters, one per parameter of the sort constructor.
	typeArgs []*Expr
}

var _ Arg = (*Expr)(nil)
var _ hash.Hasher[*Expr] = (*Expr)(nil)

// NewExpr constructs a raw expression node.  It always succeeds and performs
// no domain validation beyond what the caller already computed; clients build
// nodes through a Namespace instead.
func NewExpr(sort, op string, generator bool, args []Arg, typeArgs []*Expr) *Expr {
	return &Expr{sort, op, generator, args, typeArgs}
}

// Sort returns the name of the sort constructor which produced this node.
func (p *Expr) Sort() string { return p.sort }

// Op returns the name of the term constructor which produced this node, or
// the sort name for a generator.
func (p *Expr) Op() string { return p.op }

// IsGenerator checks whether this node is a generator.
func (p *Expr) IsGenerator() bool { return p.generator }

// Args returns the ordered arguments of this node.
func (p *Expr) Args() []Arg { return p.args }

// Arg returns the ith argument of this node.
func (p *Expr) Arg(i uint) Arg { return p.args[i] }

// Leaf returns the raw value of a generator node, or false otherwise.
func (p *Expr) Leaf() (Leaf, bool) {
	if p.generator && len(p.args) == 1 {
		if leaf := p.args[0].AsLeaf(); leaf != nil {
			return *leaf, true
		}
	}
	//
	return Leaf{}, false
}

// TypeArgs returns the computed sort parameters of this node.
func (p *Expr) TypeArgs() []*Expr { return p.typeArgs }

// TypeArg returns the ith computed sort parameter of this node.  The index is
// bounded by the arity of the node's sort constructor at every synthesized
// call site.
func (p *Expr) TypeArg(i uint) *Expr { return p.typeArgs[i] }

// AsExpr returns the given expression.
func (p *Expr) AsExpr() *Expr { return p }

// AsLeaf returns nil for an expression.
func (p *Expr) AsLeaf() *Leaf { return nil }

// Equals checks structural equality of two expressions: same producing
// constructor, equal arguments and equal type arguments, recursively.
func (p *Expr) Equals(other *Expr) bool {
	if p == other {
		return true
	} else if p.sort != other.sort || p.op != other.op || p.generator != other.generator {
		return false
	} else if len(p.args) != len(other.args) || len(p.typeArgs) != len(other.typeArgs) {
		return false
	}
	//
	for i, arg := range p.args {
		if !equalArg(arg, other.args[i]) {
			return false
		}
	}
	//
	for i, ta := range p.typeArgs {
		if !ta.Equals(other.typeArgs[i]) {
			return false
		}
	}
	//
	return true
}

// Hash returns a hashcode consistent with Equals.
func (p *Expr) Hash() uint64 {
	var gen uint64
	//
	if p.generator {
		gen = 1
	}
	//
	h := hash.Fold(gen)
	h = hash.FoldString(h, p.sort)
	h = hash.FoldString(h, p.op)
	//
	hashes := []uint64{h}
	//
	for _, arg := range p.args {
		hashes = append(hashes, arg.Hash())
	}
	//
	for _, ta := range p.typeArgs {
		hashes = append(hashes, ta.Hash())
	}
	//
	return hash.Fold(hashes...)
}

// String renders this expression in prefix form, e.g. compose(f,g).
// Generator nodes print only their raw leaf value.
func (p *Expr) String() string {
	if p.generator {
		return p.args[0].String()
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(p.op)
	builder.WriteString("(")
	//
	for i, arg := range p.args {
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
// Helpers
// ===================================================================

// equalArg checks structural equality of two arguments, which are equal only
// when both are expressions or both are leaves.
func equalArg(a, b Arg) bool {
	if ae, be := a.AsExpr(), b.AsExpr(); ae != nil && be != nil {
		return ae.Equals(be)
	} else if al, bl := a.AsLeaf(), b.AsLeaf(); al != nil && bl != nil {
		return al.Equals(*bl)
	}
	//
	return false
}

// fmt interface sanity check.
var _ fmt.Stringer = (*Expr)(nil)
