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
package render

import (
	"strings"

	"github.com/gatlab/go-gat/pkg/syntax"
)

// Infix describes the infix rendering of one binary (or variadic) operation.
type Infix struct {
	// Symbol placed between arguments, e.g. "⋅" for composition.
	Symbol string
	// Precedence determines bracketing: a child rendered under a parent of
	// strictly higher precedence is parenthesised.
	Precedence uint
}

// Notation maps operation names to their textual renderings.  Operations
// without an entry render in prefix form, op(a,b).
type Notation struct {
	// Infix renderings, by operation name.
	Infix map[string]Infix
	// Atom renderings for nullary operations, e.g. munit as "𝟙".
	Atoms map[string]string
}

// DefaultNotation returns the notation used for the standard theories.
func DefaultNotation() Notation {
	return Notation{
		Infix: map[string]Infix{
			"compose": {"⋅", 60},
			"mtimes":  {"⋅", 60},
			"otimes":  {"⊗", 70},
		},
		Atoms: map[string]string{
			"munit": "𝟙",
		},
	}
}

// Unicode renders an expression as infix text, bracketing according to the
// notation's precedences.  Generators print their raw leaf value.
func Unicode(e *syntax.Expr, notation Notation) string {
	return unicodeInner(e, notation, 0)
}

func unicodeInner(e *syntax.Expr, notation Notation, parent uint) string {
	if e.IsGenerator() {
		return e.String()
	}
	// Atom rendering for nullary operations
	if atom, ok := notation.Atoms[e.Op()]; ok && len(e.Args()) == 0 {
		return atom
	}
	// Infix rendering
	if infix, ok := notation.Infix[e.Op()]; ok && len(e.Args()) >= 2 {
		var parts []string
		//
		for _, arg := range e.Args() {
			parts = append(parts, unicodeArg(arg, notation, infix.Precedence))
		}
		//
		text := strings.Join(parts, infix.Symbol)
		// Bracket against a tighter parent
		if parent > infix.Precedence {
			return "(" + text + ")"
		}
		//
		return text
	}
	// Default prefix rendering
	var parts []string
	//
	for _, arg := range e.Args() {
		parts = append(parts, unicodeArg(arg, notation, 0))
	}
	//
	return e.Op() + "(" + strings.Join(parts, ",") + ")"
}

func unicodeArg(arg syntax.Arg, notation Notation, parent uint) string {
	if sub := arg.AsExpr(); sub != nil {
		return unicodeInner(sub, notation, parent)
	}
	//
	return arg.String()
}
