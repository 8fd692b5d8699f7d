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
	"fmt"
	"math/big"

	"github.com/gatlab/go-gat/pkg/sexp"
	"github.com/gatlab/go-gat/pkg/syntax"
)

// Sexp renders an expression as an S-expression tree: operations become
// lists headed by the operation name, whilst generators and raw leaves print
// as bare symbols of their leaf value.
func Sexp(e *syntax.Expr) sexp.SExp {
	if e.IsGenerator() {
		return sexp.NewSymbol(e.String())
	}
	//
	list := sexp.EmptyList()
	list.Append(sexp.NewSymbol(e.Op()))
	//
	for _, arg := range e.Args() {
		if sub := arg.AsExpr(); sub != nil {
			list.Append(Sexp(sub))
		} else {
			list.Append(sexp.NewSymbol(arg.String()))
		}
	}
	//
	return list
}

// Text renders an expression as formatted S-expression text fitting (where
// possible) within a given width.  Every operation of the expression's
// signature is given a formatting rule, so deeply nested expressions split
// across indented lines.
func Text(ns *syntax.Namespace, e *syntax.Expr, width uint) string {
	node := Sexp(e)
	// Flat rendering where it fits
	if flat := node.String(false); uint(len(flat)) <= width {
		return flat + "\n"
	}
	//
	formatter := sexp.NewFormatter(width)
	//
	for _, op := range ns.Operations() {
		formatter.Add(&sexp.SFormatter{Head: op, Priority: 1})
	}
	//
	return formatter.Format(node)
}

// ParseExpr parses S-expression text into an expression of the given
// namespace.  Lists apply the term constructor named by their head; bare
// symbols introduce generators of the given sort (numeric symbols become
// integer leaves, all others symbolic identifiers).  This shorthand only
// suits theories whose generators live in a single simple sort, such as a
// monoid; dependent sorts require the JSON wire format.
func ParseExpr(ns *syntax.Namespace, text, genSort string) (*syntax.Expr, error) {
	node, err := sexp.Parse(text)
	if err != nil {
		return nil, err
	}
	//
	return fromSexp(ns, node, genSort)
}

func fromSexp(ns *syntax.Namespace, node sexp.SExp, genSort string) (*syntax.Expr, error) {
	if symbol := node.AsSymbol(); symbol != nil {
		return ns.Generator(genSort, symbolLeaf(symbol.Value))
	}
	//
	list := node.AsList()
	//
	if list.Len() == 0 {
		return nil, fmt.Errorf("empty application")
	}
	//
	head := list.Get(0).AsSymbol()
	if head == nil {
		return nil, fmt.Errorf("application head must be a symbol, got %s", list.Get(0).String(true))
	}
	//
	args := make([]syntax.Arg, list.Len()-1)
	//
	for i := 1; i < list.Len(); i++ {
		arg, err := fromSexp(ns, list.Get(i), genSort)
		if err != nil {
			return nil, err
		}
		//
		args[i-1] = arg
	}
	//
	return ns.Apply(head.Value, args...)
}

func symbolLeaf(value string) syntax.Leaf {
	if num, ok := new(big.Int).SetString(value, 10); ok {
		return syntax.BigNum(num)
	}
	//
	return syntax.Sym(value)
}
