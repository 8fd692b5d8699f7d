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
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
)

// The JSON wire format is an array-of-arrays S-expression: the first element
// is always the constructor name as a string, with no type tags beyond the
// name and no versioning.  An operation node serialises as
// [op, arg...]; a generator node as [sort, leaf, typeArg...].  Numeric leaves
// serialise as JSON numbers, all others as strings.

// JSONOptions configures deserialisation.
type JSONOptions struct {
	// Symbols controls whether leaf strings are interpreted as symbolic
	// identifiers (true) or left as plain strings (false).
	Symbols bool
	// Strict rebuilds every operation node in strict mode, enforcing the
	// declared equations of each constructor along the way.
	Strict bool
}

// ToJSON serialises an expression into the JSON wire format.
func ToJSON(e *Expr) ([]byte, error) {
	return json.Marshal(jsonValue(e))
}

// FromJSON deserialises an expression from the JSON wire format, re-invoking
// each named constructor within the given namespace via its explicit
// name-to-constructor mapping.  A name exported by neither the sorts nor the
// operations of the namespace is a lookup error.  For every expression built
// through the public constructors, FromJSON(ns, ToJSON(e)) == e, modulo the
// Symbols option matching how e's generators were created.
func FromJSON(ns *Namespace, data []byte, opts JSONOptions) (*Expr, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	// Preserve integer precision
	decoder.UseNumber()
	//
	var value any
	//
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	//
	return decodeNode(ns, value, opts)
}

func jsonValue(e *Expr) []any {
	var values []any
	//
	if e.IsGenerator() {
		leaf, _ := e.Leaf()
		//
		values = append(values, e.Sort(), leafValue(leaf))
		//
		for _, ta := range e.TypeArgs() {
			values = append(values, jsonValue(ta))
		}
		//
		return values
	}
	//
	values = append(values, e.Op())
	//
	for _, arg := range e.Args() {
		if sub := arg.AsExpr(); sub != nil {
			values = append(values, jsonValue(sub))
		} else {
			values = append(values, leafValue(*arg.AsLeaf()))
		}
	}
	//
	return values
}

// Leaf values serialise as themselves if numeric, otherwise as strings.
func leafValue(leaf Leaf) any {
	if leaf.IsNumber() {
		return json.RawMessage(leaf.Number().String())
	}
	//
	return leaf.Name()
}

func decodeNode(ns *Namespace, value any, opts JSONOptions) (*Expr, error) {
	values, ok := value.([]any)
	//
	if !ok {
		return nil, fmt.Errorf("expected constructor array, got %v", value)
	} else if len(values) == 0 {
		return nil, fmt.Errorf("empty constructor array")
	}
	//
	name, ok := values[0].(string)
	if !ok {
		return nil, fmt.Errorf("constructor name must be a string, got %v", values[0])
	}
	// Generator constructors are named by their sort
	if ns.HasSort(name) {
		return decodeGenerator(ns, name, values[1:], opts)
	}
	// Otherwise this must name a term constructor
	if !ns.HasTerm(name) {
		return nil, &LookupError{ns.Name(), name}
	}
	//
	args := make([]Arg, len(values)-1)
	//
	for i, v := range values[1:] {
		if _, ok := v.([]any); ok {
			sub, err := decodeNode(ns, v, opts)
			if err != nil {
				return nil, err
			}
			//
			args[i] = sub
		} else {
			leaf, err := decodeLeaf(v, opts)
			if err != nil {
				return nil, err
			}
			//
			args[i] = leaf
		}
	}
	//
	if opts.Strict {
		return ns.ApplyStrict(name, args...)
	}
	//
	return ns.Apply(name, args...)
}

func decodeGenerator(ns *Namespace, sortName string, values []any, opts JSONOptions) (*Expr, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("generator of sort %q is missing its value", sortName)
	}
	//
	leaf, err := decodeLeaf(values[0], opts)
	if err != nil {
		return nil, err
	}
	//
	typeArgs := make([]*Expr, len(values)-1)
	//
	for i, v := range values[1:] {
		ta, err := decodeNode(ns, v, opts)
		if err != nil {
			return nil, err
		}
		//
		typeArgs[i] = ta
	}
	//
	return ns.Generator(sortName, leaf, typeArgs...)
}

func decodeLeaf(value any, opts JSONOptions) (Leaf, error) {
	switch value := value.(type) {
	case json.Number:
		num := new(big.Int)
		//
		if _, ok := num.SetString(value.String(), 10); !ok {
			return Leaf{}, fmt.Errorf("leaf %q is not an integer", value)
		}
		//
		return BigNum(num), nil
	case string:
		if opts.Symbols {
			return Sym(value), nil
		}
		//
		return Str(value), nil
	default:
		return Leaf{}, fmt.Errorf("leaf %v is neither a number nor a string", value)
	}
}
