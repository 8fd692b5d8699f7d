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
package theories

import (
	"github.com/gatlab/go-gat/pkg/theory"
)

// Monoid is the theory of monoids: a single sort of elements, an associative
// binary product and a unit.  The product is variadic, folding left over its
// binary form.  Associativity and unit laws are axioms of the theory, not
// structural properties of the free syntax; syntaxes may opt into them via
// constructor overrides.
var Monoid = theory.New("Monoid").
	Sort("Elem").
	Term("mtimes",
		theory.Takes(
			theory.NewParam("x", theory.SortOf("Elem")),
			theory.NewParam("y", theory.SortOf("Elem"))),
		theory.Returns("Elem"),
		theory.Variadic()).
	Term("munit",
		theory.Returns("Elem")).
	MustBuild()
