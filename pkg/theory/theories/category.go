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

// ob is the sort expression of a plain object parameter.
var ob = theory.SortOf("Ob")

// Category is the theory of categories: objects, morphisms between them,
// identities and composition.  The Hom sort is dependent, being identified by
// its domain and codomain objects.  Composition declares the usual equational
// side condition (codomain of f equals domain of g) which strict-mode
// construction enforces.
var Category = theory.New("Category").
	Sort("Ob").
	Sort("Hom",
		theory.NewParam("dom", ob),
		theory.NewParam("cod", ob)).
	Term("id",
		theory.Takes(theory.NewParam("A", ob)),
		theory.Returns("Hom", theory.Var("A"), theory.Var("A"))).
	Term("compose",
		theory.Takes(
			theory.NewParam("f", theory.SortOf("Hom", theory.Var("A"), theory.Var("B"))),
			theory.NewParam("g", theory.SortOf("Hom", theory.Var("B"), theory.Var("C")))),
		theory.InContext(
			theory.NewParam("A", ob),
			theory.NewParam("B", ob),
			theory.NewParam("C", ob)),
		theory.Returns("Hom",
			theory.Proj(theory.Var("f"), 0),
			theory.Proj(theory.Var("g"), 1)),
		theory.Requires(
			theory.Proj(theory.Var("f"), 1),
			theory.Proj(theory.Var("g"), 0)),
		theory.Variadic()).
	MustBuild()
