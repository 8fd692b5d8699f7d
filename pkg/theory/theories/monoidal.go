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

// MonoidalCategory extends Category with a monoidal product on objects, a
// unit object, the braiding and the left unitor.  The result sorts of braid
// and lunitor apply other term constructors (otimes, munit) directly,
// exercising nested constructor references within sort expressions.
var MonoidalCategory = theory.New("MonoidalCategory").
	Include(Category).
	Term("otimes",
		theory.Takes(
			theory.NewParam("A", ob),
			theory.NewParam("B", ob)),
		theory.Returns("Ob"),
		theory.Variadic()).
	Term("munit",
		theory.Returns("Ob")).
	Term("braid",
		theory.Takes(
			theory.NewParam("A", ob),
			theory.NewParam("B", ob)),
		theory.Returns("Hom",
			theory.App("otimes", theory.Var("A"), theory.Var("B")),
			theory.App("otimes", theory.Var("B"), theory.Var("A")))).
	Term("lunitor",
		theory.Takes(theory.NewParam("A", ob)),
		theory.Returns("Hom",
			theory.App("otimes", theory.App("munit"), theory.Var("A")),
			theory.Var("A"))).
	MustBuild()
