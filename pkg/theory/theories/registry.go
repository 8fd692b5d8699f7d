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
	"sort"

	"github.com/gatlab/go-gat/pkg/theory"
)

// registry maps theory names to their signatures.
var registry = map[string]*theory.Signature{
	"monoid":            Monoid,
	"category":          Category,
	"monoidal-category": MonoidalCategory,
}

// Lookup a standard theory by name.
func Lookup(name string) (*theory.Signature, bool) {
	sig, ok := registry[name]
	return sig, ok
}

// Names returns the names of all standard theories, in lexicographic order.
func Names() []string {
	var names []string
	//
	for name := range registry {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}
