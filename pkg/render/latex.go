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
	"strings"

	"github.com/gatlab/go-gat/pkg/syntax"
)

// LatexNotation maps operation names to LaTeX templates, each with one %s
// verb per argument (e.g. `\sigma_{%s,%s}` for the braiding).  Operations
// without an entry render as \mathrm{op}\left(args\right).
type LatexNotation struct {
	Templates map[string]string
}

// DefaultLatexNotation returns the templates used for the standard theories.
func DefaultLatexNotation() LatexNotation {
	return LatexNotation{
		Templates: map[string]string{
			"compose": `%s \cdot %s`,
			"mtimes":  `%s \cdot %s`,
			"otimes":  `%s \otimes %s`,
			"munit":   `I`,
			"id":      `\mathrm{id}_{%s}`,
			"braid":   `\sigma_{%s,%s}`,
			"lunitor": `\lambda_{%s}`,
		},
	}
}

// Latex renders an expression as LaTeX source.  Generators print their raw
// leaf value.
func Latex(e *syntax.Expr, notation LatexNotation) string {
	if e.IsGenerator() {
		return e.String()
	}
	//
	var parts []any
	//
	for _, arg := range e.Args() {
		if sub := arg.AsExpr(); sub != nil {
			parts = append(parts, Latex(sub, notation))
		} else {
			parts = append(parts, arg.String())
		}
	}
	// Template rendering where declared
	if template, ok := notation.Templates[e.Op()]; ok {
		// Variadic operations repeat the final separator
		if n := strings.Count(template, "%s"); n > 0 && len(parts) > n {
			template = extendTemplate(template, len(parts))
		}
		//
		return fmt.Sprintf(template, parts...)
	}
	// Default prefix rendering
	var rendered []string
	//
	for _, part := range parts {
		rendered = append(rendered, part.(string))
	}
	//
	return fmt.Sprintf(`\mathrm{%s}\left(%s\right)`, e.Op(), strings.Join(rendered, ", "))
}

// extendTemplate stretches a binary infix template (e.g. `%s \cdot %s`) to
// cover n arguments by repeating its separator.
func extendTemplate(template string, n int) string {
	i := strings.Index(template, "%s")
	j := strings.LastIndex(template, "%s")
	// Separator between the two verbs
	sep := template[i+2 : j]
	//
	var builder strings.Builder
	//
	builder.WriteString(template[:i+2])
	//
	for k := 1; k < n; k++ {
		builder.WriteString(sep)
		builder.WriteString("%s")
	}
	//
	builder.WriteString(template[j+2:])
	//
	return builder.String()
}
