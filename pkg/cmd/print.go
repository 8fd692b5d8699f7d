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
package cmd

import (
	"fmt"
	"os"

	"github.com/gatlab/go-gat/pkg/render"
	"github.com/gatlab/go-gat/pkg/syntax"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] expr_file",
	Short: "print an expression in a chosen rendering.",
	Long: `Parse an expression of a standard theory (JSON wire format, or
	S-expression shorthand for single-sort theories) and render it as a
	formatted S-expression, unicode infix text, LaTeX source, or JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		ns := getNamespace(cmd)
		expr := readExprFile(cmd, ns, args[0])
		//
		switch format := GetString(cmd, "format"); format {
		case "sexp":
			fmt.Print(render.Text(ns, expr, getTextWidth(cmd)))
		case "unicode":
			fmt.Println(render.Unicode(expr, render.DefaultNotation()))
		case "latex":
			fmt.Println(render.Latex(expr, render.DefaultLatexNotation()))
		case "json":
			bytes, err := syntax.ToJSON(expr)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(string(bytes))
		default:
			fmt.Printf("unknown format %q\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().StringP("format", "f", "sexp", "output format (sexp, unicode, latex, json)")
	printCmd.Flags().Uint("textwidth", 0, "width to format against (0 = terminal width)")
}
