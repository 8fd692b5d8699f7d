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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/gatlab/go-gat/pkg/syntax"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr_file",
	Short: "evaluate a monoid expression in a concrete model.",
	Long: `Functorially evaluate a monoid expression into a concrete model:
	the free monoid of strings under concatenation, or the multiplicative
	monoid of the BLS12-377 scalar field.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		ns := getNamespace(cmd)
		//
		if ns.Name() != "Monoid" {
			fmt.Println("eval expects --theory monoid")
			os.Exit(1)
		}
		//
		expr := readExprFile(cmd, ns, args[0])
		//
		var model *syntax.Model
		//
		switch name := GetString(cmd, "model"); name {
		case "string":
			model = stringMonoid()
		case "field":
			model = fieldMonoid()
		default:
			fmt.Printf("unknown model %q\n", name)
			os.Exit(1)
		}
		//
		value, err := syntax.Evaluate(model, expr, nil)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(value)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("model", "string", "evaluation model (string, field)")
}

// The free monoid of strings under concatenation, with generators named by
// their leaf value.
func stringMonoid() *syntax.Model {
	return syntax.NewModel("strings").
		Term("mtimes", func(args []any) (any, error) {
			var r string
			//
			for _, arg := range args {
				s, ok := arg.(string)
				if !ok {
					return nil, fmt.Errorf("expected string, got %v", arg)
				}
				//
				r += s
			}
			//
			return r, nil
		}).
		Term("munit", func(args []any) (any, error) {
			return "", nil
		}).
		Generator("Elem", func(leaf syntax.Leaf, typeArgs []any) (any, error) {
			return leaf.String(), nil
		})
}

// The multiplicative monoid of the BLS12-377 scalar field, with generators
// parsed as field elements.
func fieldMonoid() *syntax.Model {
	return syntax.NewModel("bls12-377/fr").
		Term("mtimes", func(args []any) (any, error) {
			var r fr.Element
			//
			r.SetOne()
			//
			for _, arg := range args {
				elem, ok := arg.(fr.Element)
				if !ok {
					return nil, fmt.Errorf("expected field element, got %v", arg)
				}
				//
				r.Mul(&r, &elem)
			}
			//
			return r, nil
		}).
		Term("munit", func(args []any) (any, error) {
			var one fr.Element
			//
			one.SetOne()
			//
			return one, nil
		}).
		Generator("Elem", func(leaf syntax.Leaf, typeArgs []any) (any, error) {
			var elem fr.Element
			//
			if _, err := elem.SetString(leaf.String()); err != nil {
				return nil, err
			}
			//
			return elem, nil
		})
}
