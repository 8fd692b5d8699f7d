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
	"strings"

	"github.com/gatlab/go-gat/pkg/render"
	"github.com/gatlab/go-gat/pkg/syntax"
	"github.com/gatlab/go-gat/pkg/theory/theories"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Assemble the default syntax of the standard theory named by the persistent
// theory flag.
func getNamespace(cmd *cobra.Command) *syntax.Namespace {
	name := GetString(cmd, "theory")
	//
	sig, ok := theories.Lookup(name)
	if !ok {
		fmt.Printf("unknown theory %q (available: %s)\n", name, strings.Join(theories.Names(), ", "))
		os.Exit(2)
	}
	//
	ns, err := syntax.Assemble(sig)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return ns
}

// Read an expression from a file against a given namespace.  Files ending in
// .sexp are parsed as S-expression shorthand (single-sort theories only);
// everything else is treated as the JSON wire format.
func readExprFile(cmd *cobra.Command, ns *syntax.Namespace, filename string) *syntax.Expr {
	var (
		expr *syntax.Expr
		err  error
	)
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if strings.HasSuffix(filename, ".sexp") {
		expr, err = readSexpFile(ns, string(bytes))
	} else {
		opts := syntax.JSONOptions{Symbols: GetFlag(cmd, "symbols")}
		expr, err = syntax.FromJSON(ns, bytes, opts)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return expr
}

func readSexpFile(ns *syntax.Namespace, text string) (*syntax.Expr, error) {
	sorts := ns.Signature().Sorts()
	// S-expression shorthand needs a unique generator sort
	if len(sorts) != 1 {
		return nil, fmt.Errorf("theory %q has %d sorts; use the JSON format", ns.Name(), len(sorts))
	}
	//
	return render.ParseExpr(ns, text, sorts[0].Name)
}

// Determine the width to format against, preferring the textwidth flag, then
// the enclosing terminal, then a conventional fallback.
func getTextWidth(cmd *cobra.Command) uint {
	if width := GetUint(cmd, "textwidth"); width != 0 {
		return width
	}
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return 80
}
