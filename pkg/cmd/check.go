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
	"errors"
	"fmt"
	"os"

	"github.com/gatlab/go-gat/pkg/syntax"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] expr_file",
	Short: "check the domain equations of an expression.",
	Long: `Rebuild every constructor of the given expression in strict mode,
	reporting the first equational side condition (e.g. a composition of
	morphisms whose intermediate objects disagree) which fails.`,
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
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		opts := syntax.JSONOptions{Symbols: GetFlag(cmd, "symbols"), Strict: true}
		//
		if _, err := syntax.FromJSON(ns, bytes, opts); err != nil {
			var domainErr *syntax.DomainError
			//
			if errors.As(err, &domainErr) {
				fmt.Printf("domain check failed: %s\n", domainErr)
			} else {
				fmt.Println(err)
			}
			//
			os.Exit(1)
		}
		//
		fmt.Println("ok")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
