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
	"fmt"
	"strings"
)

// ConfigurationError signals a fault in the configuration of a namespace
// detected at assembly time, such as an override naming an operation absent
// from the signature, or a base-type list of the wrong arity.  Configuration
// errors are fatal and never retried.
type ConfigurationError struct {
	// Namespace being assembled.
	Namespace string
	// Description of the fault.
	Msg string
}

func (p *ConfigurationError) Error() string {
	return fmt.Sprintf("assembling %q: %s", p.Namespace, p.Msg)
}

// ArityError signals that a generator or term constructor was invoked with
// the wrong number of sort or term parameters.
type ArityError struct {
	// Operation (or sort) being invoked.
	Op string
	// Number of parameters declared.
	Expected uint
	// Number of arguments supplied.
	Actual uint
}

func (p *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", p.Op, p.Expected, p.Actual)
}

// DomainError signals that a term constructor was invoked in strict mode with
// arguments violating one of its declared equations.  It carries the
// constructor name and the actual arguments for diagnostics, and is
// recoverable by the caller.
type DomainError struct {
	// Operation whose equation failed.
	Op string
	// Actual arguments of the failing call.
	Args []Arg
	// The equation which failed, rendered for diagnostics.
	Equation string
}

func (p *DomainError) Error() string {
	var args []string
	//
	for _, arg := range p.Args {
		args = append(args, arg.String())
	}
	//
	return fmt.Sprintf("%s(%s): domain check failed: %s", p.Op, strings.Join(args, ","), p.Equation)
}

// LookupError signals that a constructor name was not found where one was
// required: during functor evaluation into a model lacking a same-named
// operation, or when deserialising an expression naming an unknown
// constructor.
type LookupError struct {
	// Target searched (namespace, model or signature name).
	Target string
	// Constructor name which was not found.
	Name string
}

func (p *LookupError) Error() string {
	return fmt.Sprintf("unknown constructor %q in %q", p.Name, p.Target)
}
