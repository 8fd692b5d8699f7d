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
	"slices"
	"sort"

	"github.com/gatlab/go-gat/pkg/theory"
	log "github.com/sirupsen/logrus"
)

// TermFunc builds one expression node for a term constructor.  The strict
// flag requests enforcement of the constructor's declared equations.
type TermFunc func(strict bool, args ...Arg) (*Expr, error)

// GenFunc introduces a generator of some sort from a raw leaf value and the
// sort's declared parameters.
type GenFunc func(value Leaf, typeArgs ...*Expr) (*Expr, error)

// TermOverride replaces the behaviour of one term constructor within a
// namespace.  The default implementation is passed explicitly, so an override
// may wrap it (e.g. to normalise the built node) or ignore it entirely.
// Errors returned by an override propagate to the caller unmodified.
type TermOverride func(dflt TermFunc, strict bool, args []Arg) (*Expr, error)

// GenOverride replaces the generator-introduction behaviour of one sort
// within a namespace.  As with TermOverride, the default implementation is
// passed explicitly and override errors propagate unmodified; an override
// which unconditionally errors closes the syntax over a fixed generator set.
type GenOverride func(dflt GenFunc, value Leaf, typeArgs []*Expr) (*Expr, error)

// ===================================================================
// Options
// ===================================================================

// Option configures the assembly of a namespace.
type Option func(*assemblyConfig)

type termOverride struct {
	name  string
	sorts []string
	body  TermOverride
}

type genOverride struct {
	sort string
	body GenOverride
}

type assemblyConfig struct {
	name          string
	baseTypes     []string
	termOverrides []termOverride
	genOverrides  []genOverride
}

// WithName assigns a name to the namespace, used for logging and diagnostics.
// Defaults to the signature's theory name.
func WithName(name string) Option {
	return func(cfg *assemblyConfig) { cfg.name = name }
}

// WithBaseTypes attaches an external base type per sort, in the order the
// signature declares its sorts, allowing the generated sorts to participate
// in an external type hierarchy.  The list must name exactly one base type
// per sort.
func WithBaseTypes(names ...string) Option {
	return func(cfg *assemblyConfig) { cfg.baseTypes = names }
}

// WithOverride replaces the resolved implementation of the term constructor
// matching the given name and ordered parameter sort pattern.
func WithOverride(name string, sorts []string, body TermOverride) Option {
	return func(cfg *assemblyConfig) {
		cfg.termOverrides = append(cfg.termOverrides, termOverride{name, sorts, body})
	}
}

// WithGeneratorOverride replaces the generator-introduction function of the
// given sort.
func WithGeneratorOverride(sortName string, body GenOverride) Option {
	return func(cfg *assemblyConfig) {
		cfg.genOverrides = append(cfg.genOverrides, genOverride{sortName, body})
	}
}

// ===================================================================
// Namespace
// ===================================================================

// Namespace is a free syntax over exactly one signature: a closed set of
// generated constructor functions, one per sort (generator introduction) and
// one per term constructor, each resolved at assembly time by priority (user
// override, then signature default, then synthesized default).  Namespaces
// are immutable once assembled, and independent: two namespaces over the same
// signature may diverge completely in constructor behaviour.
type Namespace struct {
	name string
	sig  *theory.Signature
	// Resolved term constructors, by operation name.
	terms map[string]TermFunc
	// Resolved generator constructors, by sort name.
	gens map[string]GenFunc
	// Unresolved defaults, retained so that callers (and override bodies)
	// can invoke the pre-override behaviour explicitly.
	defaultTerms map[string]TermFunc
	defaultGens  map[string]GenFunc
	// External base type per sort, when configured.
	baseTypes map[string]string
}

// Assemble binds a signature together with any user-supplied overrides into a
// fresh namespace.  Assembly is a one-time setup step: an override naming an
// operation signature absent from the theory is reported here, never at call
// time.
func Assemble(sig *theory.Signature, opts ...Option) (*Namespace, error) {
	var cfg assemblyConfig
	//
	for _, opt := range opts {
		opt(&cfg)
	}
	//
	if cfg.name == "" {
		cfg.name = sig.Name()
	}
	//
	p := &Namespace{
		name:         cfg.name,
		sig:          sig,
		terms:        make(map[string]TermFunc),
		gens:         make(map[string]GenFunc),
		defaultTerms: make(map[string]TermFunc),
		defaultGens:  make(map[string]GenFunc),
		baseTypes:    make(map[string]string),
	}
	//
	sorts := sig.Sorts()
	// Check base types (if any) cover the sorts exactly
	if cfg.baseTypes != nil && len(cfg.baseTypes) != len(sorts) {
		return nil, p.configErrorf("%d base type(s) given for %d sort(s)", len(cfg.baseTypes), len(sorts))
	}
	// Resolve generator constructors
	if err := p.resolveGenerators(sorts, &cfg); err != nil {
		return nil, err
	}
	// Resolve term constructors
	if err := p.resolveTerms(sig.Terms(), &cfg); err != nil {
		return nil, err
	}
	//
	return p, nil
}

// MustAssemble assembles a namespace, panicking on configuration errors.
// Intended for statically known syntaxes built during initialisation.
func MustAssemble(sig *theory.Signature, opts ...Option) *Namespace {
	ns, err := Assemble(sig, opts...)
	if err != nil {
		panic(err)
	}
	//
	return ns
}

func (p *Namespace) resolveGenerators(sorts []theory.SortConstructor, cfg *assemblyConfig) error {
	consumed := make([]bool, len(cfg.genOverrides))
	//
	for i, sc := range sorts {
		dflt := p.synthesizeGenerator(sc)
		resolved := dflt
		overridden := false
		//
		p.defaultGens[sc.Name] = dflt
		// Apply override (if any)
		for j, ov := range cfg.genOverrides {
			if ov.sort == sc.Name {
				if overridden {
					return p.configErrorf("duplicate generator override for sort %q", sc.Name)
				}
				//
				consumed[j] = true
				overridden = true
				resolved = bindGenOverride(ov.body, dflt)
				//
				log.Debugf("namespace %s: generator %s resolved via override", p.name, sc.Name)
			}
		}
		//
		p.gens[sc.Name] = resolved
		//
		if cfg.baseTypes != nil {
			p.baseTypes[sc.Name] = cfg.baseTypes[i]
		}
	}
	// Check every generator override was consumed
	for j, ov := range cfg.genOverrides {
		if !consumed[j] {
			return p.configErrorf("generator override for unknown sort %q", ov.sort)
		}
	}
	//
	return nil
}

func (p *Namespace) resolveTerms(terms []theory.TermConstructor, cfg *assemblyConfig) error {
	consumed := make([]bool, len(cfg.termOverrides))
	//
	for _, tc := range terms {
		dflt := p.synthesizeTerm(tc)
		// Apply signature default (variadic fold) where declared
		if tc.Variadic {
			dflt = p.synthesizeFold(tc, dflt)
		}
		//
		p.defaultTerms[tc.Name] = dflt
		//
		resolved := dflt
		overridden := false
		// Apply override (if any)
		for j, ov := range cfg.termOverrides {
			if ov.name != tc.Name {
				continue
			} else if !slices.Equal(ov.sorts, tc.ParamSorts()) {
				return p.configErrorf("override for %q has parameter sorts %v, operation declares %v",
					ov.name, ov.sorts, tc.ParamSorts())
			} else if overridden {
				return p.configErrorf("duplicate override for operation %q", tc.Name)
			}
			//
			consumed[j] = true
			overridden = true
			resolved = bindTermOverride(ov.body, dflt)
			//
			log.Debugf("namespace %s: operation %s resolved via override", p.name, tc.Name)
		}
		//
		p.terms[tc.Name] = resolved
	}
	// Check every override was consumed
	for j, ov := range cfg.termOverrides {
		if !consumed[j] {
			return p.configErrorf("override for unknown operation %q", ov.name)
		}
	}
	//
	return nil
}

// bindTermOverride closes an override body over its default implementation,
// yielding an ordinary term function.
func bindTermOverride(body TermOverride, dflt TermFunc) TermFunc {
	return func(strict bool, args ...Arg) (*Expr, error) {
		return body(dflt, strict, args)
	}
}

// bindGenOverride closes a generator override body over its default
// implementation, yielding an ordinary generator function.
func bindGenOverride(body GenOverride, dflt GenFunc) GenFunc {
	return func(value Leaf, typeArgs ...*Expr) (*Expr, error) {
		return body(dflt, value, typeArgs)
	}
}

// ===================================================================
// Public interface
// ===================================================================

// Name returns the name of this namespace.
func (p *Namespace) Name() string {
	return p.name
}

// Signature returns the signature this namespace was assembled over.
func (p *Namespace) Signature() *theory.Signature {
	return p.sig
}

// Apply invokes the resolved term constructor of a given name without domain
// checking.
func (p *Namespace) Apply(op string, args ...Arg) (*Expr, error) {
	return p.invoke(op, false, args)
}

// ApplyStrict invokes the resolved term constructor of a given name,
// enforcing its declared equations.
func (p *Namespace) ApplyStrict(op string, args ...Arg) (*Expr, error) {
	return p.invoke(op, true, args)
}

// Generator invokes the resolved generator constructor of a given sort.
func (p *Namespace) Generator(sortName string, value Leaf, typeArgs ...*Expr) (*Expr, error) {
	fn, ok := p.gens[sortName]
	//
	if !ok {
		return nil, &LookupError{p.name, sortName}
	}
	//
	return fn(value, typeArgs...)
}

// Accessor extracts the ith sort parameter of an expression of a given sort,
// e.g. Accessor("Hom", 1, f) is the codomain of f.
func (p *Namespace) Accessor(sortName string, index uint, e *Expr) (*Expr, error) {
	sc, ok := p.sig.Sort(sortName)
	//
	if !ok {
		return nil, &LookupError{p.name, sortName}
	} else if e.Sort() != sortName {
		return nil, fmt.Errorf("expression has sort %q, not %q", e.Sort(), sortName)
	} else if index >= sc.Arity() {
		return nil, fmt.Errorf("sort %q has no parameter %d", sortName, index)
	}
	//
	return e.TypeArg(index), nil
}

// Default returns the unresolved (pre-override) implementation of a term
// constructor, which an override body or client may invoke explicitly.
func (p *Namespace) Default(op string) (TermFunc, bool) {
	fn, ok := p.defaultTerms[op]
	return fn, ok
}

// DefaultGenerator returns the unresolved (pre-override) generator
// constructor of a sort.
func (p *Namespace) DefaultGenerator(sortName string) (GenFunc, bool) {
	fn, ok := p.defaultGens[sortName]
	return fn, ok
}

// BaseType returns the external base type configured for a sort, if any.
func (p *Namespace) BaseType(sortName string) (string, bool) {
	name, ok := p.baseTypes[sortName]
	return name, ok
}

// HasSort checks whether a given name denotes a sort of this namespace.
func (p *Namespace) HasSort(name string) bool {
	_, ok := p.gens[name]
	return ok
}

// HasTerm checks whether a given name denotes a term constructor of this
// namespace.
func (p *Namespace) HasTerm(name string) bool {
	_, ok := p.terms[name]
	return ok
}

// Operations returns the names of all term constructors of this namespace,
// in lexicographic order.
func (p *Namespace) Operations() []string {
	var names []string
	//
	for name := range p.terms {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

func (p *Namespace) invoke(op string, strict bool, args []Arg) (*Expr, error) {
	fn, ok := p.terms[op]
	//
	if !ok {
		return nil, &LookupError{p.name, op}
	}
	//
	return fn(strict, args...)
}

func (p *Namespace) configErrorf(format string, args ...any) error {
	return &ConfigurationError{p.name, fmt.Sprintf(format, args...)}
}
