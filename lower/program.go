/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lower

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"

	"github.com/rulego/typedexpr/expr"
	"github.com/rulego/typedexpr/logger"
	"github.com/rulego/typedexpr/types"
)

// Program is a compiled lowering of a tree. It is safe for concurrent use.
type Program struct {
	source  string
	kind    types.Kind
	fields  []string
	program *vm.Program
}

// Option configures Compile.
type Option func(*compileConfig)

type compileConfig struct {
	log  logger.Logger
	opts []exprlang.Option
}

// WithLogger sets the logger receiving the lowered source at DEBUG level.
func WithLogger(l logger.Logger) Option {
	return func(c *compileConfig) {
		c.log = l
	}
}

// WithExprOptions appends expr language compile options, for example
// additional functions referenced by field names.
func WithExprOptions(opts ...exprlang.Option) Option {
	return func(c *compileConfig) {
		c.opts = append(c.opts, opts...)
	}
}

// Compile lowers n and compiles the result.
func Compile(n expr.Node, opts ...Option) (*Program, error) {
	cfg := &compileConfig{log: logger.GetDefault()}
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.log.With("lower")

	src, err := Source(n)
	if err != nil {
		log.Debug("cannot lower %s: %v", n, err)
		return nil, err
	}
	options := append([]exprlang.Option{exprlang.AllowUndefinedVariables()}, functions...)
	options = append(options, cfg.opts...)
	program, err := exprlang.Compile(src, options...)
	if err != nil {
		return nil, fmt.Errorf("lower: compile %q: %w", src, err)
	}
	log.Debug("lowered %s to %s", n, src)
	return &Program{source: src, kind: n.Kind(), fields: expr.Fields(n), program: program}, nil
}

// Source returns the expr language source of the program.
func (p *Program) Source() string { return p.source }

// Kind returns the kind of the lowered tree.
func (p *Program) Kind() types.Kind { return p.kind }

// Fields returns the field paths read by the program.
func (p *Program) Fields() []string { return p.fields }

// Run evaluates the program against env and converts the result to the
// native representation of the program's kind. A nullable program returns
// nil for absent results.
func (p *Program) Run(env map[string]any) (any, error) {
	out, err := exprlang.Run(p.program, env)
	if err != nil {
		return nil, fmt.Errorf("lower: run %q: %w", p.source, err)
	}
	if out == nil {
		if p.kind.IsNullable() {
			return nil, nil
		}
		return nil, fmt.Errorf("lower: run %q: nil result for %s", p.source, p.kind)
	}
	v, err := convert(out, p.kind.NonNullable())
	if err != nil {
		return nil, fmt.Errorf("lower: run %q: %w", p.source, err)
	}
	return v, nil
}

func convert(v any, k types.Kind) (any, error) {
	switch k {
	case types.Int8:
		return cast.ToInt8E(v)
	case types.Int16:
		return cast.ToInt16E(v)
	case types.Int32:
		return cast.ToInt32E(v)
	case types.Int64:
		return cast.ToInt64E(v)
	case types.Float32:
		return cast.ToFloat32E(v)
	case types.Float64:
		return cast.ToFloat64E(v)
	case types.Bool:
		return cast.ToBoolE(v)
	case types.String:
		return cast.ToStringE(v)
	case types.Char:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, err
		}
		r := []rune(s)
		if len(r) != 1 {
			return nil, fmt.Errorf("%q is not a single character", s)
		}
		return expr.Char(r[0]), nil
	}
	return v, nil
}
