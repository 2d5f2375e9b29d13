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

// Package eval runs expression trees and turns the panics raised by
// evaluation (checked casts, OrThrow, integer division by zero, field
// conversions) into errors.
//
//	ev := eval.New(eval.WithWorkers(4))
//	totals, err := eval.Batch(ctx, ev, total, orders)
package eval

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/rulego/typedexpr/expr"
	"github.com/rulego/typedexpr/logger"
)

// Error is returned for an evaluation that panicked.
type Error struct {
	// Expr is the rendering of the evaluated tree.
	Expr string
	// Index is the position of the record in a batch, or -1.
	Index int
	// Cause is the panic value, as an error.
	Cause error
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("eval: %s: %v", e.Expr, e.Cause)
	}
	return fmt.Sprintf("eval: %s: record %d: %v", e.Expr, e.Index, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// ErrPanic wraps panic values that are not errors.
var ErrPanic = errors.New("eval: panic")

// Evaluator evaluates trees with a fixed configuration. It is safe for
// concurrent use.
type Evaluator struct {
	cfg Config
	log logger.Logger
}

// New returns an evaluator configured by opts over DefaultConfig.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.NewLogger(e.cfg.LogLevel, os.Stderr)
	}
	e.log = e.log.With("eval")
	return e
}

var defaultEvaluator = New()

// Config returns the effective configuration.
func (e *Evaluator) Config() Config { return e.cfg }

func orDefault(e *Evaluator) *Evaluator {
	if e == nil {
		return defaultEvaluator
	}
	return e
}

// guard runs fn, converting a panic into an *Error when recovery is on.
func (e *Evaluator) guard(n expr.Node, index int, fn func()) (err error) {
	if !e.cfg.RecoverPanics {
		fn()
		return nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%w: %v", ErrPanic, r)
		}
		err = &Error{Expr: n.String(), Index: index, Cause: cause}
		e.log.Warn("%v", err)
	}()
	fn()
	return nil
}

// Eval evaluates n against rec. A nil evaluator uses the defaults.
func Eval[R, V any](e *Evaluator, n expr.Expr[R, V], rec R) (V, error) {
	var v V
	err := orDefault(e).guard(n, -1, func() { v = n.Eval(rec) })
	return v, err
}

// EvalNullable evaluates an absent-capable node against rec.
func EvalNullable[R, V any](e *Evaluator, n expr.NullableExpr[R, V], rec R) (V, bool, error) {
	var (
		v  V
		ok bool
	)
	err := orDefault(e).guard(n, -1, func() { v, ok = n.Get(rec) })
	return v, ok, err
}

// EvalAll evaluates n against every record in order and stops at the
// first failure.
func EvalAll[R, V any](e *Evaluator, n expr.Expr[R, V], recs []R) ([]V, error) {
	e = orDefault(e)
	out := make([]V, len(recs))
	for i, rec := range recs {
		if err := e.guard(n, i, func() { out[i] = n.Eval(rec) }); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Batch evaluates n against recs on up to Config.Workers goroutines. The
// results keep the order of recs. The first failure cancels the remaining
// work and is returned; so is the context's error when ctx is done first.
// With recovery disabled a panicking record crashes the program, since
// the panic happens on a worker goroutine.
func Batch[R, V any](ctx context.Context, e *Evaluator, n expr.Expr[R, V], recs []R) ([]V, error) {
	e = orDefault(e)
	out := make([]V, len(recs))
	if len(recs) == 0 {
		return out, nil
	}
	workers := min(e.cfg.workers(), len(recs))
	size := (len(recs) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(recs); start += size {
		end := min(start+size, len(recs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := e.guard(n, i, func() { out[i] = n.Eval(recs[i]) }); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
