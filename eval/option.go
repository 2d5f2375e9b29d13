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

package eval

import (
	"io"

	"github.com/rulego/typedexpr/logger"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger receiving recovered failures.
func WithLogger(log logger.Logger) Option {
	return func(e *Evaluator) {
		e.log = log
	}
}

// WithLogLevel sets the level of the evaluator's own logger.
func WithLogLevel(level logger.Level) Option {
	return func(e *Evaluator) {
		e.cfg.LogLevel = level
	}
}

// WithLogOutput makes the evaluator log to output at level.
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Evaluator) {
		e.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog disables logging.
func WithDiscardLog() Option {
	return func(e *Evaluator) {
		e.log = logger.NewDiscardLogger()
	}
}

// WithWorkers bounds the goroutines used by Batch.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		e.cfg.Workers = n
	}
}

// WithRecover enables or disables panic recovery.
func WithRecover(recoverPanics bool) Option {
	return func(e *Evaluator) {
		e.cfg.RecoverPanics = recoverPanics
	}
}

// WithConfig replaces the whole configuration. Options given after it
// still apply.
func WithConfig(cfg Config) Option {
	return func(e *Evaluator) {
		e.cfg = cfg
	}
}
