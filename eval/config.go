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
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/rulego/typedexpr/logger"
)

// Config holds the evaluator settings that can be loaded from a file:
//
//	logLevel: debug
//	recoverPanics: true
//	workers: 8
type Config struct {
	// LogLevel is the level of the logger created by the evaluator. It is
	// ignored when a logger is given with WithLogger.
	LogLevel logger.Level `json:"logLevel" yaml:"logLevel"`
	// RecoverPanics converts evaluation panics into *Error values. When
	// false, panics propagate to the caller.
	RecoverPanics bool `json:"recoverPanics" yaml:"recoverPanics"`
	// Workers bounds the goroutines used by Batch. Zero or less means
	// GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		LogLevel:      logger.WARN,
		RecoverPanics: true,
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// LoadConfig decodes a YAML document over DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("eval: load config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfigFile reads the YAML configuration at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("eval: load config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.LogLevel < logger.DEBUG || c.LogLevel > logger.OFF {
		return fmt.Errorf("eval: invalid log level %d", c.LogLevel)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
