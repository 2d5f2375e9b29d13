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

// Package cli implements the typedexpr command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rulego/typedexpr/logger"
	"github.com/rulego/typedexpr/utils/table"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format   string // "table" | "yaml" | "json"
	LogLevel string

	log logger.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"table", "yaml", "json"}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "typedexpr",
		Short: "Inspect the typed expression algebra",
		Long: `Inspect the kinds, promotion tables and mapping handles of the
typed expression algebra.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level, err := logger.ParseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			opts.log = logger.NewLogger(level, cmd.ErrOrStderr())
			logger.SetDefault(opts.log)
			opts.log.Debug("running %s with format %s", cmd.CommandPath(), opts.Format)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "table", "output format (table|yaml|json)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error|off)")

	cmd.AddCommand(NewKindsCommand(opts))
	cmd.AddCommand(NewPromoteCommand(opts))
	cmd.AddCommand(NewMappingsCommand(opts))

	return cmd
}

// output writes v as YAML or JSON, or tbl for the table format.
func output(w io.Writer, format string, v any, tbl *table.Table) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := tbl.WriteTo(w)
	return err
}
