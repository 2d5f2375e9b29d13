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

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rulego/typedexpr/mapping"
	"github.com/rulego/typedexpr/types"
	"github.com/rulego/typedexpr/utils/table"
)

// KindInfo describes one kind.
type KindInfo struct {
	Kind     types.Kind `json:"kind" yaml:"kind"`
	Nullable types.Kind `json:"nullable" yaml:"nullable"`
	Numeric  bool       `json:"numeric" yaml:"numeric"`
	Bits     int        `json:"bits,omitempty" yaml:"bits,omitempty"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the result kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]KindInfo, 0, len(types.Kinds))
			tbl := table.New("kind", "nullable", "numeric", "bits")
			for _, k := range types.Kinds {
				info := KindInfo{Kind: k, Nullable: k.Nullable(), Numeric: k.IsNumeric(), Bits: k.Bits()}
				infos = append(infos, info)
				bits := ""
				if info.Bits > 0 {
					bits = strconv.Itoa(info.Bits)
				}
				tbl.Append(k.String(), info.Nullable.String(), strconv.FormatBool(info.Numeric), bits)
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, infos, tbl)
		},
	}
}

// NewMappingsCommand creates the mappings command.
func NewMappingsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings",
		Short: "List the shared mapping handles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := mapping.Names()
			tbl := table.New("name")
			for _, name := range names {
				tbl.Append(name)
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, names, tbl)
		},
	}
}
