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
	"github.com/spf13/cobra"

	"github.com/rulego/typedexpr/types"
	"github.com/rulego/typedexpr/utils/table"
)

// NewPromoteCommand creates the promote command.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	var op string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Print the result kinds of a binary operator",
		Long: `Print the result kind of a binary operator for every pair of numeric
operand kinds. The table format shows a matrix with the left operand in
rows and the right operand in columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			binOp, err := types.ParseBinaryOp(op)
			if err != nil {
				return err
			}
			rows := types.PromotionTable(binOp)
			rootOpts.log.Debug("%d promotions for %s", len(rows), binOp)
			return output(cmd.OutOrStdout(), rootOpts.Format, rows, promotionMatrix(binOp, rows))
		},
	}

	cmd.Flags().StringVar(&op, "op", "plus", "operator (pow|plus|minus|multiply|divide|divide_floor)")
	return cmd
}

func promotionMatrix(op types.BinaryOp, rows []types.Promotion) *table.Table {
	header := []string{op.Symbol()}
	for _, k := range types.NumericKinds {
		header = append(header, k.String())
	}
	tbl := table.New(header...)
	n := len(types.NumericKinds)
	for i, left := range types.NumericKinds {
		cells := []string{left.String()}
		for _, p := range rows[i*n : (i+1)*n] {
			cells = append(cells, p.Result.String())
		}
		tbl.Append(cells...)
	}
	return tbl
}
