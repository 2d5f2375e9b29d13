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

/*
Package types defines the result kinds of expression nodes and the operator
tables that relate them.

# Core Features

• Kinds - the eleven value kinds and their nullable twins
• Operators - UnaryOp, BinaryOp and NullStrategy with their names and symbols
• Promotion - the result kind of every binary operator over numeric operands
• Mapper shapes - the input and output kinds of a mapping function

# Kinds

Every node built by package expr carries a Kind that is fixed at construction:

	types.Int8.Nullable()              // nullable int8
	types.NullableInt8.NonNullable()   // int8
	types.ParseKind("Nullable FLOAT32") // nullable float32, nil

Kinds marshal as their lower case names, so they can be used directly in
JSON and YAML documents.

# Promotion

Promote implements the numeric promotion table:

	types.Promote(types.Plus, types.Int8, types.Int8)        // int16
	types.Promote(types.Plus, types.Float32, types.Int64)    // float64
	types.Promote(types.Divide, types.Int8, types.Int8)      // float64
	types.Promote(types.DivideFloor, types.Int32, types.Int8) // int32

Nullable or non-numeric operands are rejected with ErrNullableOperand and
ErrNotNumeric. PromotionTable lists every operand pair of one operator.
*/
package types
