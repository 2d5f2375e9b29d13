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

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumeric is returned when an arithmetic operator is applied to a
	// non-numeric kind.
	ErrNotNumeric = errors.New("operand kind is not numeric")
	// ErrNullableOperand is returned when an operator is applied directly to
	// an absent-capable kind.
	ErrNullableOperand = errors.New("operand kind is nullable")
)

// Promotion is one row of a promotion table.
type Promotion struct {
	Op     BinaryOp `json:"op" yaml:"op"`
	Left   Kind     `json:"left" yaml:"left"`
	Right  Kind     `json:"right" yaml:"right"`
	Result Kind     `json:"result" yaml:"result"`
}

// Promote returns the result kind of op applied to operands of kinds a and b.
//
// Plus, Minus and Multiply:
//
//	int8  x int8                    -> int16
//	int8|int16 x int16|int8         -> int32
//	int32 x int8|int16|int32        -> int32
//	int64 x any integer             -> int64
//	float32 x int8|int16|int32      -> float32
//	float32 x float32               -> float32
//	float32 x int64                 -> float64
//	float64 x any                   -> float64
//
// Divide and Pow always yield float64. DivideFloor yields int32 when both
// operands are integers of at most 32 bits and int64 otherwise.
// The table is symmetric in a and b.
func Promote(op BinaryOp, a, b Kind) (Kind, error) {
	if a.IsNullable() || b.IsNullable() {
		return Invalid, fmt.Errorf("%w: %s(%s, %s)", ErrNullableOperand, op, a, b)
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return Invalid, fmt.Errorf("%w: %s(%s, %s)", ErrNotNumeric, op, a, b)
	}
	switch op {
	case Plus, Minus, Multiply:
		return promoteArith(a, b), nil
	case Divide, Pow:
		return Float64, nil
	case DivideFloor:
		if a.IsInteger() && b.IsInteger() && a.Bits() <= 32 && b.Bits() <= 32 {
			return Int32, nil
		}
		return Int64, nil
	}
	return Invalid, fmt.Errorf("unknown binary operator %d", uint8(op))
}

func promoteArith(a, b Kind) Kind {
	if a.IsFloat() || b.IsFloat() {
		if a == Float64 || b == Float64 || a == Int64 || b == Int64 {
			return Float64
		}
		return Float32
	}
	switch max(a.Bits(), b.Bits()) {
	case 8:
		return Int16
	case 16, 32:
		return Int32
	}
	return Int64
}

// MustPromote is like Promote but panics on error. It is intended for
// tables built from NumericKinds.
func MustPromote(op BinaryOp, a, b Kind) Kind {
	k, err := Promote(op, a, b)
	if err != nil {
		panic(err)
	}
	return k
}

// PromotionTable returns every numeric operand pair for op in
// NumericKinds order, left operand varying slowest.
func PromotionTable(op BinaryOp) []Promotion {
	rows := make([]Promotion, 0, len(NumericKinds)*len(NumericKinds))
	for _, l := range NumericKinds {
		for _, r := range NumericKinds {
			rows = append(rows, Promotion{Op: op, Left: l, Right: r, Result: MustPromote(op, l, r)})
		}
	}
	return rows
}
