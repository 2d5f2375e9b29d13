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

package expr

import (
	"github.com/shopspring/decimal"

	"github.com/rulego/typedexpr/types"
)

// Decimal nodes use github.com/shopspring/decimal as the native
// representation. Their operators are fixed per builder, so the function
// held by a node is implied by its operator and kind and takes no part in
// equality.

type decimalUnaryNode[R, A, V any] struct {
	unary[R, A]
	fn func(A) V
}

func (n *decimalUnaryNode[R, A, V]) Eval(rec R) V {
	return n.fn(n.operand.Eval(rec))
}

func (n *decimalUnaryNode[R, A, V]) Equal(other Node) bool {
	o, ok := other.(*decimalUnaryNode[R, A, V])
	return ok && n.equal(&o.unary)
}

type decimalBinaryNode[R any] struct {
	binary[R, decimal.Decimal, decimal.Decimal]
	fn func(a, b decimal.Decimal) decimal.Decimal
}

func (n *decimalBinaryNode[R]) Eval(rec R) decimal.Decimal {
	return n.fn(n.left.Eval(rec), n.right.Eval(rec))
}

func (n *decimalBinaryNode[R]) Equal(other Node) bool {
	o, ok := other.(*decimalBinaryNode[R])
	return ok && n.equal(&o.binary)
}

// AbsDecimal returns |e|.
func AbsDecimal[R any](e Expr[R, decimal.Decimal]) Expr[R, decimal.Decimal] {
	return &decimalUnaryNode[R, decimal.Decimal, decimal.Decimal]{
		unary: newUnary(types.Abs, types.Decimal, e),
		fn:    decimal.Decimal.Abs,
	}
}

// NegateDecimal returns -e.
func NegateDecimal[R any](e Expr[R, decimal.Decimal]) Expr[R, decimal.Decimal] {
	return &decimalUnaryNode[R, decimal.Decimal, decimal.Decimal]{
		unary: newUnary(types.Negate, types.Decimal, e),
		fn:    decimal.Decimal.Neg,
	}
}

// SignDecimal returns 1, 0 or -1 as an int8.
func SignDecimal[R any](e Expr[R, decimal.Decimal]) Expr[R, int8] {
	return &decimalUnaryNode[R, decimal.Decimal, int8]{
		unary: newUnary(types.Sign, types.Int8, e),
		fn:    func(d decimal.Decimal) int8 { return int8(d.Sign()) },
	}
}

// ToDecimal casts a numeric expression to a decimal. Float operands are
// converted to the shortest decimal that round-trips to the same float.
func ToDecimal[R any, A Number](e Expr[R, A]) Expr[R, decimal.Decimal] {
	fn := func(a A) decimal.Decimal { return decimal.NewFromInt(int64(a)) }
	switch KindOf[A]() {
	case types.Float32:
		fn = func(a A) decimal.Decimal { return decimal.NewFromFloat32(float32(a)) }
	case types.Float64:
		fn = func(a A) decimal.Decimal { return decimal.NewFromFloat(float64(a)) }
	}
	return &decimalUnaryNode[R, A, decimal.Decimal]{
		unary: newUnary(types.Cast, types.Decimal, e),
		fn:    fn,
	}
}

// DecimalToFloat64 casts a decimal to the nearest float64.
func DecimalToFloat64[R any](e Expr[R, decimal.Decimal]) Expr[R, float64] {
	return &decimalUnaryNode[R, decimal.Decimal, float64]{
		unary: newUnary(types.Cast, types.Float64, e),
		fn:    decimal.Decimal.InexactFloat64,
	}
}

// PlusDecimal returns a + b.
func PlusDecimal[R any](a, b Expr[R, decimal.Decimal]) Expr[R, decimal.Decimal] {
	return &decimalBinaryNode[R]{
		binary: newBinary(types.Plus, types.Decimal, a, b),
		fn:     decimal.Decimal.Add,
	}
}

// MinusDecimal returns a - b.
func MinusDecimal[R any](a, b Expr[R, decimal.Decimal]) Expr[R, decimal.Decimal] {
	return &decimalBinaryNode[R]{
		binary: newBinary(types.Minus, types.Decimal, a, b),
		fn:     decimal.Decimal.Sub,
	}
}

// MultiplyDecimal returns a * b.
func MultiplyDecimal[R any](a, b Expr[R, decimal.Decimal]) Expr[R, decimal.Decimal] {
	return &decimalBinaryNode[R]{
		binary: newBinary(types.Multiply, types.Decimal, a, b),
		fn:     decimal.Decimal.Mul,
	}
}
