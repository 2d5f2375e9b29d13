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
	"fmt"
	"math"

	"github.com/rulego/typedexpr/types"
)

//go:generate go run ../internal/buildergen -o builders_gen.go

// binary holds the state shared by every two-operand node. Operand order
// is significant: plus(a, b) and plus(b, a) are different nodes.
type binary[R, A, B any] struct {
	op    types.BinaryOp
	kind  types.Kind
	left  Expr[R, A]
	right Expr[R, B]
	hash  uint64
}

func newBinary[R, A, B any](op types.BinaryOp, k types.Kind, left Expr[R, A], right Expr[R, B]) binary[R, A, B] {
	requireNonNil("left", left)
	requireNonNil("right", right)
	return binary[R, A, B]{
		op:    op,
		kind:  k,
		left:  left,
		right: right,
		hash:  newHasher("binary", k).u64(uint64(op)).node(left).node(right).sum(),
	}
}

func (b *binary[R, A, B]) Kind() types.Kind         { return b.kind }
func (b *binary[R, A, B]) Hash() uint64             { return b.hash }
func (b *binary[R, A, B]) Operator() types.BinaryOp { return b.op }
func (b *binary[R, A, B]) Left() Node               { return b.left }
func (b *binary[R, A, B]) Right() Node              { return b.right }

func (b *binary[R, A, B]) String() string {
	return b.op.String() + "(" + b.left.String() + ", " + b.right.String() + ")"
}

func (b *binary[R, A, B]) equal(o *binary[R, A, B]) bool {
	return b == o || b.hash == o.hash && b.op == o.op && b.kind == o.kind &&
		b.left.Equal(o.left) && b.right.Equal(o.right)
}

type plusNode[R any, A, B, V Number] struct {
	binary[R, A, B]
}

func (n *plusNode[R, A, B, V]) Eval(rec R) V {
	return V(n.left.Eval(rec)) + V(n.right.Eval(rec))
}

func (n *plusNode[R, A, B, V]) Equal(other Node) bool {
	o, ok := other.(*plusNode[R, A, B, V])
	return ok && n.equal(&o.binary)
}

type minusNode[R any, A, B, V Number] struct {
	binary[R, A, B]
}

func (n *minusNode[R, A, B, V]) Eval(rec R) V {
	return V(n.left.Eval(rec)) - V(n.right.Eval(rec))
}

func (n *minusNode[R, A, B, V]) Equal(other Node) bool {
	o, ok := other.(*minusNode[R, A, B, V])
	return ok && n.equal(&o.binary)
}

type multiplyNode[R any, A, B, V Number] struct {
	binary[R, A, B]
}

func (n *multiplyNode[R, A, B, V]) Eval(rec R) V {
	return V(n.left.Eval(rec)) * V(n.right.Eval(rec))
}

func (n *multiplyNode[R, A, B, V]) Equal(other Node) bool {
	o, ok := other.(*multiplyNode[R, A, B, V])
	return ok && n.equal(&o.binary)
}

type divideNode[R any, A, B Number] struct {
	binary[R, A, B]
}

func (n *divideNode[R, A, B]) Eval(rec R) float64 {
	return float64(n.left.Eval(rec)) / float64(n.right.Eval(rec))
}

func (n *divideNode[R, A, B]) Equal(other Node) bool {
	o, ok := other.(*divideNode[R, A, B])
	return ok && n.equal(&o.binary)
}

// floorDivNode rounds the quotient toward negative infinity.
type floorDivNode[R any, A, B, V Number] struct {
	binary[R, A, B]
	div func(A, B) V
}

func (n *floorDivNode[R, A, B, V]) Eval(rec R) V {
	return n.div(n.left.Eval(rec), n.right.Eval(rec))
}

func (n *floorDivNode[R, A, B, V]) Equal(other Node) bool {
	o, ok := other.(*floorDivNode[R, A, B, V])
	return ok && n.equal(&o.binary)
}

// floorDivInt panics with the runtime divide error when b is zero.
func floorDivInt[A, B, V Number](a A, b B) V {
	x, y := int64(a), int64(b)
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return V(q)
}

// floorDivFloat panics with an *ArithmeticError when the floored quotient
// is not finite or does not fit the integer result kind.
func floorDivFloat[A, B, V Number](a A, b B) V {
	q := math.Floor(float64(a) / float64(b))
	k := KindOf[V]()
	bound := math.Ldexp(1, k.Bits()-1)
	if !(q >= -bound && q < bound) {
		panic(&ArithmeticError{Op: "divide_floor", Value: q, Kind: k})
	}
	return V(q)
}

// Divide returns a / b as a float64 for every numeric operand pair.
// The divisor must not evaluate to zero; this is not checked and follows
// IEEE 754 (±Inf or NaN) when violated.
func Divide[R any, A, B Number](a Expr[R, A], b Expr[R, B]) Expr[R, float64] {
	return &divideNode[R, A, B]{newBinary(types.Divide, types.Float64, a, b)}
}

// DivideValue is Divide with a constant divisor.
func DivideValue[R any, A, B Number](a Expr[R, A], b B) Expr[R, float64] {
	return Divide(a, Const[R](b))
}

// Arith builds op(a, b) for op in Plus, Minus, Multiply, Divide and
// DivideFloor with the result type chosen by the caller. It panics with
// ErrInvalidKind unless V is the kind types.Promote assigns to the operand
// pair. The generated per-pair builders such as PlusInt8Int8 fix V
// statically and should be preferred.
func Arith[V Number, R any, A, B Number](op types.BinaryOp, a Expr[R, A], b Expr[R, B]) Expr[R, V] {
	want, err := types.Promote(op, KindOf[A](), KindOf[B]())
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvalidKind, err))
	}
	if got := KindOf[V](); got != want {
		panic(fmt.Errorf("%w: %s(%s, %s) is %s, not %s", ErrInvalidKind, op, KindOf[A](), KindOf[B](), want, got))
	}
	return arith[V](op, a, b)
}

func arith[V Number, R any, A, B Number](op types.BinaryOp, a Expr[R, A], b Expr[R, B]) Expr[R, V] {
	k := KindOf[V]()
	switch op {
	case types.Plus:
		return &plusNode[R, A, B, V]{newBinary(op, k, a, b)}
	case types.Minus:
		return &minusNode[R, A, B, V]{newBinary(op, k, a, b)}
	case types.Multiply:
		return &multiplyNode[R, A, B, V]{newBinary(op, k, a, b)}
	case types.Divide:
		return any(Divide(a, b)).(Expr[R, V])
	case types.DivideFloor:
		div := floorDivInt[A, B, V]
		if KindOf[A]().IsFloat() || KindOf[B]().IsFloat() {
			div = floorDivFloat[A, B, V]
		}
		return &floorDivNode[R, A, B, V]{binary: newBinary(op, k, a, b), div: div}
	}
	panic(fmt.Errorf("%w: %s is not an arithmetic operator", ErrInvalidKind, op))
}

func arithValue[V Number, R any, A, B Number](op types.BinaryOp, a Expr[R, A], b B) Expr[R, V] {
	return arith[V](op, a, Const[R](b))
}
