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
	"math"

	"github.com/rulego/typedexpr/types"
)

// unary holds the state shared by every single-operand node.
type unary[R, A any] struct {
	op      types.UnaryOp
	kind    types.Kind
	operand Expr[R, A]
	hash    uint64
}

func newUnary[R, A any](op types.UnaryOp, k types.Kind, operand Expr[R, A]) unary[R, A] {
	requireNonNil("operand", operand)
	return unary[R, A]{
		op:      op,
		kind:    k,
		operand: operand,
		hash:    newHasher("unary", k).u64(uint64(op)).node(operand).sum(),
	}
}

func (u *unary[R, A]) Kind() types.Kind        { return u.kind }
func (u *unary[R, A]) Hash() uint64            { return u.hash }
func (u *unary[R, A]) Operator() types.UnaryOp { return u.op }
func (u *unary[R, A]) Operand() Node           { return u.operand }

func (u *unary[R, A]) String() string {
	if u.op == types.Cast {
		return "cast<" + u.kind.String() + ">(" + u.operand.String() + ")"
	}
	return u.op.String() + "(" + u.operand.String() + ")"
}

func (u *unary[R, A]) equal(o *unary[R, A]) bool {
	return u == o || u.hash == o.hash && u.op == o.op && u.kind == o.kind && u.operand.Equal(o.operand)
}

type absNode[R any, V Number] struct {
	unary[R, V]
	abs func(V) V
}

// Abs returns |e|. The result kind is the operand kind. For integer kinds
// the absolute value of the minimum value wraps to itself.
func Abs[R any, V Number](e Expr[R, V]) Expr[R, V] {
	k := KindOf[V]()
	fn := absInt[V]
	if k.IsFloat() {
		fn = absFloat[V]
	}
	return &absNode[R, V]{unary: newUnary(types.Abs, k, e), abs: fn}
}

func absInt[V Number](v V) V {
	if v < 0 {
		return -v
	}
	return v
}

func absFloat[V Number](v V) V {
	return V(math.Abs(float64(v)))
}

func (n *absNode[R, V]) Eval(rec R) V {
	return n.abs(n.operand.Eval(rec))
}

func (n *absNode[R, V]) Equal(other Node) bool {
	o, ok := other.(*absNode[R, V])
	return ok && n.equal(&o.unary)
}

type negateNode[R any, V Number] struct {
	unary[R, V]
}

// Negate returns -e with the operand kind.
func Negate[R any, V Number](e Expr[R, V]) Expr[R, V] {
	return &negateNode[R, V]{newUnary(types.Negate, KindOf[V](), e)}
}

func (n *negateNode[R, V]) Eval(rec R) V {
	return -n.operand.Eval(rec)
}

func (n *negateNode[R, V]) Equal(other Node) bool {
	o, ok := other.(*negateNode[R, V])
	return ok && n.equal(&o.unary)
}

type signNode[R any, V Number] struct {
	unary[R, V]
}

// Sign returns 1, 0 or -1 as an int8. NaN has sign 0.
func Sign[R any, V Number](e Expr[R, V]) Expr[R, int8] {
	return &signNode[R, V]{newUnary(types.Sign, types.Int8, e)}
}

func (n *signNode[R, V]) Eval(rec R) int8 {
	v := n.operand.Eval(rec)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (n *signNode[R, V]) Equal(other Node) bool {
	o, ok := other.(*signNode[R, V])
	return ok && n.equal(&o.unary)
}

type sqrtNode[R any, V Number] struct {
	unary[R, V]
}

// Sqrt returns the square root as a float64. Negative operands yield NaN.
func Sqrt[R any, V Number](e Expr[R, V]) Expr[R, float64] {
	return &sqrtNode[R, V]{newUnary(types.Sqrt, types.Float64, e)}
}

func (n *sqrtNode[R, V]) Eval(rec R) float64 {
	return math.Sqrt(float64(n.operand.Eval(rec)))
}

func (n *sqrtNode[R, V]) Equal(other Node) bool {
	o, ok := other.(*sqrtNode[R, V])
	return ok && n.equal(&o.unary)
}

type castNode[R any, A, V Number] struct {
	unary[R, A]
	convert func(A) V
}

// Cast converts e to the kind of V. Widening casts are exact; a
// narrowing cast panics with an *ArithmeticError when the value does not
// fit, and float to integer casts truncate toward zero. Casting to the
// operand's own kind returns e.
//
//	ratio := expr.Cast[float64](count)
func Cast[V Number, R any, A Number](e Expr[R, A]) Expr[R, V] {
	requireNonNil("operand", e)
	from, to := KindOf[A](), KindOf[V]()
	if from == to {
		return any(e).(Expr[R, V])
	}
	return &castNode[R, A, V]{
		unary:   newUnary(types.Cast, to, e),
		convert: converter[A, V](from, to),
	}
}

func (n *castNode[R, A, V]) Eval(rec R) V {
	return n.convert(n.operand.Eval(rec))
}

func (n *castNode[R, A, V]) Equal(other Node) bool {
	o, ok := other.(*castNode[R, A, V])
	return ok && n.equal(&o.unary)
}

func converter[A, V Number](from, to types.Kind) func(A) V {
	switch {
	case to == types.Float64:
		return widen[A, V]
	case to == types.Float32:
		if from == types.Float64 {
			return narrowFloat[A, V]
		}
		return widen[A, V]
	case from.IsInteger() && to.Bits() >= from.Bits():
		return widen[A, V]
	case from.IsInteger():
		return narrowInt[A, V]
	}
	bound := math.Ldexp(1, to.Bits()-1)
	return func(a A) V {
		t := math.Trunc(float64(a))
		if !(t >= -bound && t < bound) {
			panic(&ArithmeticError{Op: "cast", Value: a, Kind: to})
		}
		return V(a)
	}
}

func widen[A, V Number](a A) V {
	return V(a)
}

func narrowInt[A, V Number](a A) V {
	v := V(a)
	if A(v) != a {
		panic(&ArithmeticError{Op: "cast", Value: a, Kind: KindOf[V]()})
	}
	return v
}

func narrowFloat[A, V Number](a A) V {
	v := V(a)
	if math.IsInf(float64(v), 0) && !math.IsInf(float64(a), 0) {
		panic(&ArithmeticError{Op: "cast", Value: a, Kind: KindOf[V]()})
	}
	return v
}

// AsInt8 is Cast[int8].
func AsInt8[R any, A Number](e Expr[R, A]) Expr[R, int8] { return Cast[int8, R, A](e) }

// AsInt16 is Cast[int16].
func AsInt16[R any, A Number](e Expr[R, A]) Expr[R, int16] { return Cast[int16, R, A](e) }

// AsInt32 is Cast[int32].
func AsInt32[R any, A Number](e Expr[R, A]) Expr[R, int32] { return Cast[int32, R, A](e) }

// AsInt64 is Cast[int64].
func AsInt64[R any, A Number](e Expr[R, A]) Expr[R, int64] { return Cast[int64, R, A](e) }

// AsFloat32 is Cast[float32].
func AsFloat32[R any, A Number](e Expr[R, A]) Expr[R, float32] { return Cast[float32, R, A](e) }

// AsFloat64 is Cast[float64].
func AsFloat64[R any, A Number](e Expr[R, A]) Expr[R, float64] { return Cast[float64, R, A](e) }
