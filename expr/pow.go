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

// powConst is base ** exponent with a constant exponent. The right
// operand is the constant leaf so that the node renders and compares like
// any other binary node; exponent caches its value for the fast paths.
type powConst[R any, A Number] struct {
	binary[R, A, float64]
	exponent float64
}

type powZero[R any, A Number] struct{ powConst[R, A] }
type powOne[R any, A Number] struct{ powConst[R, A] }
type powSquare[R any, A Number] struct{ powConst[R, A] }
type powCube[R any, A Number] struct{ powConst[R, A] }
type powInverse[R any, A Number] struct{ powConst[R, A] }
type powGeneral[R any, A Number] struct{ powConst[R, A] }

// Pow returns base ** exponent as a float64.
//
// Exponents 0, 1, 2, 3 and -1 are evaluated by multiplication or
// reciprocal instead of math.Pow. The base is evaluated in every case;
// exponent 0 then yields exactly 1. Exponent -1 computes 1/x without
// special casing x == 0, which yields ±Inf like math.Pow does.
func Pow[R any, A Number](base Expr[R, A], exponent float64) Expr[R, float64] {
	p := powConst[R, A]{
		binary:   newBinary(types.Pow, types.Float64, base, Const[R](exponent)),
		exponent: exponent,
	}
	switch exponent {
	case 0:
		return &powZero[R, A]{p}
	case 1:
		return &powOne[R, A]{p}
	case 2:
		return &powSquare[R, A]{p}
	case 3:
		return &powCube[R, A]{p}
	case -1:
		return &powInverse[R, A]{p}
	}
	return &powGeneral[R, A]{p}
}

func (n *powZero[R, A]) Eval(rec R) float64 {
	n.left.Eval(rec)
	return 1
}

func (n *powOne[R, A]) Eval(rec R) float64 {
	return float64(n.left.Eval(rec))
}

func (n *powSquare[R, A]) Eval(rec R) float64 {
	x := float64(n.left.Eval(rec))
	return x * x
}

func (n *powCube[R, A]) Eval(rec R) float64 {
	x := float64(n.left.Eval(rec))
	return x * x * x
}

func (n *powInverse[R, A]) Eval(rec R) float64 {
	return 1 / float64(n.left.Eval(rec))
}

func (n *powGeneral[R, A]) Eval(rec R) float64 {
	return math.Pow(float64(n.left.Eval(rec)), n.exponent)
}

// Every exponent has exactly one node type, so comparing the binary part
// of two nodes of the same type also compares the fast path.

func (n *powZero[R, A]) Equal(other Node) bool {
	o, ok := other.(*powZero[R, A])
	return ok && n.equal(&o.binary)
}

func (n *powOne[R, A]) Equal(other Node) bool {
	o, ok := other.(*powOne[R, A])
	return ok && n.equal(&o.binary)
}

func (n *powSquare[R, A]) Equal(other Node) bool {
	o, ok := other.(*powSquare[R, A])
	return ok && n.equal(&o.binary)
}

func (n *powCube[R, A]) Equal(other Node) bool {
	o, ok := other.(*powCube[R, A])
	return ok && n.equal(&o.binary)
}

func (n *powInverse[R, A]) Equal(other Node) bool {
	o, ok := other.(*powInverse[R, A])
	return ok && n.equal(&o.binary)
}

func (n *powGeneral[R, A]) Equal(other Node) bool {
	o, ok := other.(*powGeneral[R, A])
	return ok && n.equal(&o.binary)
}

type powExpr[R any, A, E Number] struct {
	binary[R, A, E]
}

// PowExpr returns base ** exponent where the exponent is computed per
// record. The same fast paths as Pow are chosen per evaluation. A Const
// exponent builds the same node as Pow, so PowExpr(x, Const(2.0)) equals
// Pow(x, 2).
func PowExpr[R any, A, E Number](base Expr[R, A], exponent Expr[R, E]) Expr[R, float64] {
	if c, ok := exponent.(*constNode[R, E]); ok {
		return Pow(base, float64(c.v))
	}
	return &powExpr[R, A, E]{newBinary(types.Pow, types.Float64, base, exponent)}
}

func (n *powExpr[R, A, E]) Eval(rec R) float64 {
	return pow(float64(n.left.Eval(rec)), float64(n.right.Eval(rec)))
}

func (n *powExpr[R, A, E]) Equal(other Node) bool {
	o, ok := other.(*powExpr[R, A, E])
	return ok && n.equal(&o.binary)
}

func pow(x, e float64) float64 {
	switch e {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	case -1:
		return 1 / x
	}
	return math.Pow(x, e)
}
