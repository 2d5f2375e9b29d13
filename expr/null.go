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
	"github.com/rulego/typedexpr/types"
)

type orElse[R, V any] struct {
	strategy types.NullStrategy
	kind     types.Kind
	operand  NullableExpr[R, V]
	def      Node
	hash     uint64
}

func newOrElse[R, V any](s types.NullStrategy, operand NullableExpr[R, V], def Node) orElse[R, V] {
	requireNonNil("operand", operand)
	k := operand.Kind().NonNullable()
	h := newHasher("or_else", k).u64(uint64(s)).node(operand)
	if def != nil {
		h.node(def)
	}
	return orElse[R, V]{strategy: s, kind: k, operand: operand, def: def, hash: h.sum()}
}

func (n *orElse[R, V]) Kind() types.Kind             { return n.kind }
func (n *orElse[R, V]) Hash() uint64                 { return n.hash }
func (n *orElse[R, V]) Strategy() types.NullStrategy { return n.strategy }
func (n *orElse[R, V]) Operand() Node                { return n.operand }
func (n *orElse[R, V]) Default() Node                { return n.def }

func (n *orElse[R, V]) String() string {
	switch n.strategy {
	case types.UseDefaultValue:
		return "or_else(" + n.operand.String() + ", " + n.def.String() + ")"
	case types.ApplyDefaultMethod:
		return "or_else_get(" + n.operand.String() + ", " + n.def.String() + ")"
	}
	return "or_throw(" + n.operand.String() + ")"
}

func (n *orElse[R, V]) equal(o *orElse[R, V]) bool {
	if n == o {
		return true
	}
	if n.hash != o.hash || n.strategy != o.strategy || !n.operand.Equal(o.operand) {
		return false
	}
	if n.def == nil || o.def == nil {
		return n.def == nil && o.def == nil
	}
	return n.def.Equal(o.def)
}

type orElseValue[R, V any] struct {
	orElse[R, V]
	value V
}

// OrElse returns a node evaluating to the value of e, or to d for records
// where e is absent.
func OrElse[R, V any](e NullableExpr[R, V], d V) Expr[R, V] {
	return &orElseValue[R, V]{orElse: newOrElse(types.UseDefaultValue, e, Const[R](d)), value: d}
}

func (n *orElseValue[R, V]) Eval(rec R) V {
	if v, ok := n.operand.Get(rec); ok {
		return v
	}
	return n.value
}

func (n *orElseValue[R, V]) Equal(other Node) bool {
	o, ok := other.(*orElseValue[R, V])
	return ok && n.equal(&o.orElse)
}

type orElseGet[R, V any] struct {
	orElse[R, V]
	fallback Expr[R, V]
}

// OrElseGet returns a node evaluating to the value of e, or to the value
// of fallback computed against the same record where e is absent.
func OrElseGet[R, V any](e NullableExpr[R, V], fallback Expr[R, V]) Expr[R, V] {
	requireNonNil("fallback", fallback)
	return &orElseGet[R, V]{orElse: newOrElse(types.ApplyDefaultMethod, e, fallback), fallback: fallback}
}

func (n *orElseGet[R, V]) Eval(rec R) V {
	if v, ok := n.operand.Get(rec); ok {
		return v
	}
	return n.fallback.Eval(rec)
}

func (n *orElseGet[R, V]) Equal(other Node) bool {
	o, ok := other.(*orElseGet[R, V])
	return ok && n.equal(&o.orElse)
}

type orThrow[R, V any] struct {
	orElse[R, V]
}

// OrThrow returns a node evaluating to the value of e. Evaluating it
// against a record where e is absent panics with a *NullValueError.
func OrThrow[R, V any](e NullableExpr[R, V]) Expr[R, V] {
	return &orThrow[R, V]{newOrElse(types.ThrowException, e, nil)}
}

func (n *orThrow[R, V]) Eval(rec R) V {
	v, ok := n.operand.Get(rec)
	if !ok {
		panic(&NullValueError{Expr: n.operand.String()})
	}
	return v
}

func (n *orThrow[R, V]) Equal(other Node) bool {
	o, ok := other.(*orThrow[R, V])
	return ok && n.equal(&o.orElse)
}

type nullableNode[R, V any] struct {
	inner  Expr[R, V]
	isNull Expr[R, bool]
	kind   types.Kind
	hash   uint64
}

// Nullable returns an absent-capable node that is absent for records
// where isNull is true and delegates to inner otherwise. inner is not
// evaluated for absent records.
func Nullable[R, V any](inner Expr[R, V], isNull Expr[R, bool]) NullableExpr[R, V] {
	requireNonNil("inner", inner)
	requireNonNil("predicate", isNull)
	k := inner.Kind().Nullable()
	return &nullableNode[R, V]{
		inner:  inner,
		isNull: isNull,
		kind:   k,
		hash:   newHasher("nullable", k).node(inner).node(isNull).sum(),
	}
}

func (n *nullableNode[R, V]) IsNull(rec R) bool { return n.isNull.Eval(rec) }
func (n *nullableNode[R, V]) Kind() types.Kind  { return n.kind }
func (n *nullableNode[R, V]) Hash() uint64      { return n.hash }
func (n *nullableNode[R, V]) Operand() Node     { return n.inner }
func (n *nullableNode[R, V]) Predicate() Node   { return n.isNull }

func (n *nullableNode[R, V]) Get(rec R) (V, bool) {
	if n.isNull.Eval(rec) {
		var zero V
		return zero, false
	}
	return n.inner.Eval(rec), true
}

func (n *nullableNode[R, V]) String() string {
	return "nullable(" + n.inner.String() + ", " + n.isNull.String() + ")"
}

func (n *nullableNode[R, V]) Equal(other Node) bool {
	o, ok := other.(*nullableNode[R, V])
	return ok && (n == o || n.hash == o.hash && n.inner.Equal(o.inner) && n.isNull.Equal(o.isNull))
}

type nullCheck[R, V any] struct {
	operand NullableExpr[R, V]
	negated bool
	hash    uint64
}

// IsNull returns a boolean node that is true where e is absent.
func IsNull[R, V any](e NullableExpr[R, V]) Expr[R, bool] {
	return newNullCheck(e, false)
}

// IsNotNull returns a boolean node that is true where e is present.
func IsNotNull[R, V any](e NullableExpr[R, V]) Expr[R, bool] {
	return newNullCheck(e, true)
}

func newNullCheck[R, V any](e NullableExpr[R, V], negated bool) *nullCheck[R, V] {
	requireNonNil("operand", e)
	h := newHasher("is_null", types.Bool).node(e)
	if negated {
		h.u64(1)
	}
	return &nullCheck[R, V]{operand: e, negated: negated, hash: h.sum()}
}

func (n *nullCheck[R, V]) Eval(rec R) bool   { return n.operand.IsNull(rec) != n.negated }
func (n *nullCheck[R, V]) Kind() types.Kind { return types.Bool }
func (n *nullCheck[R, V]) Hash() uint64     { return n.hash }
func (n *nullCheck[R, V]) Operand() Node    { return n.operand }
func (n *nullCheck[R, V]) Negated() bool    { return n.negated }

func (n *nullCheck[R, V]) String() string {
	if n.negated {
		return "is_not_null(" + n.operand.String() + ")"
	}
	return "is_null(" + n.operand.String() + ")"
}

func (n *nullCheck[R, V]) Equal(other Node) bool {
	o, ok := other.(*nullCheck[R, V])
	return ok && (n == o || n.negated == o.negated && n.operand.Equal(o.operand))
}
