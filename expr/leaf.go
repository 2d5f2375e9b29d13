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

	"github.com/rulego/typedexpr/types"
)

type constNode[R, V any] struct {
	v    V
	kind types.Kind
	hash uint64
}

// Const returns a leaf that evaluates to v for every record.
// The record type cannot be inferred and is given explicitly:
//
//	five := expr.Const[Order](int32(5))
func Const[R, V any](v V) Expr[R, V] {
	k := requireKind[V]()
	return &constNode[R, V]{
		v:    v,
		kind: k,
		hash: newHasher("const", k).u64(hashValue(v)).sum(),
	}
}

func (n *constNode[R, V]) Eval(R) V          { return n.v }
func (n *constNode[R, V]) Kind() types.Kind { return n.kind }
func (n *constNode[R, V]) Hash() uint64     { return n.hash }
func (n *constNode[R, V]) Value() any       { return n.v }
func (n *constNode[R, V]) String() string   { return formatValue(n.v) }

func (n *constNode[R, V]) Equal(other Node) bool {
	o, ok := other.(*constNode[R, V])
	return ok && (n == o || n.hash == o.hash && valuesEqual(n.v, o.v))
}

type funcLeaf[R, V any] struct {
	f    *Func[R, V]
	kind types.Kind
	hash uint64
}

// FromFunc returns a leaf evaluating f against the record. Leaves built
// from the same handle are equal.
func FromFunc[R, V any](f *Func[R, V]) Expr[R, V] {
	if f == nil {
		panic(fmt.Errorf("%w: func", ErrNilOperand))
	}
	k := requireKind[V]()
	return &funcLeaf[R, V]{f: f, kind: k, hash: newHasher("leaf", k).str(f.name).sum()}
}

func (n *funcLeaf[R, V]) Eval(rec R) V      { return n.f.Apply(rec) }
func (n *funcLeaf[R, V]) Kind() types.Kind { return n.kind }
func (n *funcLeaf[R, V]) Hash() uint64     { return n.hash }
func (n *funcLeaf[R, V]) Func() FuncRef    { return n.f }
func (n *funcLeaf[R, V]) String() string   { return n.f.String() }

func (n *funcLeaf[R, V]) Equal(other Node) bool {
	o, ok := other.(*funcLeaf[R, V])
	return ok && n.f == o.f
}

type nullableFuncLeaf[R, V any] struct {
	f    *Func[R, *V]
	kind types.Kind
	hash uint64
}

// FromNullableFunc returns an absent-capable leaf. The value is absent
// whenever f returns nil.
func FromNullableFunc[R, V any](f *Func[R, *V]) NullableExpr[R, V] {
	if f == nil {
		panic(fmt.Errorf("%w: func", ErrNilOperand))
	}
	k := requireKind[V]().Nullable()
	return &nullableFuncLeaf[R, V]{f: f, kind: k, hash: newHasher("leaf", k).str(f.name).sum()}
}

func (n *nullableFuncLeaf[R, V]) IsNull(rec R) bool { return n.f.Apply(rec) == nil }
func (n *nullableFuncLeaf[R, V]) Kind() types.Kind  { return n.kind }
func (n *nullableFuncLeaf[R, V]) Hash() uint64      { return n.hash }
func (n *nullableFuncLeaf[R, V]) Func() FuncRef     { return n.f }
func (n *nullableFuncLeaf[R, V]) String() string    { return n.f.String() }

func (n *nullableFuncLeaf[R, V]) Get(rec R) (V, bool) {
	p := n.f.Apply(rec)
	if p == nil {
		var zero V
		return zero, false
	}
	return *p, true
}

func (n *nullableFuncLeaf[R, V]) Equal(other Node) bool {
	o, ok := other.(*nullableFuncLeaf[R, V])
	return ok && n.f == o.f
}
