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

// composed holds the first step of a composition; the second step lives
// in the concrete node so it keeps its static type.
type composed[T, A any] struct {
	first *Func[T, A]
	kind  types.Kind
	hash  uint64
}

func newComposed[T, A any](first *Func[T, A], second Node, k types.Kind) composed[T, A] {
	if first == nil {
		panic(fmt.Errorf("%w: first", ErrNilOperand))
	}
	requireNonNil("second", second)
	return composed[T, A]{
		first: first,
		kind:  k,
		hash:  newHasher("compose", k).str(first.name).node(second).sum(),
	}
}

func (c *composed[T, A]) Kind() types.Kind { return c.kind }
func (c *composed[T, A]) Hash() uint64     { return c.hash }
func (c *composed[T, A]) First() FuncRef   { return c.first }

type composedNode[T, A, V any] struct {
	composed[T, A]
	second Expr[A, V]
}

// Compose returns a node over T that applies first to the record and
// evaluates second against the result.
func Compose[T, A, V any](first *Func[T, A], second Expr[A, V]) Expr[T, V] {
	requireNonNil("second", second)
	return &composedNode[T, A, V]{composed: newComposed(first, Node(second), second.Kind()), second: second}
}

func (n *composedNode[T, A, V]) Eval(rec T) V   { return n.second.Eval(n.first.Apply(rec)) }
func (n *composedNode[T, A, V]) Operand() Node  { return n.second }
func (n *composedNode[T, A, V]) Optional() bool { return false }

func (n *composedNode[T, A, V]) String() string {
	return "compose(" + n.first.String() + ", " + n.second.String() + ")"
}

func (n *composedNode[T, A, V]) Equal(other Node) bool {
	o, ok := other.(*composedNode[T, A, V])
	return ok && (n == o || n.first == o.first && n.second.Equal(o.second))
}

type composedNullable[T, A, V any] struct {
	composed[T, A]
	second NullableExpr[A, V]
}

// ComposeNullable is Compose for an absent-capable second step. The
// composed node is absent exactly where second is absent for the
// transformed record.
func ComposeNullable[T, A, V any](first *Func[T, A], second NullableExpr[A, V]) NullableExpr[T, V] {
	requireNonNil("second", second)
	return &composedNullable[T, A, V]{composed: newComposed(first, Node(second), second.Kind()), second: second}
}

func (n *composedNullable[T, A, V]) IsNull(rec T) bool   { return n.second.IsNull(n.first.Apply(rec)) }
func (n *composedNullable[T, A, V]) Get(rec T) (V, bool) { return n.second.Get(n.first.Apply(rec)) }
func (n *composedNullable[T, A, V]) Operand() Node       { return n.second }
func (n *composedNullable[T, A, V]) Optional() bool      { return false }

func (n *composedNullable[T, A, V]) String() string {
	return "compose(" + n.first.String() + ", " + n.second.String() + ")"
}

func (n *composedNullable[T, A, V]) Equal(other Node) bool {
	o, ok := other.(*composedNullable[T, A, V])
	return ok && (n == o || n.first == o.first && n.second.Equal(o.second))
}

type composedOptional[T, A, V any] struct {
	composed[T, *A]
	second Expr[A, V]
}

// ComposeOptional composes a first step that may produce no value. The
// node is absent where first returns nil; second is not evaluated then.
func ComposeOptional[T, A, V any](first *Func[T, *A], second Expr[A, V]) NullableExpr[T, V] {
	requireNonNil("second", second)
	return &composedOptional[T, A, V]{
		composed: newComposed(first, Node(second), second.Kind().Nullable()),
		second:   second,
	}
}

func (n *composedOptional[T, A, V]) IsNull(rec T) bool { return n.first.Apply(rec) == nil }
func (n *composedOptional[T, A, V]) Operand() Node     { return n.second }
func (n *composedOptional[T, A, V]) Optional() bool    { return true }

func (n *composedOptional[T, A, V]) Get(rec T) (V, bool) {
	a := n.first.Apply(rec)
	if a == nil {
		var zero V
		return zero, false
	}
	return n.second.Eval(*a), true
}

func (n *composedOptional[T, A, V]) String() string {
	return "compose_optional(" + n.first.String() + ", " + n.second.String() + ")"
}

func (n *composedOptional[T, A, V]) Equal(other Node) bool {
	o, ok := other.(*composedOptional[T, A, V])
	return ok && (n == o || n.first == o.first && n.second.Equal(o.second))
}
