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

type mapper[A, B any] struct {
	f     *Func[A, B]
	shape types.MapperShape
	hash  uint64
}

func newMapper[A, B any](operand Node, f *Func[A, B], nullable bool) mapper[A, B] {
	requireNonNil("operand", operand)
	if f == nil {
		panic(fmt.Errorf("%w: mapping", ErrNilOperand))
	}
	shape := types.Shape(operand.Kind().NonNullable(), requireKind[B]())
	if nullable {
		shape = shape.Nullable()
	}
	return mapper[A, B]{
		f:     f,
		shape: shape,
		hash:  newHasher("map", shape.To).u64(uint64(shape.From)).str(f.name).node(operand).sum(),
	}
}

func (m *mapper[A, B]) Kind() types.Kind         { return m.shape.To }
func (m *mapper[A, B]) Hash() uint64             { return m.hash }
func (m *mapper[A, B]) Shape() types.MapperShape { return m.shape }
func (m *mapper[A, B]) Mapping() FuncRef         { return m.f }

type mapperNode[R, A, B any] struct {
	mapper[A, B]
	operand Expr[R, A]
}

// Map returns a node evaluating f(e(rec)). f may keep the kind (A == B)
// or change it; the node's shape records both kinds. Two mapper nodes
// are equal iff their shapes, operands and function handles are equal.
func Map[R, A, B any](e Expr[R, A], f *Func[A, B]) Expr[R, B] {
	return &mapperNode[R, A, B]{mapper: newMapper(Node(e), f, false), operand: e}
}

func (n *mapperNode[R, A, B]) Eval(rec R) B  { return n.f.Apply(n.operand.Eval(rec)) }
func (n *mapperNode[R, A, B]) Operand() Node { return n.operand }

func (n *mapperNode[R, A, B]) String() string {
	return "map(" + n.operand.String() + ", " + n.f.String() + ")"
}

func (n *mapperNode[R, A, B]) Equal(other Node) bool {
	o, ok := other.(*mapperNode[R, A, B])
	return ok && (n == o || n.shape == o.shape && n.f == o.f && n.operand.Equal(o.operand))
}

type nullableMapperNode[R, A, B any] struct {
	mapper[A, B]
	operand NullableExpr[R, A]
}

// MapNullable is Map over an absent-capable operand. f is applied to
// present values only; absent stays absent.
func MapNullable[R, A, B any](e NullableExpr[R, A], f *Func[A, B]) NullableExpr[R, B] {
	return &nullableMapperNode[R, A, B]{mapper: newMapper(Node(e), f, true), operand: e}
}

func (n *nullableMapperNode[R, A, B]) IsNull(rec R) bool { return n.operand.IsNull(rec) }
func (n *nullableMapperNode[R, A, B]) Operand() Node     { return n.operand }

func (n *nullableMapperNode[R, A, B]) Get(rec R) (B, bool) {
	v, ok := n.operand.Get(rec)
	if !ok {
		var zero B
		return zero, false
	}
	return n.f.Apply(v), true
}

func (n *nullableMapperNode[R, A, B]) String() string {
	return "map(" + n.operand.String() + ", " + n.f.String() + ")"
}

func (n *nullableMapperNode[R, A, B]) Equal(other Node) bool {
	o, ok := other.(*nullableMapperNode[R, A, B])
	return ok && (n == o || n.shape == o.shape && n.f == o.f && n.operand.Equal(o.operand))
}
