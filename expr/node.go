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
	"errors"
	"fmt"

	"github.com/rulego/typedexpr/types"
)

var (
	// ErrNilOperand is the panic value of a builder called with a nil operand.
	ErrNilOperand = errors.New("expr: nil operand")
	// ErrInvalidKind is the panic value of a builder whose operand or result
	// type does not map to a declared kind.
	ErrInvalidKind = errors.New("expr: invalid kind")
)

// Node is the kind-erased view of an expression node. It is what
// translators and optimizers work with.
//
// Two nodes are Equal iff they were built by the same builder from equal
// operands. Equal nodes have equal hashes.
type Node interface {
	fmt.Stringer
	// Kind returns the result kind fixed at construction.
	Kind() types.Kind
	// Equal reports structural equality.
	Equal(other Node) bool
	// Hash returns a structural hash consistent with Equal.
	Hash() uint64
}

// Expr is a node that evaluates to a V for every record R.
type Expr[R, V any] interface {
	Node
	// Eval computes the value for rec. It never modifies the node.
	Eval(rec R) V
}

// NullableExpr is a node whose value may be absent for a record.
type NullableExpr[R, V any] interface {
	Node
	// IsNull reports whether the value is absent for rec.
	IsNull(rec R) bool
	// Get returns the value for rec and whether it is present. The value
	// is the zero V when absent.
	Get(rec R) (V, bool)
}

// FuncRef is the kind-erased view of a *Func.
type FuncRef interface {
	Name() string
}

// ConstNode is a leaf returning a constant.
type ConstNode interface {
	Node
	Value() any
}

// LeafNode is a leaf backed by a function of the record.
type LeafNode interface {
	Node
	Func() FuncRef
}

// FieldNode is a leaf reading a named field of the record. The field
// package provides implementations for map records.
type FieldNode interface {
	Node
	Field() string
}

// UnaryNode is implemented by Abs, Cast, Negate, Sign and Sqrt nodes.
type UnaryNode interface {
	Node
	Operator() types.UnaryOp
	Operand() Node
}

// BinaryNode is implemented by arithmetic, division and power nodes.
type BinaryNode interface {
	Node
	Operator() types.BinaryOp
	Left() Node
	Right() Node
}

// OrElseNode turns an absent-capable operand into a present one.
// Default returns nil for the ThrowException strategy.
type OrElseNode interface {
	Node
	Strategy() types.NullStrategy
	Operand() Node
	Default() Node
}

// NullableNode turns a present operand into an absent-capable one.
type NullableNode interface {
	Node
	Operand() Node
	Predicate() Node
}

// NullCheckNode is a boolean node testing the absence of its operand.
type NullCheckNode interface {
	Node
	Operand() Node
	Negated() bool
}

// ComposedNode evaluates Operand against the result of First.
// Optional reports whether a nil result of First makes the node absent.
type ComposedNode interface {
	Node
	First() FuncRef
	Operand() Node
	Optional() bool
}

// MapperNode post-processes the result of Operand through Mapping.
type MapperNode interface {
	Node
	Shape() types.MapperShape
	Operand() Node
	Mapping() FuncRef
}

// ArithmeticError is the panic value of an evaluation whose result
// cannot be represented in the node's kind.
type ArithmeticError struct {
	Op    string
	Value any
	Kind  types.Kind
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("expr: %s: %v out of range for %s", e.Op, e.Value, e.Kind)
}

// NullValueError is the panic value of an OrThrow node evaluated against a
// record for which its operand is absent.
type NullValueError struct {
	Expr string
}

func (e *NullValueError) Error() string {
	return "expr: null value: " + e.Expr
}

func requireNonNil(name string, n Node) {
	if n == nil {
		panic(fmt.Errorf("%w: %s", ErrNilOperand, name))
	}
}

func requireKind[V any]() types.Kind {
	k := KindOf[V]()
	if k == types.Invalid {
		panic(fmt.Errorf("%w: %T", ErrInvalidKind, *new(V)))
	}
	return k
}
