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
	"fmt"
	"strings"
)

// UnaryOp is the operator of a node with a single operand.
type UnaryOp uint8

const (
	Abs UnaryOp = iota + 1
	Cast
	Negate
	Sign
	Sqrt
)

var unaryNames = map[UnaryOp]string{
	Abs:    "abs",
	Cast:   "cast",
	Negate: "negate",
	Sign:   "sign",
	Sqrt:   "sqrt",
}

// UnaryOps lists every unary operator.
var UnaryOps = []UnaryOp{Abs, Cast, Negate, Sign, Sqrt}

func (op UnaryOp) String() string {
	if s, ok := unaryNames[op]; ok {
		return s
	}
	return fmt.Sprintf("UnaryOp(%d)", uint8(op))
}

// Result returns the kind produced by op applied to an operand of kind k.
// Cast has no fixed result kind; it returns the target kind unchanged.
func (op UnaryOp) Result(k Kind, target Kind) (Kind, error) {
	if k.IsNullable() {
		return Invalid, fmt.Errorf("%w: %s of %s", ErrNullableOperand, op, k)
	}
	switch op {
	case Abs, Negate:
		if k.IsNumeric() || k == Decimal {
			return k, nil
		}
	case Sign:
		if k.IsNumeric() || k == Decimal {
			return Int8, nil
		}
	case Sqrt:
		if k.IsNumeric() {
			return Float64, nil
		}
	case Cast:
		if (k.IsNumeric() || k == Decimal) && (target.IsNumeric() || target == Decimal) && !target.IsNullable() {
			return target, nil
		}
	default:
		return Invalid, fmt.Errorf("unknown unary operator %d", uint8(op))
	}
	return Invalid, fmt.Errorf("%w: %s of %s", ErrNotNumeric, op, k)
}

// BinaryOp is the operator of a node with two operands.
type BinaryOp uint8

const (
	Pow BinaryOp = iota + 1
	Plus
	Minus
	Multiply
	Divide
	DivideFloor
)

var binaryNames = map[BinaryOp]string{
	Pow:         "pow",
	Plus:        "plus",
	Minus:       "minus",
	Multiply:    "multiply",
	Divide:      "divide",
	DivideFloor: "divide_floor",
}

// BinaryOps lists every binary operator.
var BinaryOps = []BinaryOp{Pow, Plus, Minus, Multiply, Divide, DivideFloor}

func (op BinaryOp) String() string {
	if s, ok := binaryNames[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(op))
}

// ParseBinaryOp accepts the names produced by BinaryOp.String and the
// upper case forms such as DIVIDE_FLOOR.
func ParseBinaryOp(s string) (BinaryOp, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, op := range BinaryOps {
		if binaryNames[op] == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown binary operator %q", s)
}

// Symbol returns the infix symbol used when rendering op.
func (op BinaryOp) Symbol() string {
	switch op {
	case Pow:
		return "**"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case DivideFloor:
		return "//"
	}
	return "?"
}

// NullStrategy decides what a null-handling wrapper produces when the
// wrapped expression is absent.
type NullStrategy uint8

const (
	// UseDefaultValue returns a constant default.
	UseDefaultValue NullStrategy = iota + 1
	// ApplyDefaultMethod evaluates a default expression against the same record.
	ApplyDefaultMethod
	// ThrowException fails the evaluation.
	ThrowException
)

func (s NullStrategy) String() string {
	switch s {
	case UseDefaultValue:
		return "use_default_value"
	case ApplyDefaultMethod:
		return "apply_default_method"
	case ThrowException:
		return "throw_exception"
	}
	return fmt.Sprintf("NullStrategy(%d)", uint8(s))
}

// MapperShape identifies the source and target kinds of a mapping
// function. Two shapes are equal iff both kinds are equal.
type MapperShape struct {
	From Kind
	To   Kind
}

// Shape returns the mapper shape from -> to.
func Shape(from, to Kind) MapperShape {
	return MapperShape{From: from, To: to}
}

// Nullable returns the shape of the same mapping applied to an
// absent-capable operand.
func (s MapperShape) Nullable() MapperShape {
	return MapperShape{From: s.From.Nullable(), To: s.To.Nullable()}
}

// SameKind reports whether the mapping preserves the kind.
func (s MapperShape) SameKind() bool {
	return s.From == s.To
}

func (s MapperShape) String() string {
	return s.From.String() + " -> " + s.To.String()
}

// MarshalText implements encoding.TextMarshaler.
func (op BinaryOp) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *BinaryOp) UnmarshalText(text []byte) error {
	parsed, err := ParseBinaryOp(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
