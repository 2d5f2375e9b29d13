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

// Package lower translates expression trees into github.com/expr-lang/expr
// programs, so that a tree built in Go can be stored, shipped or run by
// components that only speak the expr language.
//
// Only trees whose leaves are constants or field leaves can be lowered.
// Function leaves, compositions, decimal arithmetic and OrThrow have no
// counterpart and yield ErrUnsupported. Lowered programs follow the expr
// language's arithmetic: integer overflow and narrowing casts are not
// checked the way evaluation checks them.
package lower

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	exprlang "github.com/expr-lang/expr"

	"github.com/rulego/typedexpr/expr"
	"github.com/rulego/typedexpr/mapping"
	"github.com/rulego/typedexpr/types"
)

// ErrUnsupported is returned for nodes without an expr language form.
var ErrUnsupported = errors.New("lower: unsupported node")

// mappers names the expr language function of each known mapping handle.
var mappers = map[expr.FuncRef]string{
	mapping.Upper:     "upper",
	mapping.Lower:     "lower",
	mapping.TrimSpace: "trim",
	mapping.Round:     "round",
	mapping.Floor:     "floor",
	mapping.Ceil:      "ceil",
	mapping.Title:     "title",
	mapping.NFC:       "nfc",
	mapping.Length:    "runeCount",
}

// functions are the mapping handles that are not expr language builtins.
var functions = []exprlang.Option{
	exprlang.Function("title", func(params ...any) (any, error) {
		return mapping.Title.Apply(params[0].(string)), nil
	}, new(func(string) string)),
	exprlang.Function("nfc", func(params ...any) (any, error) {
		return mapping.NFC.Apply(params[0].(string)), nil
	}, new(func(string) string)),
	exprlang.Function("runeCount", func(params ...any) (any, error) {
		return int(mapping.Length.Apply(params[0].(string))), nil
	}, new(func(string) int)),
	exprlang.Function("sqrt", func(params ...any) (any, error) {
		return math.Sqrt(params[0].(float64)), nil
	}, new(func(float64) float64)),
}

// Source renders n as expr language source.
func Source(n expr.Node) (string, error) {
	var b strings.Builder
	if err := render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func unsupported(n expr.Node, why string) error {
	return fmt.Errorf("%w: %s: %s", ErrUnsupported, n, why)
}

func render(b *strings.Builder, n expr.Node) error {
	if n.Kind().NonNullable() == types.Decimal {
		return unsupported(n, "decimal arithmetic")
	}
	switch x := n.(type) {
	case expr.ConstNode:
		return renderConst(b, x)
	case expr.FieldNode:
		renderField(b, x)
		return nil
	case expr.LeafNode:
		return unsupported(n, "function leaf")
	case expr.ComposedNode:
		return unsupported(n, "composition")
	case expr.UnaryNode:
		return renderUnary(b, x)
	case expr.BinaryNode:
		return renderBinary(b, x)
	case expr.OrElseNode:
		if x.Strategy() == types.ThrowException {
			return unsupported(n, "or_throw")
		}
		return infix(b, x.Operand(), "??", x.Default())
	case expr.NullableNode:
		b.WriteByte('(')
		if err := render(b, x.Predicate()); err != nil {
			return err
		}
		b.WriteString(" ? nil : ")
		if err := render(b, x.Operand()); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil
	case expr.NullCheckNode:
		op := "=="
		if x.Negated() {
			op = "!="
		}
		b.WriteByte('(')
		if err := render(b, x.Operand()); err != nil {
			return err
		}
		b.WriteString(" " + op + " nil)")
		return nil
	case expr.MapperNode:
		name, ok := mappers[x.Mapping()]
		if !ok {
			return unsupported(n, "unknown mapping "+x.Mapping().Name())
		}
		if !x.Kind().IsNullable() {
			return call(b, name, x.Operand())
		}
		src, err := Source(x.Operand())
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "(%[1]s == nil ? nil : %[2]s(%[1]s))", src, name)
		return nil
	}
	return unsupported(n, fmt.Sprintf("node type %T", n))
}

func renderConst(b *strings.Builder, n expr.ConstNode) error {
	switch v := n.Value().(type) {
	case int8, int16, int32, int64:
		fmt.Fprint(b, v)
	case float32:
		return renderFloat(b, n, float64(v), 32)
	case float64:
		return renderFloat(b, n, v, 64)
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case string:
		b.WriteString(strconv.Quote(v))
	case expr.Char:
		b.WriteString(strconv.Quote(string(rune(v))))
	case fmt.Stringer:
		b.WriteString(strconv.Quote(v.String()))
	default:
		return unsupported(n, fmt.Sprintf("constant of type %T", v))
	}
	return nil
}

func renderFloat(b *strings.Builder, n expr.Node, v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return unsupported(n, "non-finite constant")
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	if v < 0 {
		s = "(" + s + ")"
	}
	b.WriteString(s)
	return nil
}

// renderField converts the raw field value to the leaf's kind, mirroring
// the loose conversion of field leaves. Nullable leaves use optional
// chaining and pass nil through.
func renderField(b *strings.Builder, n expr.FieldNode) {
	path := n.Field()
	conv := conversion(n.Kind())
	if !n.Kind().IsNullable() {
		if conv == "" {
			b.WriteString(path)
			return
		}
		b.WriteString(conv + "(" + path + ")")
		return
	}
	path = strings.ReplaceAll(path, ".", "?.")
	path = strings.ReplaceAll(path, "[", "?.[")
	if conv == "" {
		b.WriteString(path)
		return
	}
	fmt.Fprintf(b, "(%s == nil ? nil : %s(%s))", path, conv, path)
}

func conversion(k types.Kind) string {
	switch {
	case k.IsInteger():
		return "int"
	case k.IsFloat():
		return "float"
	case k.NonNullable() == types.String:
		return "string"
	}
	return ""
}

func renderUnary(b *strings.Builder, n expr.UnaryNode) error {
	operand := n.Operand()
	switch n.Operator() {
	case types.Abs:
		return call(b, "abs", operand)
	case types.Negate:
		b.WriteString("(-")
		if err := render(b, operand); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil
	case types.Sqrt:
		b.WriteString("sqrt(")
		if err := renderFloatOperand(b, operand); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil
	case types.Cast:
		return call(b, conversion(n.Kind()), operand)
	case types.Sign:
		src, err := Source(operand)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "(%[1]s > 0 ? 1 : (%[1]s < 0 ? -1 : 0))", src)
		return nil
	}
	return unsupported(n, "operator "+n.Operator().String())
}

func renderBinary(b *strings.Builder, n expr.BinaryNode) error {
	switch op := n.Operator(); op {
	case types.Plus, types.Minus, types.Multiply:
		return infix(b, n.Left(), op.Symbol(), n.Right())
	case types.Divide, types.Pow:
		b.WriteByte('(')
		if err := renderFloatOperand(b, n.Left()); err != nil {
			return err
		}
		b.WriteString(" " + op.Symbol() + " ")
		if err := renderFloatOperand(b, n.Right()); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil
	case types.DivideFloor:
		b.WriteString("int(floor(")
		if err := renderFloatOperand(b, n.Left()); err != nil {
			return err
		}
		b.WriteString(" / ")
		if err := renderFloatOperand(b, n.Right()); err != nil {
			return err
		}
		b.WriteString("))")
		return nil
	}
	return unsupported(n, "operator "+n.Operator().String())
}

// renderFloatOperand renders n converted to a float unless it already is one.
func renderFloatOperand(b *strings.Builder, n expr.Node) error {
	if n.Kind().IsFloat() {
		return render(b, n)
	}
	return call(b, "float", n)
}

func infix(b *strings.Builder, left expr.Node, op string, right expr.Node) error {
	b.WriteByte('(')
	if err := render(b, left); err != nil {
		return err
	}
	b.WriteString(" " + op + " ")
	if err := render(b, right); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

func call(b *strings.Builder, name string, arg expr.Node) error {
	b.WriteString(name + "(")
	if err := render(b, arg); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}
