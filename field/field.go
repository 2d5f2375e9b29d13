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

// Package field provides expression leaves that read a field of a
// map-shaped record, such as a decoded JSON message:
//
//	temp := field.Float64("sensor.temperature")
//	hot := expr.MinusFloat64Float64(temp, expr.Const[field.Record](30.0))
//	hot.Eval(field.Record{"sensor": map[string]any{"temperature": "31.5"}}) // 1.5
//
// Values are converted loosely with github.com/spf13/cast, so "31.5", 31
// and json.Number("31.5") all read as a float64. A non-nullable leaf panics
// with an *Error when the field is missing or cannot be converted; the
// nullable variants treat missing and nil fields as absent.
package field

import (
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/rulego/typedexpr/expr"
	"github.com/rulego/typedexpr/types"
)

// Record is the record type read by field leaves.
type Record = map[string]any

// Error is the panic value of a field leaf that cannot produce a value.
type Error struct {
	Path string
	Kind types.Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("field: %s: missing %s value", e.Path, e.Kind)
	}
	return fmt.Sprintf("field: %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type leaf[V any] struct {
	path *Path
	kind types.Kind
	conv func(any) (V, error)
	hash uint64
}

func newLeaf[V any](path string, conv func(any) (V, error), nullable bool) leaf[V] {
	p := MustParsePath(path)
	k := expr.KindOf[V]()
	if nullable {
		k = k.Nullable()
	}
	return leaf[V]{path: p, kind: k, conv: conv, hash: xxhash.Sum64String("field:" + k.String() + ":" + p.String())}
}

func (l *leaf[V]) Kind() types.Kind { return l.kind }
func (l *leaf[V]) Hash() uint64     { return l.hash }
func (l *leaf[V]) Field() string    { return l.path.String() }
func (l *leaf[V]) String() string   { return "$" + l.path.String() }

func (l *leaf[V]) convert(raw any) V {
	v, err := l.conv(raw)
	if err != nil {
		panic(&Error{Path: l.path.String(), Kind: l.kind.NonNullable(), Err: err})
	}
	return v
}

type fieldExpr[V any] struct{ leaf[V] }

func (n *fieldExpr[V]) Eval(rec Record) V {
	raw, ok := n.path.Lookup(rec)
	if !ok || raw == nil {
		panic(&Error{Path: n.path.String(), Kind: n.kind})
	}
	return n.convert(raw)
}

func (n *fieldExpr[V]) Equal(other expr.Node) bool {
	o, ok := other.(*fieldExpr[V])
	return ok && n.path.String() == o.path.String()
}

type nullableField[V any] struct{ leaf[V] }

func (n *nullableField[V]) IsNull(rec Record) bool {
	raw, ok := n.path.Lookup(rec)
	return !ok || raw == nil
}

func (n *nullableField[V]) Get(rec Record) (V, bool) {
	raw, ok := n.path.Lookup(rec)
	if !ok || raw == nil {
		var zero V
		return zero, false
	}
	return n.convert(raw), true
}

func (n *nullableField[V]) Equal(other expr.Node) bool {
	o, ok := other.(*nullableField[V])
	return ok && n.path.String() == o.path.String()
}

func required[V any](path string, conv func(any) (V, error)) expr.Expr[Record, V] {
	return &fieldExpr[V]{newLeaf(path, conv, false)}
}

func optional[V any](path string, conv func(any) (V, error)) expr.NullableExpr[Record, V] {
	return &nullableField[V]{newLeaf(path, conv, true)}
}

// Int8 reads path as an int8. It panics with a *PathError if path is malformed.
func Int8(path string) expr.Expr[Record, int8] { return required(path, toInteger[int8]) }

// Int16 reads path as an int16.
func Int16(path string) expr.Expr[Record, int16] { return required(path, toInteger[int16]) }

// Int32 reads path as an int32.
func Int32(path string) expr.Expr[Record, int32] { return required(path, toInteger[int32]) }

// Int64 reads path as an int64.
func Int64(path string) expr.Expr[Record, int64] { return required(path, cast.ToInt64E) }

// Float32 reads path as a float32.
func Float32(path string) expr.Expr[Record, float32] { return required(path, cast.ToFloat32E) }

// Float64 reads path as a float64.
func Float64(path string) expr.Expr[Record, float64] { return required(path, cast.ToFloat64E) }

// Bool reads path as a bool. Strings such as "true" and "1" are accepted.
func Bool(path string) expr.Expr[Record, bool] { return required(path, cast.ToBoolE) }

// String reads path as a string. Numbers are formatted.
func String(path string) expr.Expr[Record, string] { return required(path, cast.ToStringE) }

// Char reads path as a single character. Strings must hold exactly one
// code point; integers are taken as code points.
func Char(path string) expr.Expr[Record, expr.Char] { return required(path, toChar) }

// Decimal reads path as a decimal. Strings are parsed exactly.
func Decimal(path string) expr.Expr[Record, decimal.Decimal] { return required(path, toDecimal) }

// NullableInt8 reads path as an int8, absent where the field is missing or nil.
func NullableInt8(path string) expr.NullableExpr[Record, int8] { return optional(path, toInteger[int8]) }

// NullableInt16 is the absent-capable form of Int16.
func NullableInt16(path string) expr.NullableExpr[Record, int16] {
	return optional(path, toInteger[int16])
}

// NullableInt32 is the absent-capable form of Int32.
func NullableInt32(path string) expr.NullableExpr[Record, int32] {
	return optional(path, toInteger[int32])
}

// NullableInt64 is the absent-capable form of Int64.
func NullableInt64(path string) expr.NullableExpr[Record, int64] {
	return optional(path, cast.ToInt64E)
}

// NullableFloat32 is the absent-capable form of Float32.
func NullableFloat32(path string) expr.NullableExpr[Record, float32] {
	return optional(path, cast.ToFloat32E)
}

// NullableFloat64 is the absent-capable form of Float64.
func NullableFloat64(path string) expr.NullableExpr[Record, float64] {
	return optional(path, cast.ToFloat64E)
}

// NullableBool is the absent-capable form of Bool.
func NullableBool(path string) expr.NullableExpr[Record, bool] { return optional(path, cast.ToBoolE) }

// NullableString is the absent-capable form of String.
func NullableString(path string) expr.NullableExpr[Record, string] {
	return optional(path, cast.ToStringE)
}

// NullableChar is the absent-capable form of Char.
func NullableChar(path string) expr.NullableExpr[Record, expr.Char] { return optional(path, toChar) }

// NullableDecimal is the absent-capable form of Decimal.
func NullableDecimal(path string) expr.NullableExpr[Record, decimal.Decimal] {
	return optional(path, toDecimal)
}

// toInteger rejects values that do not fit instead of wrapping them.
func toInteger[V int8 | int16 | int32](v any) (V, error) {
	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, err
	}
	if int64(V(i)) != i {
		return 0, fmt.Errorf("%d overflows %T", i, V(0))
	}
	return V(i), nil
}

func toChar(v any) (expr.Char, error) {
	switch x := v.(type) {
	case expr.Char:
		return x, nil
	case string:
		r, size := utf8.DecodeRuneInString(x)
		if size == 0 || size != len(x) || r == utf8.RuneError {
			return 0, fmt.Errorf("unable to cast %q to char", x)
		}
		return expr.Char(r), nil
	}
	r, err := cast.ToInt32E(v)
	if err != nil {
		return 0, err
	}
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("unable to cast %d to char", r)
	}
	return expr.Char(r), nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return decimal.NewFromString(x)
	case float32:
		return decimal.NewFromFloat32(x), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case fmt.Stringer:
		return decimal.NewFromString(x.String())
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(i), nil
}
