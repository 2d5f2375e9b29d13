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

// Kind is the result kind of an expression node.
// Every non-nullable kind has exactly one nullable twin; the twin of a kind
// is obtained with Nullable and the reverse with NonNullable.
type Kind uint8

const (
	// Invalid is the zero Kind and is never the kind of a built node.
	Invalid Kind = iota
	// Int8 is an 8-bit signed integer
	Int8
	// Int16 is a 16-bit signed integer
	Int16
	// Int32 is a 32-bit signed integer
	Int32
	// Int64 is a 64-bit signed integer
	Int64
	// Float32 is a 32-bit IEEE 754 floating point number
	Float32
	// Float64 is a 64-bit IEEE 754 floating point number
	Float64
	// Char is a single unicode code point
	Char
	// Bool is a boolean
	Bool
	// String is a UTF-8 string
	String
	// Decimal is an arbitrary-precision decimal number
	Decimal
	// Enum is a value of an enumerated type
	Enum

	// nullableOffset separates the plain kinds from their nullable twins.
	nullableOffset
)

const (
	NullableInt8 = Int8 + nullableOffset + iota
	NullableInt16
	NullableInt32
	NullableInt64
	NullableFloat32
	NullableFloat64
	NullableChar
	NullableBool
	NullableString
	NullableDecimal
	NullableEnum
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	Char:    "char",
	Bool:    "bool",
	String:  "string",
	Decimal: "decimal",
	Enum:    "enum",
}

// Kinds lists every non-nullable kind in declaration order.
var Kinds = []Kind{Int8, Int16, Int32, Int64, Float32, Float64, Char, Bool, String, Decimal, Enum}

// NumericKinds lists the kinds accepted by the arithmetic builders.
var NumericKinds = []Kind{Int8, Int16, Int32, Int64, Float32, Float64}

// String returns the lower case name of the kind; nullable kinds are
// prefixed with "nullable ".
func (k Kind) String() string {
	if k.IsNullable() {
		return "nullable " + k.NonNullable().String()
	}
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses the output of Kind.String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	nullable := false
	if rest, ok := strings.CutPrefix(name, "nullable "); ok {
		nullable = true
		name = strings.TrimSpace(rest)
	}
	for _, k := range Kinds {
		if kindNames[k] == name {
			if nullable {
				return k.Nullable(), nil
			}
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("unknown kind %q", s)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k > Invalid && k != nullableOffset && k <= NullableEnum
}

// IsNullable reports whether k is an absent-capable kind.
func (k Kind) IsNullable() bool {
	return k > nullableOffset && k <= NullableEnum
}

// Nullable returns the absent-capable twin of k. It is idempotent.
func (k Kind) Nullable() Kind {
	if k.IsNullable() || !k.Valid() {
		return k
	}
	return k + nullableOffset
}

// NonNullable returns the plain twin of k. It is idempotent.
func (k Kind) NonNullable() Kind {
	if k.IsNullable() {
		return k - nullableOffset
	}
	return k
}

// IsInteger reports whether k is a signed integer kind, ignoring nullability.
func (k Kind) IsInteger() bool {
	switch k.NonNullable() {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// IsFloat reports whether k is a floating point kind, ignoring nullability.
func (k Kind) IsFloat() bool {
	switch k.NonNullable() {
	case Float32, Float64:
		return true
	}
	return false
}

// IsNumeric reports whether k is an integer or floating point kind.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// Bits returns the width of numeric kinds and 0 for everything else.
func (k Kind) Bits() int {
	switch k.NonNullable() {
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
