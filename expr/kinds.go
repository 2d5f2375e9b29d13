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

	"github.com/shopspring/decimal"

	"github.com/rulego/typedexpr/types"
)

// Char is the native representation of the char kind. It is a distinct
// type so that a char node is never mistaken for an int32 node.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

// Integer is the set of native integer representations.
type Integer interface {
	int8 | int16 | int32 | int64
}

// Float is the set of native floating point representations.
type Float interface {
	float32 | float64
}

// Number is the set of native representations accepted by the
// arithmetic builders.
type Number interface {
	Integer | Float
}

// KindOf returns the kind represented by the Go type V:
//
//	int8 int16 int32 int64 float32 float64  numeric kinds
//	Char                                    char
//	bool string                             bool, string
//	decimal.Decimal                         decimal
//	any other fmt.Stringer                  enum
//
// Every other type maps to types.Invalid.
func KindOf[V any]() types.Kind {
	var zero V
	switch any(zero).(type) {
	case int8:
		return types.Int8
	case int16:
		return types.Int16
	case int32:
		return types.Int32
	case int64:
		return types.Int64
	case float32:
		return types.Float32
	case float64:
		return types.Float64
	case Char:
		return types.Char
	case bool:
		return types.Bool
	case string:
		return types.String
	case decimal.Decimal:
		return types.Decimal
	case fmt.Stringer:
		return types.Enum
	}
	return types.Invalid
}
