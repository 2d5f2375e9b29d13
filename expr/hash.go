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
	encbin "encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"github.com/rulego/typedexpr/types"
)

// hasher accumulates a node fingerprint. Nodes hash once, at construction,
// from their tag, kind and the already computed hashes of their children.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher(tag string, k types.Kind) *hasher {
	h := &hasher{d: xxhash.New()}
	h.str(tag)
	return h.u64(uint64(k))
}

func (h *hasher) u64(v uint64) *hasher {
	encbin.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
	return h
}

func (h *hasher) str(s string) *hasher {
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
	return h
}

func (h *hasher) node(n Node) *hasher {
	return h.u64(n.Hash())
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}

// hashValue hashes a native value consistently with valuesEqual.
func hashValue[V any](v V) uint64 {
	var buf [8]byte
	switch x := any(v).(type) {
	case int8:
		encbin.LittleEndian.PutUint64(buf[:], uint64(x))
	case int16:
		encbin.LittleEndian.PutUint64(buf[:], uint64(x))
	case int32:
		encbin.LittleEndian.PutUint64(buf[:], uint64(x))
	case int64:
		encbin.LittleEndian.PutUint64(buf[:], uint64(x))
	case float32:
		encbin.LittleEndian.PutUint64(buf[:], uint64(math.Float32bits(x)))
	case float64:
		encbin.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
	case Char:
		encbin.LittleEndian.PutUint64(buf[:], uint64(x))
	case bool:
		if x {
			buf[0] = 1
		}
	case string:
		return xxhash.Sum64String(x)
	case decimal.Decimal:
		return xxhash.Sum64String(x.String())
	default:
		return xxhash.Sum64String(fmt.Sprintf("%T:%v", v, v))
	}
	return xxhash.Sum64(buf[:])
}

// valuesEqual compares native values. Floats compare by bit pattern so
// that equality is reflexive for NaN, decimals compare numerically.
func valuesEqual[V any](a, b V) bool {
	switch x := any(a).(type) {
	case float32:
		return math.Float32bits(x) == math.Float32bits(any(b).(float32))
	case float64:
		return math.Float64bits(x) == math.Float64bits(any(b).(float64))
	case decimal.Decimal:
		return x.Equal(any(b).(decimal.Decimal))
	}
	return any(a) == any(b)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case Char:
		return strconv.QuoteRune(rune(x))
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
