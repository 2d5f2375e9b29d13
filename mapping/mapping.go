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

// Package mapping holds shared function handles for expr.Map.
//
// Mapper nodes compare their functions by handle identity, so two trees
// that upper-case the same field are only equal when both use the same
// handle. Using the handles of this package everywhere gives independently
// built trees equal mappers, and lets translators recognize them.
package mapping

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/rulego/typedexpr/expr"
)

// Casers keep state between calls and are created per call.
var (
	// Upper maps a string to upper case using language-neutral rules.
	Upper = expr.NewFunc("upper", func(s string) string { return cases.Upper(language.Und).String(s) })
	// Lower maps a string to lower case using language-neutral rules.
	Lower = expr.NewFunc("lower", func(s string) string { return cases.Lower(language.Und).String(s) })
	// Title upper-cases the first letter of every word.
	Title = expr.NewFunc("title", func(s string) string { return cases.Title(language.Und).String(s) })
	// TrimSpace removes leading and trailing white space.
	TrimSpace = expr.NewFunc("trim", strings.TrimSpace)
	// NFC normalizes a string to Unicode normalization form C.
	NFC = expr.NewFunc("nfc", norm.NFC.String)
	// Length counts the code points of a string.
	Length = expr.NewFunc("len", func(s string) int32 { return int32(utf8.RuneCountInString(s)) })

	// Round rounds half away from zero.
	Round = expr.NewFunc("round", math.Round)
	// Floor rounds toward negative infinity.
	Floor = expr.NewFunc("floor", math.Floor)
	// Ceil rounds toward positive infinity.
	Ceil = expr.NewFunc("ceil", math.Ceil)
)

var handles = []expr.FuncRef{Upper, Lower, Title, TrimSpace, NFC, Length, Round, Floor, Ceil}

// Lookup returns the handle registered under name.
func Lookup(name string) (expr.FuncRef, bool) {
	for _, h := range handles {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// Known reports whether f is one of the handles of this package. A
// handle created elsewhere under the same name is not known.
func Known(f expr.FuncRef) bool {
	for _, h := range handles {
		if h == f {
			return true
		}
	}
	return false
}

// Names lists the names of all handles.
func Names() []string {
	names := make([]string, len(handles))
	for i, h := range handles {
		names[i] = h.Name()
	}
	return names
}
