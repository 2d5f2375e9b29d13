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

package field

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// PathError reports a malformed field path.
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("field: path %q: %s", e.Path, e.Message)
}

type partKind uint8

const (
	partField partKind = iota
	partIndex
	partKey
)

type part struct {
	kind  partKind
	name  string
	index int
}

// Path is a parsed field path. Supported forms:
//
//	device.info.name    nested map fields
//	data[0]             slice index, negative indices count from the end
//	users[0].name       field of a slice element
//	config['key']       quoted map key, may contain any character but quotes
//	items[0][1]         chained access
type Path struct {
	raw   string
	parts []part
}

// ParsePath parses a field path.
func ParsePath(s string) (*Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &PathError{Path: s, Message: "empty path"}
	}
	p := &Path{}
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return nil, &PathError{Path: s, Message: "empty segment"}
		}
		bracket := strings.IndexByte(seg, '[')
		if bracket == -1 {
			p.parts = append(p.parts, part{kind: partField, name: seg})
			continue
		}
		if bracket > 0 {
			p.parts = append(p.parts, part{kind: partField, name: seg[:bracket]})
		} else if len(p.parts) == 0 {
			return nil, &PathError{Path: s, Message: "path must start with a field name"}
		}
		for rest := seg[bracket:]; rest != ""; {
			if rest[0] != '[' {
				return nil, &PathError{Path: s, Message: "unexpected " + strconv.Quote(rest)}
			}
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, &PathError{Path: s, Message: "unmatched bracket"}
			}
			pt, err := parseBracket(rest[1:end])
			if err != nil {
				return nil, &PathError{Path: s, Message: err.Error()}
			}
			p.parts = append(p.parts, pt)
			rest = rest[end+1:]
		}
	}
	p.raw = p.render()
	return p, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseBracket(content string) (part, error) {
	content = strings.TrimSpace(content)
	if n := len(content); n >= 2 && (content[0] == '\'' || content[0] == '"') {
		if content[n-1] != content[0] {
			return part{}, fmt.Errorf("unterminated key %s", content)
		}
		return part{kind: partKey, name: content[1 : n-1]}, nil
	}
	i, err := strconv.Atoi(content)
	if err != nil {
		return part{}, fmt.Errorf("invalid index %q", content)
	}
	return part{kind: partIndex, index: i}, nil
}

// render returns the normalized form used for equality: double quoted keys
// and no whitespace inside brackets.
func (p *Path) render() string {
	var b strings.Builder
	for i, pt := range p.parts {
		switch pt.kind {
		case partField:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(pt.name)
		case partIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(pt.index))
			b.WriteByte(']')
		case partKey:
			b.WriteByte('[')
			b.WriteString(strconv.Quote(pt.name))
			b.WriteByte(']')
		}
	}
	return b.String()
}

func (p *Path) String() string { return p.raw }

// Root returns the top level field name.
func (p *Path) Root() string { return p.parts[0].name }

// Depth returns the number of access steps.
func (p *Path) Depth() int { return len(p.parts) }

// Nested reports whether the path has more than one step.
func (p *Path) Nested() bool { return len(p.parts) > 1 }

// Lookup walks the path through nested maps and slices. It reports false
// when a step is missing, out of range or applied to a value of the wrong
// shape.
func (p *Path) Lookup(v any) (any, bool) {
	for _, pt := range p.parts {
		var ok bool
		if v, ok = step(v, pt); !ok {
			return nil, false
		}
	}
	return v, true
}

func step(v any, pt part) (any, bool) {
	switch x := v.(type) {
	case map[string]any:
		if pt.kind == partIndex {
			r, ok := x[strconv.Itoa(pt.index)]
			return r, ok
		}
		r, ok := x[pt.name]
		return r, ok
	case []any:
		if pt.kind != partIndex {
			return nil, false
		}
		i := pt.index
		if i < 0 {
			i += len(x)
		}
		if i < 0 || i >= len(x) {
			return nil, false
		}
		return x[i], true
	case nil:
		return nil, false
	}
	return reflectStep(reflect.ValueOf(v), pt)
}

func reflectStep(rv reflect.Value, pt part) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		key := pt.name
		if pt.kind == partIndex {
			key = strconv.Itoa(pt.index)
		}
		r := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !r.IsValid() {
			return nil, false
		}
		return r.Interface(), true
	case reflect.Slice, reflect.Array:
		if pt.kind != partIndex {
			return nil, false
		}
		i := pt.index
		if i < 0 {
			i += rv.Len()
		}
		if i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		if pt.kind != partField {
			return nil, false
		}
		f := rv.FieldByName(pt.name)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}
