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

import "fmt"

// Func is a handle on a function from A to B. Go function values are not
// comparable, so nodes holding a function compare the handles instead:
// two handles are equal only if they are the same pointer. Create a
// handle once and reuse it wherever the same function is meant.
type Func[A, B any] struct {
	name string
	fn   func(A) B
}

// NewFunc returns a new handle on fn. The name is used for rendering and
// by translators; it does not take part in equality.
func NewFunc[A, B any](name string, fn func(A) B) *Func[A, B] {
	if fn == nil {
		panic(fmt.Errorf("%w: func %s", ErrNilOperand, name))
	}
	return &Func[A, B]{name: name, fn: fn}
}

// Apply calls the function.
func (f *Func[A, B]) Apply(a A) B {
	return f.fn(a)
}

// Name returns the name given to NewFunc.
func (f *Func[A, B]) Name() string {
	return f.name
}

func (f *Func[A, B]) String() string {
	if f.name == "" {
		return "func"
	}
	return f.name
}
