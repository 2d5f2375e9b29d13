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

// Children returns the operands of n in evaluation order. Leaves have none.
func Children(n Node) []Node {
	switch x := n.(type) {
	case BinaryNode:
		return []Node{x.Left(), x.Right()}
	case OrElseNode:
		if d := x.Default(); d != nil {
			return []Node{x.Operand(), d}
		}
		return []Node{x.Operand()}
	case NullableNode:
		return []Node{x.Predicate(), x.Operand()}
	case interface{ Operand() Node }:
		return []Node{x.Operand()}
	}
	return nil
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from visit skips the children of that node.
// Trees are acyclic by construction so Walk always terminates.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}

// Fields returns the distinct field names read by the leaves of n, in
// first-visit order.
func Fields(n Node) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(n, func(c Node) bool {
		if f, ok := c.(FieldNode); ok && !seen[f.Field()] {
			seen[f.Field()] = true
			names = append(names, f.Field())
		}
		return true
	})
	return names
}
