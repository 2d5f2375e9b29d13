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

/*
Package expr provides a typed expression algebra over a generic record type.

Every node is an immutable tree whose result kind is fixed when it is built.
Evaluation returns the native Go value of that kind (int8 ... float64, Char,
bool, string, decimal.Decimal or an enum type) without boxing it into an
interface, and every node compares structurally with Equal and Hash so that
independently built trees describing the same computation collapse to equal
values.

# Core Features

• Leaves - constants (Const) and function-backed leaves (FromFunc, FromNullableFunc);
  the field package adds leaves over map records
• Arithmetic - PlusXY, MinusXY, MultiplyXY and DivideFloorXY for every numeric
  operand pair with the promotion of types.Promote, Divide, Pow and PowExpr
• Unary operators - Abs, Negate, Sign, Sqrt and Cast with checked narrowing
• Null handling - OrElse, OrElseGet, OrThrow, Nullable, IsNull, IsNotNull
• Composition - Compose, ComposeNullable, ComposeOptional, Map and MapNullable
• Introspection - UnaryNode, BinaryNode, OrElseNode ... plus Walk and Children

# Usage Examples

Building and evaluating a tree:

	type Order struct{ Qty int32; Price float64 }

	qty := expr.FromFunc(expr.NewFunc("qty", func(o Order) int32 { return o.Qty }))
	price := expr.FromFunc(expr.NewFunc("price", func(o Order) float64 { return o.Price }))
	total := expr.MultiplyInt32Float64(qty, price) // Expr[Order, float64]
	total.Eval(Order{Qty: 3, Price: 2.5})          // 7.5

Null handling:

	discount := expr.FromNullableFunc(expr.NewFunc("discount", func(o Order) *float64 { return o.Discount }))
	net := expr.MinusFloat64Float64(total, expr.OrElse(discount, 0))

# Errors

Builders panic with ErrNilOperand or ErrInvalidKind when given a nil operand
or a type that is not a kind. Evaluation does not recover anything: integer
division by zero panics with the runtime error, a checked cast that does not
fit panics with *ArithmeticError and OrThrow panics with *NullValueError. The
eval package converts these panics into errors.

# Concurrency

Nodes are never modified after construction, so a tree may be evaluated from
any number of goroutines without synchronization.
*/
package expr
