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

// Command buildergen writes the per-operand-pair arithmetic builders of
// package expr. Each builder fixes the result type that types.Promote
// assigns to its operand pair, so the promotion table is enforced by the
// compiler at every call site.
//
//	go run ./internal/buildergen -o expr/builders_gen.go -test expr/builders_gen_test.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"

	"github.com/rulego/typedexpr/types"
)

var ops = []struct {
	Op     types.BinaryOp
	Name   string
	Symbol string
}{
	{types.Plus, "Plus", "a + b"},
	{types.Minus, "Minus", "a - b"},
	{types.Multiply, "Multiply", "a * b"},
	{types.DivideFloor, "DivideFloor", "floor(a / b)"},
}

// goTypes maps numeric kinds to the native Go representation and the
// identifier fragment used in builder names.
var goTypes = map[types.Kind][2]string{
	types.Int8:    {"int8", "Int8"},
	types.Int16:   {"int16", "Int16"},
	types.Int32:   {"int32", "Int32"},
	types.Int64:   {"int64", "Int64"},
	types.Float32: {"float32", "Float32"},
	types.Float64: {"float64", "Float64"},
}

type builder struct {
	Name, OpConst, Doc  string
	Left, Right, Result string
	LeftKind, RightKind string
}

var tmpl = template.Must(template.New("builders").Parse(`// Code generated by buildergen. DO NOT EDIT.

package expr

import "github.com/rulego/typedexpr/types"
{{range .}}
// {{.Name}} returns {{.Doc}} as {{.Result}}.
func {{.Name}}[R any](a Expr[R, {{.Left}}], b Expr[R, {{.Right}}]) Expr[R, {{.Result}}] {
	return arith[{{.Result}}](types.{{.OpConst}}, a, b)
}

// {{.Name}}Value is {{.Name}} with a constant right operand.
func {{.Name}}Value[R any](a Expr[R, {{.Left}}], b {{.Right}}) Expr[R, {{.Result}}] {
	return arithValue[{{.Result}}](types.{{.OpConst}}, a, b)
}
{{end}}`))

var testTmpl = template.Must(template.New("builders_test").Parse(`// Code generated by buildergen. DO NOT EDIT.

package expr

import "github.com/rulego/typedexpr/types"

type generatedBuilder struct {
	op          types.BinaryOp
	left, right types.Kind
	build       func() Node
	buildValue  func() Node
	eval        func() float64
}

// generatedBuilders builds every generated builder with left operand 7
// and right operand 2.
var generatedBuilders = []generatedBuilder{
{{- range .}}
	{
		op: types.{{.OpConst}}, left: types.{{.LeftKind}}, right: types.{{.RightKind}},
		build: func() Node { return {{.Name}}(Const[struct{}]({{.Left}}(7)), Const[struct{}]({{.Right}}(2))) },
		buildValue: func() Node { return {{.Name}}Value(Const[struct{}]({{.Left}}(7)), {{.Right}}(2)) },
		eval: func() float64 {
			return float64({{.Name}}(Const[struct{}]({{.Left}}(7)), Const[struct{}]({{.Right}}(2))).Eval(struct{}{}))
		},
	},
{{- end}}
}
`))

func main() {
	out := flag.String("o", "builders_gen.go", "output file")
	testOut := flag.String("test", "builders_gen_test.go", "output file of the builder table test")
	flag.Parse()

	var builders []builder
	for _, op := range ops {
		for _, l := range types.NumericKinds {
			for _, r := range types.NumericKinds {
				res := types.MustPromote(op.Op, l, r)
				builders = append(builders, builder{
					Name:    op.Name + goTypes[l][1] + goTypes[r][1],
					OpConst: op.Name,
					Doc:     op.Symbol,
					Left:    goTypes[l][0],
					Right:   goTypes[r][0],
					Result:  goTypes[res][0],

					LeftKind:  goTypes[l][1],
					RightKind: goTypes[r][1],
				})
			}
		}
	}

	if err := render(tmpl, builders, *out); err != nil {
		log.Fatal(err)
	}
	if err := render(testTmpl, builders, *testOut); err != nil {
		log.Fatal(err)
	}
}

func render(t *template.Template, builders []builder, path string) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, builders); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	return os.WriteFile(path, src, 0o644)
}
