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

// Package table renders rows as a bordered text table:
//
//	+------+-------+
//	| left | int8  |
//	+------+-------+
//	| int8 | int16 |
//	+------+-------+
//	(1 rows)
package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// minWidth is the narrowest column.
const minWidth = 4

// Table accumulates rows for rendering.
type Table struct {
	header []string
	rows   [][]string
}

// New returns a table with the given column names.
func New(header ...string) *Table {
	return &Table{header: header}
}

// Append adds a row. Missing cells render empty; extra cells are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// WriteTo renders the table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = max(minWidth, utf8.RuneCountInString(h))
		for _, row := range t.rows {
			widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
		}
	}

	var b strings.Builder
	border(&b, widths)
	line(&b, widths, t.header)
	border(&b, widths)
	for _, row := range t.rows {
		line(&b, widths, row)
	}
	border(&b, widths)
	fmt.Fprintf(&b, "(%d rows)\n", len(t.rows))

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func border(b *strings.Builder, widths []int) {
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
}

func line(b *strings.Builder, widths []int, cells []string) {
	b.WriteByte('|')
	for i, w := range widths {
		fmt.Fprintf(b, " %s%s |", cells[i], strings.Repeat(" ", w-utf8.RuneCountInString(cells[i])))
	}
	b.WriteByte('\n')
}
