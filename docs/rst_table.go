/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"io"
	"strings"
)

type rstValue struct {
	value string
	bold  bool
}

func (v rstValue) render() string {
	rendered := v.value
	// A leading colon would be parsed as a field list
	if strings.HasPrefix(rendered, ":") {
		rendered = "\\" + rendered
	}
	if v.bold {
		rendered = fmt.Sprintf("**%s**", rendered)
	}
	return rendered
}

// width is the number of characters the rendered value occupies.
func (v rstValue) width() int {
	return len(v.render())
}

func vals(values ...string) []rstValue {
	result := make([]rstValue, len(values))
	for i, v := range values {
		result[i] = rstValue{value: v}
	}
	return result
}

// printRstTable writes a simple reStructuredText table. Rows may contain less values than the header,
// missing cells are left empty.
func printRstTable(header []rstValue, values [][]rstValue, writer io.StringWriter) {
	columnLengths := make([]int, len(header))
	rows := append([][]rstValue{header}, values...)
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(columnLengths); i++ {
			columnLengths[i] = max(columnLengths[i], row[i].width())
		}
	}
	dividers := make([]rstValue, len(columnLengths))
	for i, length := range columnLengths {
		dividers[i] = rstValue{value: strings.Repeat("=", length)}
	}
	printRow(dividers, columnLengths, writer)
	printRow(header, columnLengths, writer)
	printRow(dividers, columnLengths, writer)
	for _, row := range values {
		printRow(row, columnLengths, writer)
	}
	printRow(dividers, columnLengths, writer)
}

func printRow(values []rstValue, columnLengths []int, writer io.StringWriter) {
	cells := make([]string, len(columnLengths))
	for i := range columnLengths {
		cell := rstValue{}
		if i < len(values) {
			cell = values[i]
		}
		cells[i] = cell.render() + strings.Repeat(" ", columnLengths[i]-cell.width())
	}
	_, _ = writer.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
}
