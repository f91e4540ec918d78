/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Tessella Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package grid

import "fmt"

// ColumnLayout fixes the number of column slots per row, either as a
// count of equal-width slots or as an ordered list of relative width
// weights. A nil *ColumnLayout lets each row size itself to its visible
// cells.
type ColumnLayout struct {
	count   int
	weights []int
}

// Columns returns a layout of n equal-width slots.
func Columns(n int) *ColumnLayout {
	return &ColumnLayout{count: n}
}

// WeightedColumns returns a layout with one slot per weight, sized
// proportionally to the weights (e.g. 1, 2, 1).
func WeightedColumns(weights ...int) *ColumnLayout {
	ws := make([]int, len(weights))
	copy(ws, weights)
	return &ColumnLayout{weights: ws}
}

// Slots returns the number of column slots this layout provides.
func (l *ColumnLayout) Slots() int {
	if len(l.weights) > 0 {
		return len(l.weights)
	}
	return l.count
}

// Weights returns one relative weight per slot. Count-based layouts
// weigh every slot equally.
func (l *ColumnLayout) Weights() []int {
	if len(l.weights) > 0 {
		ws := make([]int, len(l.weights))
		copy(ws, l.weights)
		return ws
	}
	ws := make([]int, l.count)
	for i := range ws {
		ws[i] = 1
	}
	return ws
}

// ConfigurationError reports a ColumnLayout that provides fewer slots
// than a row needs for its visible cells plus, when applicable, its
// Edit action. Rendering fails fast on the first offending row instead
// of handing the host layout an out-of-range placement.
type ConfigurationError struct {
	Row       int // 0-based index of the offending row
	Required  int // slots the row needs
	Available int // slots the layout provides
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("column layout provides %d slots but row %d requires %d", e.Available, e.Row, e.Required)
}
