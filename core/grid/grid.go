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

// Package grid defines the data model and configuration surface of the
// editable-row grid widget. It is pure data: rendering lives in
// core/views and core/rendering, edit-action dispatch in core/server.
package grid

// TableData is an ordered sequence of rows; each row is an ordered
// sequence of string cells. Row and cell order is significant: row 0 may
// be treated as a header, and column order maps to display order. Rows
// are not required to have equal length; alignment of ragged rows is the
// host layout's concern.
type TableData [][]string

// EditFunc is a caller-owned callback invoked with a row's identifier
// (the row's original first cell) when the user activates that row's
// Edit action. It is called synchronously, exactly once per activation,
// and never during rendering. A returned error is propagated unwrapped
// to the host surface; the widget itself never consumes it.
type EditFunc func(id string) error

// Options configures a single render of a grid.
//
// The zero value renders a headerless, unstyled grid with no edit
// actions. Use NewOptions for the documented defaults (HasHeader on).
type Options struct {
	// Layout allocates column slots per row. Nil means one equal-width
	// slot per visible cell of each row.
	Layout *ColumnLayout

	// OnEdit, when set, reserves cell 0 of every row as a hidden
	// identifier and appends an Edit action to every row that is not
	// the header row.
	OnEdit EditFunc

	// HasHeader renders row 0 with emphasized text and suppresses its
	// Edit action. When false, row 0 is ordinary data: it renders plain
	// and, with OnEdit set, receives an Edit action like any other row.
	HasHeader bool

	// HeaderColor is an optional CSS-compatible background for row 0.
	// It is keyed purely on row index 0 and applies regardless of
	// HasHeader.
	HeaderColor string

	// AlternatingRowColors gives every row at an odd 1-based position
	// (0-based indices 0, 2, 4, ...) the theme's secondary background
	// color, unless HeaderColor overrides it on row 0.
	AlternatingRowColors bool
}

// NewOptions returns Options with the defaults: header row on, no
// layout override, no edit actions, no row coloring.
func NewOptions() Options {
	return Options{HasHeader: true}
}
