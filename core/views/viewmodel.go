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

// Package views builds template-ready view models from grid data and
// options. View models are pure data structures with no logic; all
// styling decisions are resolved here, structurally, before templates
// run.
package views

import "github.com/google/safehtml"

// GridViewModel contains everything needed to render one grid.
type GridViewModel struct {
	Name  string // registered grid name, also the identity-key scope
	Title string
	Rows  []RowViewModel
}

// RowViewModel is a single rendered row. The background is attached
// directly to the row container; there is no out-of-band style
// injection keyed on generated strings.
type RowViewModel struct {
	Index      int                 // 0-based position in the original data
	Key        safehtml.Identifier // unique per grid instance and row
	Background safehtml.Style
	Cells      []CellViewModel // one per layout slot, in display order
}

// CellViewModel is a single column slot of a row. Slots past the row's
// visible cells are empty padding; the Edit slot carries an action
// instead of text.
type CellViewModel struct {
	Text       string
	Emphasized bool // header cells render bold+italic
	Width      safehtml.Style
	Edit       *EditAction // set only on the trailing edit-action slot
}

// EditAction is the per-row Edit control. Its URL carries the row's
// hidden identifier back to the surface, which invokes the grid's edit
// callback with it.
type EditAction struct {
	Label      string
	Identifier string // the row's original first cell, verbatim
	URL        safehtml.URL
}

// PageViewModel wraps a grid for the full page shell.
type PageViewModel struct {
	Title   string
	Grid    GridViewModel
	HomeURL safehtml.URL
}

// DialogViewModel is the edit dialog shown after an edit action fires.
type DialogViewModel struct {
	Title      string
	GridTitle  string
	Identifier string
	Cells      []string // the matched row's visible cells, if found
	BackURL    safehtml.URL
}

// LandingViewModel lists the registered grids.
type LandingViewModel struct {
	Title    string
	Subtitle string
	Grids    []GridInfo
}

// GridInfo is one entry on the landing page.
type GridInfo struct {
	Name     string
	Title    string
	URL      safehtml.URL
	Rows     int
	Editable bool
}
