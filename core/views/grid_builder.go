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

package views

import (
	"fmt"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/tessella/core/grid"
	"github.com/google/tessella/core/query"
	"github.com/google/tessella/core/theme"
)

// EditLabel is the text of the per-row edit action.
const EditLabel = "Edit"

// BuildGridViewModel resolves grid data and options into a view model.
// The theme is an explicit input; nothing ambient is consulted. A nil
// Query builds action URLs for the grid's own page.
//
// Each row resolves independently, in input order:
//  1. Background: HeaderColor on row 0, else the theme's secondary
//     background on alternating rows (odd 1-based position), else
//     transparent.
//  2. With OnEdit set, cell 0 is the hidden identifier and is dropped
//     from the visible cells.
//  3. Slots come from the layout, defaulting to the row's visible cell
//     count. A layout with too few slots for any row fails the whole
//     build with a ConfigurationError.
//  4. Row 0 with HasHeader renders its cells emphasized.
//  5. Rows taking an edit action get it in the slot after their last
//     visible cell.
func BuildGridViewModel(name, title string, data grid.TableData, opts grid.Options, th theme.Theme, q *query.Query) (GridViewModel, error) {
	if q == nil {
		q = query.ForGrid(name)
	}

	vm := GridViewModel{
		Name:  name,
		Title: title,
		Rows:  make([]RowViewModel, 0, len(data)),
	}

	for j, row := range data {
		visible := row
		if opts.OnEdit != nil && len(row) > 0 {
			visible = row[1:]
		}

		hasEdit := opts.OnEdit != nil && len(row) > 0 && (j != 0 || !opts.HasHeader)

		required := len(visible)
		if hasEdit {
			required++
		}

		slots := required
		if opts.Layout != nil {
			slots = opts.Layout.Slots()
			if slots < required {
				return GridViewModel{}, &grid.ConfigurationError{Row: j, Required: required, Available: slots}
			}
		}

		widths := slotWidths(opts.Layout, slots)
		emphasized := j == 0 && opts.HasHeader

		cells := make([]CellViewModel, slots)
		for i := range cells {
			cells[i] = CellViewModel{Width: widths[i]}
		}
		for i, text := range visible {
			cells[i].Text = text
			cells[i].Emphasized = emphasized
		}
		if hasEdit {
			cells[len(visible)].Edit = &EditAction{
				Label:      EditLabel,
				Identifier: row[0],
				URL:        q.WithEditTarget(row[0]),
			}
		}

		vm.Rows = append(vm.Rows, RowViewModel{
			Index:      j,
			Key:        rowKey(name, j),
			Background: rowBackground(j, opts, th),
			Cells:      cells,
		})
	}

	return vm, nil
}

// rowBackground resolves the background of row j. HeaderColor wins on
// row 0; rows at an odd 1-based position take the secondary background
// when alternating colors are on; everything else is transparent.
func rowBackground(j int, opts grid.Options, th theme.Theme) safehtml.Style {
	if j == 0 && opts.HeaderColor != "" {
		return theme.BackgroundStyle(opts.HeaderColor)
	}
	if opts.AlternatingRowColors && (j+1)%2 != 0 {
		return th.SecondaryBackground()
	}
	return theme.TransparentBackground()
}

// slotWidths converts layout weights into percentage width styles, one
// per slot. Without a layout every slot splits the row equally.
func slotWidths(layout *grid.ColumnLayout, slots int) []safehtml.Style {
	weights := make([]int, slots)
	for i := range weights {
		weights[i] = 1
	}
	if layout != nil {
		weights = layout.Weights()
	}

	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		total = 1
	}

	styles := make([]safehtml.Style, len(weights))
	for i, w := range weights {
		pct := 100 * float64(w) / float64(total)
		styles[i] = safehtml.StyleFromProperties(safehtml.StyleProperties{
			Width: fmt.Sprintf("%.4f%%", pct),
		})
	}
	return styles
}

// rowKey derives the stable identity key for a row. Keys are unique per
// grid name and row index, so concurrently displayed grids never share
// row identity.
func rowKey(name string, j int) safehtml.Identifier {
	return safehtml.IdentifierFromConstantPrefix("tessella", fmt.Sprintf("%s-row-%d", sanitizeKeyPart(name), j))
}

// sanitizeKeyPart maps a grid name onto the identifier charset.
func sanitizeKeyPart(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	if sb.Len() == 0 {
		return "grid"
	}
	return sb.String()
}
