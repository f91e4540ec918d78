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

package rendering

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/tessella/core/theme"
	"github.com/google/tessella/core/views"
)

var (
	previewBorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	previewHeaderStyle  = lipgloss.NewStyle().Bold(true).Italic(true).Padding(0, 1)
	previewRowStyle     = lipgloss.NewStyle().Padding(0, 1)
	previewColoredStyle = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("254"))
)

// GridToASCII renders a terminal preview of a grid view model. The same
// view model drives both surfaces, so header emphasis, edit actions and
// alternating backgrounds show up exactly where the HTML rendering puts
// them. Edit slots render as a bracketed label.
func GridToASCII(vm views.GridViewModel) string {
	rows := make([][]string, 0, len(vm.Rows))
	for _, row := range vm.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			if cell.Edit != nil {
				cells = append(cells, "["+cell.Edit.Label+"]")
				continue
			}
			cells = append(cells, cell.Text)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(previewBorderStyle).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row < 0 || row >= len(vm.Rows) {
				return previewRowStyle
			}
			r := vm.Rows[row]
			if len(r.Cells) > 0 && r.Cells[0].Emphasized {
				return previewHeaderStyle
			}
			// Rows resolved transparent carry no color
			if r.Background != theme.TransparentBackground() {
				return previewColoredStyle
			}
			return previewRowStyle
		})

	return t.Render()
}
