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

package demo

import (
	"github.com/google/tessella/core/grid"
	"github.com/google/tessella/core/logging"
)

// CreatePeopleGrid builds an editable grid whose first column is a
// hidden record identifier. The header row keeps its styling and takes
// no edit action.
func CreatePeopleGrid() *StaticGrid {
	opts := grid.NewOptions()
	opts.HeaderColor = "#e6ebf5"
	opts.AlternatingRowColors = true
	opts.OnEdit = func(id string) error {
		logging.Log.Infof("editing person with ID %s", id)
		return nil
	}

	return &StaticGrid{
		Name:  "people",
		Title: "People",
		Data: grid.TableData{
			{"ID", "Name", "Age"},
			{"1", "Alice", "30"},
			{"2", "Bob", "25"},
			{"3", "Carol", "41"},
			{"4", "Dave", "37"},
			{"5", "Erin", "29"},
		},
		Options: opts,
	}
}

// CreateLettersGrid builds an editable grid with weighted column
// slots. The layout reserves one extra slot for the edit actions.
func CreateLettersGrid() *StaticGrid {
	opts := grid.NewOptions()
	opts.Layout = grid.WeightedColumns(1, 2, 1, 1)
	opts.HeaderColor = "#e6ebf5"
	opts.AlternatingRowColors = true
	opts.OnEdit = func(id string) error {
		logging.Log.Infof("editing row with ID %s", id)
		return nil
	}

	return &StaticGrid{
		Name:  "letters",
		Title: "Letters",
		Data: grid.TableData{
			{"First", "Second", "Third", "Fourth"},
			{"A", "B", "C", "D"},
			{"E", "F", "G", "H"},
			{"I", "J", "K", "L"},
		},
		Options: opts,
	}
}

// CreateOrdersGrid builds a read-only grid: no identifier column, no
// edit actions, alternating row colors only.
func CreateOrdersGrid() *StaticGrid {
	opts := grid.NewOptions()
	opts.AlternatingRowColors = true

	return &StaticGrid{
		Name:  "orders",
		Title: "Orders",
		Data: grid.TableData{
			{"Order", "Status", "Region", "Amount"},
			{"1001", "shipped", "north", "125.00"},
			{"1002", "pending", "south", "49.50"},
			{"1003", "shipped", "east", "310.25"},
			{"1004", "cancelled", "west", "89.99"},
			{"1005", "pending", "north", "220.10"},
		},
		Options: opts,
	}
}
