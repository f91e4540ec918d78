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
	"strings"
	"testing"

	"github.com/google/tessella/core/grid"
)

func TestGridToASCII(t *testing.T) {
	opts := grid.NewOptions()
	opts.OnEdit = func(string) error { return nil }

	vm := buildViewModel(t, grid.TableData{
		{"ID", "Name", "Age"},
		{"1", "Alice", "30"},
		{"2", "Bob", "25"},
	}, opts)

	out := GridToASCII(vm)

	if !strings.Contains(out, "Name") {
		t.Error("Expected header text in preview")
	}
	if !strings.Contains(out, "Alice") {
		t.Error("Expected Alice in preview")
	}
	if !strings.Contains(out, "[Edit]") {
		t.Error("Expected edit marker in preview")
	}
	if strings.Contains(out, "ID") {
		t.Error("Identifier column must not appear in preview")
	}
}

func TestGridToASCIIEmpty(t *testing.T) {
	vm := buildViewModel(t, grid.TableData{}, grid.NewOptions())
	out := GridToASCII(vm)
	if strings.Contains(out, "Edit") {
		t.Error("Expected no content for empty data")
	}
}
