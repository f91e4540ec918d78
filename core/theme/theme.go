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

// Package theme holds the color values the grid widget styles rows
// with. The theme is an explicit parameter of view-model building;
// nothing in this module reads ambient application state.
package theme

import (
	"fmt"
	"os"

	"github.com/google/safehtml"
	"gopkg.in/yaml.v3"
)

// Theme is the set of host colors the widget draws from. Values are
// CSS-compatible color strings (hex or named colors). Unsafe values are
// neutralized by safehtml at style-construction time, not here.
type Theme struct {
	PrimaryColor             string `yaml:"primaryColor,omitempty"`
	BackgroundColor          string `yaml:"backgroundColor,omitempty"`
	SecondaryBackgroundColor string `yaml:"secondaryBackgroundColor,omitempty"`
	TextColor                string `yaml:"textColor,omitempty"`
}

// Default returns the stock light theme.
func Default() Theme {
	return Theme{
		PrimaryColor:             "#ff4b4b",
		BackgroundColor:          "#ffffff",
		SecondaryBackgroundColor: "#f0f2f6",
		TextColor:                "#31333f",
	}
}

// Load reads a theme from a YAML file. Fields absent from the file keep
// their Default values, so a theme file only needs to list overrides.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	th := Default()
	if err := yaml.Unmarshal(data, &th); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return th, nil
}

// SecondaryBackground returns the secondary background color as a row
// background style.
func (t Theme) SecondaryBackground() safehtml.Style {
	return BackgroundStyle(t.SecondaryBackgroundColor)
}

// BackgroundStyle converts a CSS color string into a background style.
// safehtml replaces values it cannot prove safe with an innocuous
// placeholder rather than returning an error.
func BackgroundStyle(color string) safehtml.Style {
	return safehtml.StyleFromProperties(safehtml.StyleProperties{BackgroundColor: color})
}

// TransparentBackground is the background of rows that are neither the
// colored header row nor an alternating-color row.
func TransparentBackground() safehtml.Style {
	return BackgroundStyle("transparent")
}
