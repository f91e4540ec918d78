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

// Package rendering turns view models into HTML through safehtml
// templates, plus a terminal preview for quick inspection.
package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
	"github.com/google/tessella/core/grid"
	"github.com/google/tessella/core/theme"
	"github.com/google/tessella/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer handles rendering of grid view models to HTML
type Renderer struct {
	pageTemplate    *template.Template
	dialogTemplate  *template.Template
	landingTemplate *template.Template
}

// NewRenderer creates a new grid renderer
func NewRenderer() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	// The page template includes the grid fragment
	pageTemplate, err := template.New("page.html").ParseFS(trustedFS, "templates/page.html", "templates/grid.html")
	if err != nil {
		return nil, err
	}

	dialogTemplate, err := template.New("dialog.html").ParseFS(trustedFS, "templates/dialog.html")
	if err != nil {
		return nil, err
	}

	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/landing.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		pageTemplate:    pageTemplate,
		dialogTemplate:  dialogTemplate,
		landingTemplate: landingTemplate,
	}, nil
}

// RenderGrid renders just the grid fragment to the provided writer.
// Rendering is stateless: the same view model always produces the same
// markup.
func (r *Renderer) RenderGrid(w io.Writer, vm views.GridViewModel) error {
	return r.pageTemplate.ExecuteTemplate(w, "grid", vm)
}

// RenderTable builds a grid's view model and renders the fragment in
// one call. Edit-action URLs point at the grid's own registered name.
func (r *Renderer) RenderTable(w io.Writer, name string, data grid.TableData, opts grid.Options, th theme.Theme) error {
	vm, err := views.BuildGridViewModel(name, name, data, opts, th, nil)
	if err != nil {
		return err
	}
	return r.RenderGrid(w, vm)
}

// RenderPage renders a full grid page to the provided writer
func (r *Renderer) RenderPage(w io.Writer, vm views.PageViewModel) error {
	return r.pageTemplate.Execute(w, vm)
}

// RenderDialog renders the edit dialog to the provided writer
func (r *Renderer) RenderDialog(w io.Writer, vm views.DialogViewModel) error {
	return r.dialogTemplate.Execute(w, vm)
}

// RenderLanding renders the landing page to the provided writer
func (r *Renderer) RenderLanding(w io.Writer, vm views.LandingViewModel) error {
	return r.landingTemplate.Execute(w, vm)
}
