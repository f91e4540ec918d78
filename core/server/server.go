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

// Package server owns grid registration and request handling: it
// resolves grid page requests into rendered HTML and dispatches edit
// actions to the registered callbacks.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/google/tessella/core/grid"
	"github.com/google/tessella/core/logging"
	"github.com/google/tessella/core/query"
	"github.com/google/tessella/core/rendering"
	"github.com/google/tessella/core/theme"
	"github.com/google/tessella/core/views"
)

// GridSource supplies one registered grid. Data and options are read
// once per render; the server holds no state across renders beyond the
// registration itself.
type GridSource interface {
	GetName() string
	GetTitle() string
	GetData() grid.TableData
	GetOptions() grid.Options
}

// Server represents the grid surface with all its dependencies
type Server struct {
	renderer *rendering.Renderer
	theme    theme.Theme
	grids    map[string]GridSource
	order    []string

	title    string
	subtitle string
}

// NewServer creates a new server rendering with the given theme
func NewServer(th theme.Theme) (*Server, error) {
	renderer, err := rendering.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Server{
		renderer: renderer,
		theme:    th,
		grids:    make(map[string]GridSource),
	}, nil
}

// SetLanding sets the landing page title and subtitle.
func (s *Server) SetLanding(title, subtitle string) {
	s.title = title
	s.subtitle = subtitle
}

// Register adds a grid under its source name. Registering the same
// name again replaces the previous source; independent grids never
// interact.
func (s *Server) Register(src GridSource) {
	name := src.GetName()
	if _, exists := s.grids[name]; !exists {
		s.order = append(s.order, name)
	}
	s.grids[name] = src
}

// HandlerResult represents the outcome of handling a request. A nil
// result means success. Error carries faults from rendering or from a
// caller-supplied edit callback, unwrapped.
type HandlerResult struct {
	Error      error
	StatusCode int
	Message    string
}

// HandleGridRequest processes a grid page request and writes the page.
// Returns an error result if the request is invalid, nil on success.
func (s *Server) HandleGridRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *HandlerResult {
	q := query.NewQuery(requestURL)

	if q.Grid == "" {
		return &HandlerResult{StatusCode: 400, Message: "grid parameter is required"}
	}

	src, ok := s.grids[q.Grid]
	if !ok {
		return &HandlerResult{StatusCode: 404, Message: fmt.Sprintf("grid '%s' not found", q.Grid)}
	}

	vm, err := views.BuildGridViewModel(src.GetName(), src.GetTitle(), src.GetData(), src.GetOptions(), s.theme, q)
	if err != nil {
		var confErr *grid.ConfigurationError
		if errors.As(err, &confErr) {
			return &HandlerResult{StatusCode: 422, Message: confErr.Error()}
		}
		return &HandlerResult{Error: err}
	}

	page := views.PageViewModel{
		Title:   src.GetTitle(),
		Grid:    vm,
		HomeURL: (&query.Query{Path: "/"}).ToSafeURL(),
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, page); err != nil {
		logging.Log.Errorf("grid page rendering failed: %v", err)
		return &HandlerResult{Error: err}
	}
	return nil
}

// HandleEditRequest dispatches an edit action: it resolves the grid,
// invokes its edit callback with the identifier exactly once, then
// renders the edit dialog. A callback error is returned unwrapped; the
// server neither suppresses nor retries it.
func (s *Server) HandleEditRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *HandlerResult {
	q := query.NewQuery(requestURL)

	if q.Grid == "" {
		return &HandlerResult{StatusCode: 400, Message: "grid parameter is required"}
	}
	if q.EditID == "" {
		return &HandlerResult{StatusCode: 400, Message: "id parameter is required"}
	}

	src, ok := s.grids[q.Grid]
	if !ok {
		return &HandlerResult{StatusCode: 404, Message: fmt.Sprintf("grid '%s' not found", q.Grid)}
	}

	opts := src.GetOptions()
	if opts.OnEdit == nil {
		return &HandlerResult{StatusCode: 404, Message: fmt.Sprintf("grid '%s' has no edit handler", q.Grid)}
	}

	if err := opts.OnEdit(q.EditID); err != nil {
		logging.Log.Errorf("edit callback for grid %s id %s failed: %v", q.Grid, q.EditID, err)
		return &HandlerResult{Error: err}
	}

	dialog := views.DialogViewModel{
		Title:      views.EditLabel,
		GridTitle:  src.GetTitle(),
		Identifier: q.EditID,
		Cells:      findRecord(src.GetData(), q.EditID),
		BackURL:    q.WithoutEditTarget(),
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderDialog(w, dialog); err != nil {
		logging.Log.Errorf("edit dialog rendering failed: %v", err)
		return &HandlerResult{Error: err}
	}
	return nil
}

// HandleLandingRequest renders the landing page listing all registered
// grids in registration order.
func (s *Server) HandleLandingRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *HandlerResult {
	vm := views.LandingViewModel{
		Title:    s.title,
		Subtitle: s.subtitle,
	}

	for _, name := range s.order {
		src := s.grids[name]
		vm.Grids = append(vm.Grids, views.GridInfo{
			Name:     name,
			Title:    src.GetTitle(),
			URL:      query.ForGrid(name).ToSafeURL(),
			Rows:     len(src.GetData()),
			Editable: src.GetOptions().OnEdit != nil,
		})
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderLanding(w, vm); err != nil {
		logging.Log.Errorf("landing page rendering failed: %v", err)
		return &HandlerResult{Error: err}
	}
	return nil
}

// findRecord returns the visible cells of the row whose identifier
// matches id, for display in the edit dialog. Nil when no row matches;
// the dialog then shows the identifier alone.
func findRecord(data grid.TableData, id string) []string {
	for _, row := range data {
		if len(row) > 0 && row[0] == id {
			return append([]string(nil), row[1:]...)
		}
	}
	return nil
}
