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

package server

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/tessella/core/grid"
	"github.com/google/tessella/core/theme"
)

type testGrid struct {
	name    string
	title   string
	data    grid.TableData
	options grid.Options
}

func (g *testGrid) GetName() string { return g.name }

func (g *testGrid) GetTitle() string { return g.title }

func (g *testGrid) GetData() grid.TableData { return g.data }

func (g *testGrid) GetOptions() grid.Options { return g.options }

func newTestServer(t *testing.T, grids ...GridSource) *Server {
	t.Helper()
	srv, err := NewServer(theme.Default())
	require.NoError(t, err)
	srv.SetLanding("Tessella", "test")
	for _, g := range grids {
		srv.Register(g)
	}
	return srv
}

func peopleGrid(onEdit grid.EditFunc) *testGrid {
	opts := grid.NewOptions()
	opts.OnEdit = onEdit
	return &testGrid{
		name:  "people",
		title: "People",
		data: grid.TableData{
			{"ID", "Name", "Age"},
			{"1", "Alice", "30"},
			{"2", "Bob", "25"},
		},
		options: opts,
	}
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func noHeader(string, string) {}

func TestHandleGridRequestMissingParameter(t *testing.T) {
	srv := newTestServer(t)
	var sb strings.Builder

	result := srv.HandleGridRequest(&sb, mustParse(t, "/table"), noHeader)
	require.NotNil(t, result)
	assert.Equal(t, 400, result.StatusCode)
}

func TestHandleGridRequestUnknownGrid(t *testing.T) {
	srv := newTestServer(t)
	var sb strings.Builder

	result := srv.HandleGridRequest(&sb, mustParse(t, "/table?grid=nope"), noHeader)
	require.NotNil(t, result)
	assert.Equal(t, 404, result.StatusCode)
	assert.Contains(t, result.Message, "nope")
}

func TestHandleGridRequestRendersPage(t *testing.T) {
	srv := newTestServer(t, peopleGrid(func(string) error { return nil }))

	headers := map[string]string{}
	var sb strings.Builder
	result := srv.HandleGridRequest(&sb, mustParse(t, "/table?grid=people"), func(k, v string) { headers[k] = v })

	require.Nil(t, result)
	assert.Equal(t, "text/html; charset=utf-8", headers["Content-Type"])
	html := sb.String()
	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, "<strong><em>Name</em></strong>")
	assert.Contains(t, html, "id=1")
}

func TestHandleGridRequestLayoutMisconfigured(t *testing.T) {
	g := peopleGrid(func(string) error { return nil })
	g.options.Layout = grid.Columns(2)
	srv := newTestServer(t, g)

	var sb strings.Builder
	result := srv.HandleGridRequest(&sb, mustParse(t, "/table?grid=people"), noHeader)

	require.NotNil(t, result)
	assert.Equal(t, 422, result.StatusCode)
	assert.Contains(t, result.Message, "row 1")
	assert.Empty(t, sb.String(), "no partial render on configuration errors")
}

func TestHandleEditRequestInvokesCallbackOnce(t *testing.T) {
	var calls []string
	srv := newTestServer(t, peopleGrid(func(id string) error {
		calls = append(calls, id)
		return nil
	}))

	var sb strings.Builder
	result := srv.HandleEditRequest(&sb, mustParse(t, "/edit?grid=people&id=2"), noHeader)

	require.Nil(t, result)
	require.Equal(t, []string{"2"}, calls)

	html := sb.String()
	assert.Contains(t, html, "<code>2</code>")
	assert.Contains(t, html, "<li>Bob</li>")
	assert.Contains(t, html, `href="/table?grid=people"`)
}

func TestHandleEditRequestCallbackErrorPropagates(t *testing.T) {
	sentinel := errors.New("record locked")
	srv := newTestServer(t, peopleGrid(func(string) error { return sentinel }))

	var sb strings.Builder
	result := srv.HandleEditRequest(&sb, mustParse(t, "/edit?grid=people&id=1"), noHeader)

	require.NotNil(t, result)
	assert.True(t, errors.Is(result.Error, sentinel), "callback error must propagate unwrapped")
	assert.Empty(t, sb.String(), "no dialog after a callback fault")
}

func TestHandleEditRequestMissingParameters(t *testing.T) {
	srv := newTestServer(t, peopleGrid(func(string) error { return nil }))

	var sb strings.Builder
	result := srv.HandleEditRequest(&sb, mustParse(t, "/edit?grid=people"), noHeader)
	require.NotNil(t, result)
	assert.Equal(t, 400, result.StatusCode)

	result = srv.HandleEditRequest(&sb, mustParse(t, "/edit?id=1"), noHeader)
	require.NotNil(t, result)
	assert.Equal(t, 400, result.StatusCode)
}

func TestHandleEditRequestWithoutHandler(t *testing.T) {
	g := &testGrid{name: "orders", title: "Orders", data: grid.TableData{{"a"}}, options: grid.NewOptions()}
	srv := newTestServer(t, g)

	var sb strings.Builder
	result := srv.HandleEditRequest(&sb, mustParse(t, "/edit?grid=orders&id=1"), noHeader)
	require.NotNil(t, result)
	assert.Equal(t, 404, result.StatusCode)
}

func TestHandleEditRequestUnknownIdentifierStillDispatches(t *testing.T) {
	// The identifier is caller data; the server passes it through
	// verbatim and the dialog simply shows no record cells.
	var got string
	srv := newTestServer(t, peopleGrid(func(id string) error {
		got = id
		return nil
	}))

	var sb strings.Builder
	result := srv.HandleEditRequest(&sb, mustParse(t, "/edit?grid=people&id=999"), noHeader)

	require.Nil(t, result)
	assert.Equal(t, "999", got)
	assert.NotContains(t, sb.String(), "<li>")
}

func TestHandleLandingRequestListsGrids(t *testing.T) {
	srv := newTestServer(t,
		peopleGrid(func(string) error { return nil }),
		&testGrid{name: "orders", title: "Orders", data: grid.TableData{{"a"}}, options: grid.NewOptions()},
	)

	var sb strings.Builder
	result := srv.HandleLandingRequest(&sb, mustParse(t, "/"), noHeader)

	require.Nil(t, result)
	html := sb.String()
	assert.Contains(t, html, `href="/table?grid=people"`)
	assert.Contains(t, html, `href="/table?grid=orders"`)
	// people registered first
	assert.Less(t, strings.Index(html, "People"), strings.Index(html, "Orders"))
}

func TestRegisterReplacesGrid(t *testing.T) {
	srv := newTestServer(t, peopleGrid(func(string) error { return nil }))
	srv.Register(&testGrid{name: "people", title: "New People", data: grid.TableData{{"x"}}, options: grid.NewOptions()})

	var sb strings.Builder
	result := srv.HandleLandingRequest(&sb, mustParse(t, "/"), noHeader)
	require.Nil(t, result)
	assert.Contains(t, sb.String(), "New People")
	assert.Equal(t, 1, strings.Count(sb.String(), "/table?grid=people"))
}
