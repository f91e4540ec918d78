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

// Package query parses grid page URLs and builds the safe URLs the
// rendered widget links to (grid pages and per-row edit actions).
package query

import (
	"net/url"

	"github.com/google/safehtml"
)

// Paths served by the grid surface. Relative so they work behind any
// mount point.
const (
	GridPath = "/table"
	EditPath = "/edit"
)

// Query represents the parsed state of a grid surface URL.
type Query struct {
	// Base path (e.g. "/table" or "/edit")
	Path string

	// Grid is the registered name of the grid being viewed.
	Grid string

	// EditID is the hidden row identifier carried by an edit-action
	// URL. Empty on plain grid page URLs.
	EditID string
}

// NewQuery creates a Query from a URL. The URL comes pre-parsed from
// http.Request; only query parameters are extracted here.
func NewQuery(u *url.URL) *Query {
	q := u.Query()
	return &Query{
		Path:   u.Path,
		Grid:   q.Get("grid"),
		EditID: q.Get("id"),
	}
}

// ForGrid creates the Query for a named grid's page.
func ForGrid(name string) *Query {
	return &Query{Path: GridPath, Grid: name}
}

// Clone creates a copy of the Query.
func (q *Query) Clone() *Query {
	c := *q
	return &c
}

// ToURL serializes the Query back into a URL string.
func (q *Query) ToURL() string {
	v := url.Values{}
	if q.Grid != "" {
		v.Set("grid", q.Grid)
	}
	if q.EditID != "" {
		v.Set("id", q.EditID)
	}
	u := url.URL{Path: q.Path, RawQuery: v.Encode()}
	return u.String()
}

// ToSafeURL serializes the Query into a sanitized URL for template use.
func (q *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(q.ToURL())
}

// WithEditTarget returns the edit-action URL for the row whose hidden
// identifier is id. Activating it re-enters the surface at EditPath,
// which dispatches the grid's edit callback with that identifier.
func (q *Query) WithEditTarget(id string) safehtml.URL {
	c := q.Clone()
	c.Path = EditPath
	c.EditID = id
	return c.ToSafeURL()
}

// WithoutEditTarget returns the plain grid page URL, used by the edit
// dialog to link back to the grid.
func (q *Query) WithoutEditTarget() safehtml.URL {
	c := q.Clone()
	c.Path = GridPath
	c.EditID = ""
	return c.ToSafeURL()
}
