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

// Package demo wires sample grids into a runnable server.
package demo

import "github.com/google/tessella/core/grid"

// StaticGrid is a GridSource over fixed in-memory data.
type StaticGrid struct {
	Name    string
	Title   string
	Data    grid.TableData
	Options grid.Options
}

func (g *StaticGrid) GetName() string { return g.Name }

func (g *StaticGrid) GetTitle() string { return g.Title }

func (g *StaticGrid) GetData() grid.TableData { return g.Data }

func (g *StaticGrid) GetOptions() grid.Options { return g.Options }
