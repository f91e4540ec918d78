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
	"fmt"
	"io"

	"github.com/google/tessella/core/rendering"
	"github.com/google/tessella/core/server"
	"github.com/google/tessella/core/theme"
	"github.com/google/tessella/core/views"
)

// SetupDemoServer creates and configures a server with the sample
// grids.
func SetupDemoServer(th theme.Theme) (*server.Server, error) {
	srv, err := server.NewServer(th)
	if err != nil {
		return nil, err
	}

	srv.SetLanding("Tessella", "Editable grid widgets over safe HTML")
	srv.Register(CreatePeopleGrid())
	srv.Register(CreateLettersGrid())
	srv.Register(CreateOrdersGrid())

	return srv, nil
}

// WritePreviews renders a terminal preview of every sample grid.
func WritePreviews(w io.Writer, th theme.Theme) error {
	for _, src := range []*StaticGrid{CreatePeopleGrid(), CreateLettersGrid(), CreateOrdersGrid()} {
		vm, err := views.BuildGridViewModel(src.Name, src.Title, src.Data, src.Options, th, nil)
		if err != nil {
			return fmt.Errorf("failed to build preview for grid %s: %w", src.Name, err)
		}
		fmt.Fprintf(w, "%s\n%s\n\n", src.Title, rendering.GridToASCII(vm))
	}
	return nil
}
