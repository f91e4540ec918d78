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

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/google/tessella/core/logging"
	"github.com/google/tessella/core/query"
	"github.com/google/tessella/core/server"
	"github.com/google/tessella/core/theme"
	"github.com/google/tessella/demo"
)

var (
	addr      string
	themePath string
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "tessella",
		Short: "Serve the demo editable grids",
		Long: `tessella serves a set of demo grid widgets: styled rows and columns
with optional header emphasis, alternating row colors, and per-row Edit
actions backed by caller-supplied callbacks.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.SetLevel(logLevel)
		},
		RunE: runServe,
	}

	previewCmd = &cobra.Command{
		Use:   "preview",
		Short: "Print terminal previews of the demo grids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			th, err := loadTheme()
			if err != nil {
				return err
			}
			return demo.WritePreviews(cmd.OutOrStdout(), th)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "",
		"path to a YAML theme file (defaults to the stock light theme)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8090", "listen address")
	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadTheme() (theme.Theme, error) {
	if themePath == "" {
		return theme.Default(), nil
	}
	return theme.Load(themePath)
}

func runServe(_ *cobra.Command, _ []string) error {
	th, err := loadTheme()
	if err != nil {
		return err
	}

	srv, err := demo.SetupDemoServer(th)
	if err != nil {
		return err
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeResult(w, srv.HandleLandingRequest(w, r.URL, w.Header().Set))
	})

	http.HandleFunc(query.GridPath, func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, srv.HandleGridRequest(w, r.URL, w.Header().Set))
	})

	http.HandleFunc(query.EditPath, func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, srv.HandleEditRequest(w, r.URL, w.Header().Set))
	})

	logging.Log.Infof("server starting on http://%s", addr)
	return http.ListenAndServe(addr, nil)
}

func writeResult(w http.ResponseWriter, result *server.HandlerResult) {
	if result == nil {
		return
	}
	if result.StatusCode != 0 {
		http.Error(w, result.Message, result.StatusCode)
		return
	}
	http.Error(w, result.Error.Error(), http.StatusInternalServerError)
}
