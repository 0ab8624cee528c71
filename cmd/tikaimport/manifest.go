// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/walteh/tikaimport/pkg/operation"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📋 newManifestCommand prints the effective manifest without touching the filesystem
func newManifestCommand(opts *rootOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the effective import manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadManifest(cmd.Context(), opts.configFile)
			if err != nil {
				return &operation.UsageError{Err: err}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(m); err != nil {
					return errors.Errorf("encoding manifest: %w", err)
				}
				return enc.Close()
			case "toml":
				enc := toml.NewEncoder(out)
				enc.SetIndentTables(true)
				if err := enc.Encode(m); err != nil {
					return errors.Errorf("encoding manifest: %w", err)
				}
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(m); err != nil {
					return errors.Errorf("encoding manifest: %w", err)
				}
				return nil
			default:
				return &operation.UsageError{Err: errors.Errorf("unknown format %q, expected yaml, json or toml", format)}
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json or toml)")

	return cmd
}
