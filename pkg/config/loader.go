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

package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/tikaimport/pkg/assets"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for manifest parsers
type Parser interface {
	// 📝 Parse decodes a manifest; filename is only used for diagnostics
	Parse(ctx context.Context, filename string, data []byte) (*Manifest, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Load reads, parses and validates the manifest at path.
// The format is picked from the file extension (.hcl, .yaml/.yml, .json, .toml).
func Load(ctx context.Context, path string) (*Manifest, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest file: %w", err)
	}

	m, err := Parse(ctx, path, data)
	if err != nil {
		return nil, err
	}
	m.location = path
	return m, nil
}

// Parse decodes data with the parser registered for filename and validates it.
func Parse(ctx context.Context, filename string, data []byte) (*Manifest, error) {
	p := GetParser(filename)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", filename)
	}

	m, err := p.Parse(ctx, filename, data)
	if err != nil {
		return nil, errors.Errorf("parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating manifest: %w", err)
	}

	return m, nil
}

// 🏠 Default returns the built-in manifest for vendoring Tika.
func Default(ctx context.Context) (*Manifest, error) {
	m, err := Parse(ctx, assets.DefaultManifestName, assets.DefaultManifest())
	if err != nil {
		return nil, errors.Errorf("loading built-in manifest: %w", err)
	}
	return m, nil
}
