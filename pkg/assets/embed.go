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

// Package assets bundles the built-in import manifest and the source files
// that are written into the vendored tree verbatim instead of being copied
// from upstream.
package assets

import (
	"embed"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultManifestName is the name the built-in manifest is parsed under.
const DefaultManifestName = "default.hcl"

//go:embed default.hcl
var defaultManifest []byte

//go:embed templates
var templates embed.FS

// DefaultManifest returns a copy of the built-in HCL manifest.
func DefaultManifest() []byte {
	out := make([]byte, len(defaultManifest))
	copy(out, defaultManifest)
	return out
}

// 📦 Templates returns the embedded templates as a read-only filesystem,
// rooted so that names look like "OfficeParser.java".
func Templates() afero.Fs {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// the directory is embedded above, so this cannot happen
		panic(err)
	}
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub})
}

// 🗂️ WithOverlay returns a filesystem that resolves template names in dir
// first and falls back to the embedded templates. Used for manifests loaded
// from disk, whose templates live next to them.
func WithOverlay(dir string) afero.Fs {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	layer := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	return afero.NewCopyOnWriteFs(Templates(), layer)
}
