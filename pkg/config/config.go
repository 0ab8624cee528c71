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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📦 PackageRoot is a directory fragment under the source root together with
// the packages (subdirectories) to copy from it.
type PackageRoot struct {
	Name string `json:"name" yaml:"name" hcl:"name,label" toml:"name"`
	Path string `json:"path" yaml:"path" hcl:"path" toml:"path"`
	// Packages is a newline-delimited list; lines are trimmed and blank lines skipped.
	Packages string `json:"packages" yaml:"packages" hcl:"packages" toml:"packages"`
}

// PackageNames returns the trimmed, non-empty lines of Packages.
func (r PackageRoot) PackageNames() []string {
	return SplitLines(r.Packages)
}

// 📄 File is a single file placed into the destination subtree. Exactly one of
// Source or Template is set.
type File struct {
	Name        string `json:"name" yaml:"name" hcl:"name,label" toml:"name"`
	Destination string `json:"destination" yaml:"destination" hcl:"destination" toml:"destination"`
	// Source is relative to the source root.
	Source string `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional" toml:"source,omitempty"`
	// Template names an asset; its content is written trimmed of surrounding whitespace.
	Template string `json:"template,omitempty" yaml:"template,omitempty" hcl:"template,optional" toml:"template,omitempty"`
}

// IsTemplate reports whether the file is synthesized from an asset.
func (f File) IsTemplate() bool {
	return f.Template != ""
}

// 🩹 Patch is a literal substring replacement applied to one destination file.
type Patch struct {
	Name string `json:"name" yaml:"name" hcl:"name,label" toml:"name"`
	File string `json:"file" yaml:"file" hcl:"file" toml:"file"`
	Old  string `json:"old" yaml:"old" hcl:"old" toml:"old"`
	New  string `json:"new" yaml:"new" hcl:"new" toml:"new"`
}

// 📚 Manifest describes everything an import run does.
type Manifest struct {
	// Namespace is appended to the destination root to form the subtree that
	// is wiped and repopulated.
	Namespace string        `json:"namespace" yaml:"namespace" hcl:"namespace" toml:"namespace"`
	Roots     []PackageRoot `json:"package_roots" yaml:"package_roots" hcl:"package_root,block" toml:"package_roots"`
	Files     []File        `json:"files,omitempty" yaml:"files,omitempty" hcl:"file,block" toml:"files,omitempty"`
	Patches   []Patch       `json:"patches,omitempty" yaml:"patches,omitempty" hcl:"patch,block" toml:"patches,omitempty"`
	// Delete holds bare filenames removed anywhere under the subtree after copying.
	Delete []string `json:"delete,omitempty" yaml:"delete,omitempty" hcl:"delete,optional" toml:"delete,omitempty"`
	// Ignore holds doublestar globs, relative to the subtree, skipped by the bulk copy.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional" toml:"ignore,omitempty"`

	location string
}

// Location returns the file the manifest was loaded from, or "" for the built-in one.
func (m *Manifest) Location() string {
	return m.location
}

// 🔍 Validate checks that every path stays inside its root and that the
// manifest is internally consistent.
func (m *Manifest) Validate() error {
	if m.Namespace == "" {
		return errors.Errorf("namespace is required")
	}
	m.Namespace = filepath.Clean(m.Namespace)
	if err := checkLocal("namespace", m.Namespace); err != nil {
		return err
	}
	if m.Namespace == "." {
		return errors.Errorf("namespace must name a subdirectory of the destination root")
	}

	if len(m.Roots) == 0 {
		return errors.Errorf("at least one package_root is required")
	}
	seen := map[string]string{}
	for i := range m.Roots {
		r := &m.Roots[i]
		if r.Path == "" {
			return errors.Errorf("package_root %q: path is required", r.Name)
		}
		r.Path = filepath.Clean(r.Path)
		if err := checkLocal(fmt.Sprintf("package_root %q: path", r.Name), r.Path); err != nil {
			return err
		}
		names := r.PackageNames()
		if len(names) == 0 {
			return errors.Errorf("package_root %q: packages is empty", r.Name)
		}
		for _, pkg := range names {
			if err := checkLocal(fmt.Sprintf("package_root %q: package", r.Name), pkg); err != nil {
				return err
			}
			dst := filepath.Clean(pkg)
			if other, ok := seen[dst]; ok {
				return errors.Errorf("package %q is listed by both package_root %q and %q", pkg, other, r.Name)
			}
			seen[dst] = r.Name
		}
	}

	for i := range m.Files {
		f := &m.Files[i]
		if (f.Source == "") == (f.Template == "") {
			return errors.Errorf("file %q: exactly one of source or template is required", f.Name)
		}
		if f.Destination == "" {
			return errors.Errorf("file %q: destination is required", f.Name)
		}
		f.Destination = filepath.Clean(f.Destination)
		if err := checkLocal(fmt.Sprintf("file %q: destination", f.Name), f.Destination); err != nil {
			return err
		}
		if f.Source != "" {
			f.Source = filepath.Clean(f.Source)
			if err := checkLocal(fmt.Sprintf("file %q: source", f.Name), f.Source); err != nil {
				return err
			}
		}
	}

	for i := range m.Patches {
		p := &m.Patches[i]
		if p.File == "" {
			return errors.Errorf("patch %q: file is required", p.Name)
		}
		p.File = filepath.Clean(p.File)
		if err := checkLocal(fmt.Sprintf("patch %q: file", p.Name), p.File); err != nil {
			return err
		}
		if p.Old == "" {
			return errors.Errorf("patch %q: old is required", p.Name)
		}
	}

	for _, name := range m.Delete {
		if strings.TrimSpace(name) == "" {
			return errors.Errorf("delete: empty filename")
		}
		if strings.ContainsAny(name, `/\`) {
			return errors.Errorf("delete: %q must be a bare filename", name)
		}
	}

	for _, pattern := range m.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore: invalid pattern %q", pattern)
		}
	}

	return nil
}

// DeleteSet returns Delete as a lookup set.
func (m *Manifest) DeleteSet() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Delete))
	for _, name := range m.Delete {
		set[strings.TrimSpace(name)] = struct{}{}
	}
	return set
}

// 📝 String returns a one-line summary of the manifest.
func (m *Manifest) String() string {
	packages := 0
	for _, r := range m.Roots {
		packages += len(r.PackageNames())
	}
	return fmt.Sprintf("%s: %d packages, %d files, %d patches, %d deletions",
		m.Namespace, packages, len(m.Files), len(m.Patches), len(m.Delete))
}

// SplitLines splits s on newlines and returns the trimmed, non-empty lines.
func SplitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func checkLocal(field, path string) error {
	if !filepath.IsLocal(path) {
		return errors.Errorf("%s: %q must be a relative path that stays inside its root", field, path)
	}
	return nil
}
