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

package fsutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🧹 SweepNames walks root and removes every non-directory entry whose base
// name is in names, at any depth. Directories are never removed. Removal
// happens after the walk so the tree is not mutated while being read.
// It returns the removed paths in walk order.
func SweepNames(fs afero.Fs, root string, names map[string]struct{}) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var matches []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if _, ok := names[filepath.Base(path)]; ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	removed := make([]string, 0, len(matches))
	for _, path := range matches {
		if err := fs.Remove(path); err != nil {
			return removed, errors.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, path)
	}

	return removed, nil
}
