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

// Package fsutil holds the filesystem primitives the importer is built from:
// recursive tree copies, single file copies and the delete-by-name sweep.
// Everything works on afero filesystems so callers can confine writes with a
// base-path filesystem and tests can run in memory.
package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

const (
	// DirPerm is used for directories created without a source directory to mirror.
	DirPerm os.FileMode = 0o755
	// FilePerm is used for files that are written rather than copied.
	FilePerm os.FileMode = 0o644
)

// 📁 TreeCopier copies directory trees between two filesystems.
type TreeCopier struct {
	Src afero.Fs
	Dst afero.Fs

	// Skip, when set, is consulted for every entry with its path relative to
	// the destination filesystem; returning true leaves it (and, for a
	// directory, its subtree) out of the copy.
	Skip func(dstPath string, isDir bool) bool

	// OnFile is called after each regular file is copied.
	OnFile func(dstPath string, size int64)
}

// CopyTree recursively copies srcDir on the source filesystem to dstDir on the
// destination filesystem, preserving permission bits. dstDir must not exist.
// It returns the number of files copied.
func (c *TreeCopier) CopyTree(srcDir, dstDir string) (int, error) {
	info, err := c.Src.Stat(srcDir)
	if err != nil {
		return 0, errors.Errorf("reading source directory %s: %w", srcDir, err)
	}
	if !info.IsDir() {
		return 0, errors.Errorf("source %s is not a directory", srcDir)
	}

	exists, err := afero.Exists(c.Dst, dstDir)
	if err != nil {
		return 0, errors.Errorf("checking destination %s: %w", dstDir, err)
	}
	if exists {
		return 0, errors.Errorf("destination %s already exists", dstDir)
	}

	count := 0
	err = afero.Walk(c.Src, srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		target := filepath.Join(dstDir, rel)

		linked := info.Mode()&os.ModeSymlink != 0
		if linked {
			// links are followed, their target is copied in their place
			resolved, err := c.Src.Stat(path)
			if err != nil {
				return errors.Errorf("resolving link %s: %w", path, err)
			}
			info = resolved
		}

		if rel != "." && c.skip(target, info.IsDir()) {
			if info.IsDir() && !linked {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() && !linked {
			if err := c.Dst.MkdirAll(target, info.Mode().Perm()); err != nil {
				return errors.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}

		return c.copyResolved(path, target, info, &count)
	})
	if err != nil {
		return count, errors.Errorf("copying %s to %s: %w", srcDir, dstDir, err)
	}

	return count, nil
}

func (c *TreeCopier) skip(target string, isDir bool) bool {
	return c.Skip != nil && c.Skip(target, isDir)
}

// copyResolved copies path, whose followed file info is info, to target.
// Directories reached through a link are copied entry by entry, following
// links at every level.
func (c *TreeCopier) copyResolved(path, target string, info os.FileInfo, count *int) error {
	if info.IsDir() {
		if err := c.Dst.MkdirAll(target, info.Mode().Perm()); err != nil {
			return errors.Errorf("creating directory %s: %w", target, err)
		}

		entries, err := afero.ReadDir(c.Src, path)
		if err != nil {
			return errors.Errorf("reading directory %s: %w", path, err)
		}

		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			childTarget := filepath.Join(target, entry.Name())

			childInfo, err := c.Src.Stat(child)
			if err != nil {
				return errors.Errorf("resolving %s: %w", child, err)
			}
			if c.skip(childTarget, childInfo.IsDir()) {
				continue
			}
			if err := c.copyResolved(child, childTarget, childInfo, count); err != nil {
				return err
			}
		}
		return nil
	}

	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", path)
	}

	if err := copyContent(c.Src, path, c.Dst, target, info.Mode().Perm()); err != nil {
		return err
	}
	*count++
	if c.OnFile != nil {
		c.OnFile(target, info.Size())
	}
	return nil
}

// 📄 CopyFile copies a single file between filesystems, creating missing parent
// directories on the destination. An existing destination file is replaced.
func CopyFile(src afero.Fs, srcPath string, dst afero.Fs, dstPath string) error {
	info, err := src.Stat(srcPath)
	if err != nil {
		return errors.Errorf("reading source file %s: %w", srcPath, err)
	}
	if info.IsDir() {
		return errors.Errorf("source %s is a directory", srcPath)
	}

	if err := dst.MkdirAll(filepath.Dir(dstPath), DirPerm); err != nil {
		return errors.Errorf("creating parent directories for %s: %w", dstPath, err)
	}

	return copyContent(src, srcPath, dst, dstPath, FilePerm)
}

// ✍️ WriteFile writes content to path, creating missing parent directories.
func WriteFile(fs afero.Fs, path string, content []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return errors.Errorf("creating parent directories for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, content, FilePerm); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func copyContent(src afero.Fs, srcPath string, dst afero.Fs, dstPath string, perm os.FileMode) error {
	in, err := src.Open(srcPath)
	if err != nil {
		return errors.Errorf("opening source file %s: %w", srcPath, err)
	}
	defer in.Close()

	out, err := dst.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Errorf("creating destination file %s: %w", dstPath, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying %s: %w", srcPath, err)
	}

	if err := out.Close(); err != nil {
		return errors.Errorf("closing %s: %w", dstPath, err)
	}

	return nil
}
