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

package operation

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tikaimport/pkg/fsutil"
	"github.com/walteh/tikaimport/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCopyPackagesOperation creates the bulk package copy
func NewCopyPackagesOperation(opts Options) Operation {
	return &copyPackagesOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 copyPackagesOperation copies every package directory of every root
type copyPackagesOperation struct {
	BaseOperation
}

func (op *copyPackagesOperation) Name() string { return "copy-packages" }

func (op *copyPackagesOperation) Description() string {
	return "copy package directories"
}

// 🏃 Execute runs the package copy
func (op *copyPackagesOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	for _, root := range op.Manifest.Roots {
		for _, pkg := range root.PackageNames() {
			src := filepath.Join(root.Path, pkg)
			dst := filepath.Clean(pkg)

			var size int64
			copier := &fsutil.TreeCopier{
				Src:  op.Source,
				Dst:  op.Dest,
				Skip: op.ignored,
				OnFile: func(path string, n int64) {
					size += n
				},
			}

			logger.Debug().Str("root", root.Name).Str("src", src).Str("dst", dst).Msg("copying package")

			count, err := copier.CopyTree(src, dst)
			if err != nil {
				return errors.Errorf("copying package %s: %w", pkg, err)
			}

			op.Tracker.Record(ctx, status.Entry{
				Path:   dst,
				Action: status.ActionPackageCopied,
				Files:  count,
				Size:   size,
			})
		}
	}

	return nil
}

// ignored reports whether path matches one of the manifest's ignore globs.
// Files and directories are matched alike.
func (op *copyPackagesOperation) ignored(path string, _ bool) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range op.Manifest.Ignore {
		// patterns are checked by Manifest.Validate, Match only fails on a bad pattern
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}
	return false
}

// 📄 NewCopyFilesOperation creates the single file copy
func NewCopyFilesOperation(opts Options) Operation {
	return &copyFilesOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📄 copyFilesOperation copies single files and writes templates in manifest order
type copyFilesOperation struct {
	BaseOperation
}

func (op *copyFilesOperation) Name() string { return "copy-files" }

func (op *copyFilesOperation) Description() string {
	return "copy single files and write templates"
}

// 🏃 Execute runs the single file copy
func (op *copyFilesOperation) Execute(ctx context.Context) error {
	for _, f := range op.Manifest.Files {
		if f.IsTemplate() {
			if err := op.writeTemplate(ctx, f.Template, f.Destination); err != nil {
				return errors.Errorf("file %s: %w", f.Name, err)
			}
			continue
		}

		if err := op.copyFile(ctx, f.Source, f.Destination); err != nil {
			return errors.Errorf("file %s: %w", f.Name, err)
		}
	}

	return nil
}

func (op *copyFilesOperation) copyFile(ctx context.Context, src, dst string) error {
	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("copying file")

	if err := fsutil.CopyFile(op.Source, src, op.Dest, dst); err != nil {
		return err
	}

	content, err := afero.ReadFile(op.Dest, dst)
	if err != nil {
		return errors.Errorf("reading back %s: %w", dst, err)
	}

	op.Tracker.RecordContent(ctx, dst, status.ActionFileCopied, content)
	return nil
}

func (op *copyFilesOperation) writeTemplate(ctx context.Context, name, dst string) error {
	zerolog.Ctx(ctx).Debug().Str("template", name).Str("dst", dst).Msg("writing template")

	raw, err := afero.ReadFile(op.Assets, name)
	if err != nil {
		return errors.Errorf("reading template %s: %w", name, err)
	}

	content := bytes.TrimSpace(raw)
	if err := fsutil.WriteFile(op.Dest, dst, content); err != nil {
		return err
	}

	op.Tracker.RecordContent(ctx, dst, status.ActionGenerated, content)
	return nil
}
