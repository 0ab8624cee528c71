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

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"github.com/walteh/tikaimport/pkg/config"
	"github.com/walteh/tikaimport/pkg/status"
	"github.com/walteh/tikaimport/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🩹 NewPatchOperation creates the text patch step
func NewPatchOperation(opts Options) Operation {
	return &patchOperation{
		BaseOperation: NewBaseOperation(opts),
		replacer:      text.NewSimpleTextReplacer(),
	}
}

// 🩹 patchOperation applies literal replacements to copied files
type patchOperation struct {
	BaseOperation
	replacer text.TextReplacer
}

func (op *patchOperation) Name() string { return "patch" }

func (op *patchOperation) Description() string {
	return "patch known issues"
}

// 🏃 Execute applies every patch of the manifest
func (op *patchOperation) Execute(ctx context.Context) error {
	for _, p := range op.Manifest.Patches {
		if err := op.apply(ctx, p); err != nil {
			return errors.Errorf("patch %s: %w", p.Name, err)
		}
	}
	return nil
}

func (op *patchOperation) apply(ctx context.Context, p config.Patch) error {
	rules := []text.ReplacementRule{{FromText: p.Old, ToText: p.New}}
	if err := op.replacer.ValidateRules(rules); err != nil {
		return err
	}

	info, err := op.Dest.Stat(p.File)
	if err != nil {
		return errors.Errorf("reading %s: %w", p.File, err)
	}

	content, err := afero.ReadFile(op.Dest, p.File)
	if err != nil {
		return errors.Errorf("reading %s: %w", p.File, err)
	}

	result, err := op.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return errors.Errorf("replacing text in %s: %w", p.File, err)
	}

	if !result.WasModified {
		if op.Strict {
			return errors.Errorf("text %q not found in %s", p.Old, p.File)
		}
		op.Logger.Warningf("text %q not found in %s, leaving it unchanged", p.Old, p.File)
		op.Tracker.Record(ctx, status.Entry{Path: p.File, Action: status.ActionUnmatched})
		return nil
	}

	if err := afero.WriteFile(op.Dest, p.File, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return errors.Errorf("writing %s: %w", p.File, err)
	}

	if logger := zerolog.Ctx(ctx); logger.GetLevel() <= zerolog.DebugLevel {
		dmp := diffmatchpatch.New()
		patches := dmp.PatchMake(string(result.OriginalContent), string(result.ModifiedContent))
		logger.Debug().Str("file", p.File).Str("diff", dmp.PatchToText(patches)).Msg("applied patch")
	}

	op.Tracker.Record(ctx, status.Entry{
		Path:         p.File,
		Action:       status.ActionPatched,
		Size:         int64(len(result.ModifiedContent)),
		Replacements: result.ReplacementCount,
	})
	return nil
}
