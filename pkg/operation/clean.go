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
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tikaimport/pkg/fsutil"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) Operation {
	return &cleanOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🧹 cleanOperation removes the destination subtree and recreates it empty
type cleanOperation struct {
	BaseOperation
}

func (op *cleanOperation) Name() string { return "clean" }

func (op *cleanOperation) Description() string {
	return "remove " + op.Target()
}

// 🏃 Execute runs the clean operation
func (op *cleanOperation) Execute(ctx context.Context) error {
	target := op.Target()

	exists, err := afero.Exists(op.Fs, target)
	if err != nil {
		return errors.Errorf("checking %s: %w", target, err)
	}

	if exists {
		zerolog.Ctx(ctx).Debug().Str("path", target).Msg("removing destination subtree")
		if err := op.Fs.RemoveAll(target); err != nil {
			return errors.Errorf("removing %s: %w", target, err)
		}
	}

	if err := op.Fs.MkdirAll(target, fsutil.DirPerm); err != nil {
		return errors.Errorf("creating %s: %w", target, err)
	}

	return nil
}
