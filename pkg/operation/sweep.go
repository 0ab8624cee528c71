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
	"github.com/walteh/tikaimport/pkg/fsutil"
	"github.com/walteh/tikaimport/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🗑️ NewSweepOperation creates the delete-by-name sweep
func NewSweepOperation(opts Options) Operation {
	return &sweepOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🗑️ sweepOperation removes unwanted files anywhere in the destination subtree
type sweepOperation struct {
	BaseOperation
}

func (op *sweepOperation) Name() string { return "sweep" }

func (op *sweepOperation) Description() string {
	return "delete unwanted files"
}

// 🏃 Execute runs the sweep
func (op *sweepOperation) Execute(ctx context.Context) error {
	names := op.Manifest.DeleteSet()
	zerolog.Ctx(ctx).Debug().Int("names", len(names)).Msg("sweeping destination")

	removed, err := fsutil.SweepNames(op.Dest, ".", names)
	for _, path := range removed {
		op.Tracker.Record(ctx, status.Entry{Path: path, Action: status.ActionDeleted})
	}
	if err != nil {
		return errors.Errorf("sweeping: %w", err)
	}

	if len(removed) == 0 {
		op.Logger.Info("no files matched the delete list")
	}
	return nil
}
