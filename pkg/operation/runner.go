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
	"github.com/walteh/tikaimport/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations in order
type Runner struct {
	logger *log.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// 🏃 Run executes ops one after another. It stops at the first failing step
// and checks ctx before starting each one.
func (r *Runner) Run(ctx context.Context, ops []Operation) error {
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled before %s: %w", op.Name(), err)
		}

		r.logger.StartStep(ctx, log.StepOperation{
			Index:       i + 1,
			Total:       len(ops),
			Name:        op.Name(),
			Description: op.Description(),
		})

		err := op.Execute(ctx)
		r.logger.EndStep(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("step", op.Name()).Msg("step failed")
			r.logger.Errorf("step %s failed", op.Name())
			return errors.Errorf("%s: %w", op.Name(), err)
		}
	}

	return nil
}
