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
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tikaimport/pkg/config"
	"github.com/walteh/tikaimport/pkg/log"
	"github.com/walteh/tikaimport/pkg/status"
)

// 🎯 Operation is one step of an import run
type Operation interface {
	// Name returns a short identifier for the step
	Name() string
	// Description returns a human readable summary of the step
	Description() string
	// Execute runs the step
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything the steps of a run share
type Options struct {
	// Fs is the host filesystem both roots live on
	Fs afero.Fs
	// Manifest describes what to import
	Manifest *config.Manifest
	// Assets resolves template names
	Assets afero.Fs
	// SourceRoot is the upstream checkout
	SourceRoot string
	// DestinationRoot is the host project's source root
	DestinationRoot string
	// Strict turns an unmatched patch into an error
	Strict bool
	// Tracker records every change
	Tracker *status.Tracker
	// Logger prints warnings
	Logger *log.Logger
}

// Target returns the destination subtree that is wiped and repopulated.
func (o Options) Target() string {
	return filepath.Join(o.DestinationRoot, o.Manifest.Namespace)
}

// 🏗️ BaseOperation provides the filesystems shared by all steps
type BaseOperation struct {
	Options

	// Source is read-only and rooted at SourceRoot
	Source afero.Fs
	// Dest is rooted at the destination subtree
	Dest afero.Fs
}

// 🏭 NewBaseOperation creates the confined filesystems for opts
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Tracker == nil {
		opts.Tracker = status.New(opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, zerolog.Nop())
	}
	return BaseOperation{
		Options: opts,
		Source:  afero.NewReadOnlyFs(afero.NewBasePathFs(opts.Fs, opts.SourceRoot)),
		Dest:    afero.NewBasePathFs(opts.Fs, opts.Target()),
	}
}

// 📋 Plan returns the steps of an import run in execution order
func Plan(opts Options) []Operation {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, zerolog.Nop())
	}
	if opts.Tracker == nil {
		opts.Tracker = status.New(opts.Logger)
	}
	return []Operation{
		NewCleanOperation(opts),
		NewCopyPackagesOperation(opts),
		NewCopyFilesOperation(opts),
		NewPatchOperation(opts),
		NewSweepOperation(opts),
	}
}
