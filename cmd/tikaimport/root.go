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

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tikaimport/pkg/assets"
	"github.com/walteh/tikaimport/pkg/config"
	"github.com/walteh/tikaimport/pkg/log"
	"github.com/walteh/tikaimport/pkg/operation"
	"github.com/walteh/tikaimport/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the flags shared by the commands
type rootOpts struct {
	configFile string
	debug      bool
	yes        bool
	strict     bool
}

// 🏗️ NewRootCommand creates the tikaimport command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "tikaimport [flags] <source_root> <destination_root>",
		Short: "Vendor a subset of the Apache Tika sources into a project",
		Long: `tikaimport copies the Tika packages a project needs from an upstream
checkout into <destination_root>/org/apache/tika, replaces the parts that
pull in unwanted dependencies, patches known issues and removes files
that must not be compiled.

The destination subtree is deleted before anything is copied.`,
		Args:          requireRoots,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &operation.UsageError{Err: err}
	})

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "manifest file (.hcl, .yaml, .json or .toml); defaults to the built-in manifest")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "delete the destination subtree without asking")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a patch finds nothing to replace")

	cmd.AddCommand(
		newManifestCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// requireRoots checks that both roots were given
func requireRoots(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return &operation.UsageError{
			Err: errors.Errorf("requires <source_root> and <destination_root>, got %d argument(s)", len(args)),
		}
	}
	return nil
}

// setupLogging puts a zerolog logger writing to stderr into the command context
func setupLogging(cmd *cobra.Command, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))
}

// loadManifest returns the manifest to run and the filesystem its templates are read from
func loadManifest(ctx context.Context, path string) (*config.Manifest, afero.Fs, error) {
	if path == "" {
		m, err := config.Default(ctx)
		if err != nil {
			return nil, nil, err
		}
		return m, assets.Templates(), nil
	}

	m, err := config.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return m, assets.WithOverlay(filepath.Dir(path)), nil
}

// 🚀 runImport validates the roots, asks for confirmation and runs the pipeline
func runImport(cmd *cobra.Command, opts *rootOpts, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	if len(args) > 2 {
		logger.Warn().Strs("ignored", args[2:]).Msg("ignoring extra arguments")
	}

	sourceRoot, err := filepath.Abs(args[0])
	if err != nil {
		return &operation.UsageError{Err: errors.Errorf("resolving %s: %w", args[0], err)}
	}
	destinationRoot, err := filepath.Abs(args[1])
	if err != nil {
		return &operation.UsageError{Err: errors.Errorf("resolving %s: %w", args[1], err)}
	}

	manifest, templates, err := loadManifest(ctx, opts.configFile)
	if err != nil {
		return &operation.UsageError{Err: err}
	}

	fs := afero.NewOsFs()
	if err := operation.ValidateRoots(fs, sourceRoot, destinationRoot); err != nil {
		return err
	}

	target := filepath.Join(destinationRoot, manifest.Namespace)
	if opts.yes {
		logger.Debug().Str("path", target).Msg("deletion confirmed by flag")
	} else {
		ok, err := Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), target)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDeclined
		}
	}

	console := log.New(cmd.OutOrStdout(), *logger)
	console.Header(fmt.Sprintf("importing %s", manifest))
	if loc := manifest.Location(); loc != "" {
		console.Infof("using manifest %s", loc)
	}

	tracker := status.New(console)
	ops := operation.Plan(operation.Options{
		Fs:              fs,
		Manifest:        manifest,
		Assets:          templates,
		SourceRoot:      sourceRoot,
		DestinationRoot: destinationRoot,
		Strict:          opts.strict,
		Tracker:         tracker,
		Logger:          console,
	})

	if err := operation.NewRunner(console).Run(ctx, ops); err != nil {
		return err
	}

	for _, e := range tracker.Entries() {
		logger.Debug().Str("path", e.Path).Str("action", e.Action.String()).Str("sha256", e.Checksum).Msg("recorded")
	}

	table, err := status.NewDefaultFileFormatter().FormatSummary(tracker.Summary())
	if err != nil {
		return err
	}
	console.LogNewline()
	fmt.Fprint(console.Writer(), table)
	console.LogNewline()
	console.Successf("imported into %s", target)

	return nil
}
