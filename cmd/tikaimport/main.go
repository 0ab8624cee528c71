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
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/walteh/tikaimport/pkg/operation"
	"github.com/walteh/tikaimport/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)

	switch {
	case err == nil:
	case errors.Is(err, ErrDeclined):
		fmt.Fprintln(errOut, "aborted, nothing was changed")
	default:
		color.New(color.FgRed).Fprintln(errOut, status.NewDefaultFileFormatter().FormatError(err))
		if code == exitUsage {
			fmt.Fprintln(errOut)
			fmt.Fprint(errOut, cmd.UsageString())
		}
	}

	return code
}

// exitCode maps an error returned by the command to an exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var usage *operation.UsageError
	if errors.As(err, &usage) {
		return exitUsage
	}

	return exitFailure
}
