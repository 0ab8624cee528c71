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

package status

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/tikaimport/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// FileFormatter defines how entries and summaries are presented
type FileFormatter interface {
	// FormatEntry turns an entry into a console line
	FormatEntry(e Entry) log.FileOperation

	// FormatSummary renders the summary of a run
	FormatSummary(s Summary) (string, error)

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatEntry maps an entry to the console representation
func (f *DefaultFileFormatter) FormatEntry(e Entry) log.FileOperation {
	op := log.FileOperation{Path: e.Path}
	switch e.Action {
	case ActionPackageCopied:
		op.Kind = "package"
		op.Status = plural(e.Files, "file")
		op.IsNew = true
	case ActionFileCopied:
		op.Kind = "copy"
		op.Status = "copied"
		op.IsNew = true
	case ActionGenerated:
		op.Kind = "template"
		op.Status = "generated"
		op.IsNew = true
	case ActionPatched:
		op.Kind = "patch"
		op.Status = plural(e.Replacements, "replacement")
		op.IsModified = true
	case ActionUnmatched:
		op.Kind = "patch"
		op.Status = "not found"
		op.IsSkipped = true
	case ActionDeleted:
		op.Kind = "delete"
		op.Status = "deleted"
		op.IsRemoved = true
	default:
		op.Kind = "file"
		op.Status = e.Action.String()
	}
	return op
}

// FormatSummary renders the counts of a run as a table
func (f *DefaultFileFormatter) FormatSummary(s Summary) (string, error) {
	data := pterm.TableData{
		{"action", "count"},
		{"packages copied", strconv.Itoa(s.Packages)},
		{"package files", strconv.Itoa(s.PackageFiles)},
		{"files copied", strconv.Itoa(s.Files)},
		{"files generated", strconv.Itoa(s.Generated)},
		{"patches applied", strconv.Itoa(s.Patched)},
		{"patches unmatched", strconv.Itoa(s.Unmatched)},
		{"files deleted", strconv.Itoa(s.Deleted)},
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out, nil
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
