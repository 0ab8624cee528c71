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
	"errors"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tikaimport/pkg/log"
)

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  log.FileOperation
	}{
		{
			name:  "package",
			entry: Entry{Path: "mime", Action: ActionPackageCopied, Files: 12},
			want:  log.FileOperation{Path: "mime", Kind: "package", Status: "12 files", IsNew: true},
		},
		{
			name:  "single_file_package",
			entry: Entry{Path: "utils", Action: ActionPackageCopied, Files: 1},
			want:  log.FileOperation{Path: "utils", Kind: "package", Status: "1 file", IsNew: true},
		},
		{
			name:  "copied",
			entry: Entry{Path: "Tika.java", Action: ActionFileCopied},
			want:  log.FileOperation{Path: "Tika.java", Kind: "copy", Status: "copied", IsNew: true},
		},
		{
			name:  "generated",
			entry: Entry{Path: "parser/microsoft/OfficeParser.java", Action: ActionGenerated},
			want:  log.FileOperation{Path: "parser/microsoft/OfficeParser.java", Kind: "template", Status: "generated", IsNew: true},
		},
		{
			name:  "patched",
			entry: Entry{Path: "parser/rtf/TextExtractor.java", Action: ActionPatched, Replacements: 1},
			want:  log.FileOperation{Path: "parser/rtf/TextExtractor.java", Kind: "patch", Status: "1 replacement", IsModified: true},
		},
		{
			name:  "unmatched",
			entry: Entry{Path: "parser/rtf/TextExtractor.java", Action: ActionUnmatched},
			want:  log.FileOperation{Path: "parser/rtf/TextExtractor.java", Kind: "patch", Status: "not found", IsSkipped: true},
		},
		{
			name:  "deleted",
			entry: Entry{Path: "TikaActivator.java", Action: ActionDeleted},
			want:  log.FileOperation{Path: "TikaActivator.java", Kind: "delete", Status: "deleted", IsRemoved: true},
		},
		{
			name:  "unknown",
			entry: Entry{Path: "x"},
			want:  log.FileOperation{Path: "x", Kind: "file", Status: "unknown"},
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatEntry(tt.entry))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out, err := NewDefaultFileFormatter().FormatSummary(Summary{
		Packages:     17,
		PackageFiles: 400,
		Files:        3,
		Generated:    1,
		Patched:      1,
		Deleted:      5,
	})
	require.NoError(t, err)

	for _, want := range []string{
		"packages copied", "17",
		"package files", "400",
		"files generated",
		"patches applied",
		"patches unmatched",
		"files deleted",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFormatError(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Empty(t, f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
