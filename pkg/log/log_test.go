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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		setup    func(*Logger)
		expected []string
	}{
		{
			name: "header",
			setup: func(l *Logger) {
				l.Header("importing Tika")
			},
			expected: []string{
				"",
				"tikaimport • importing Tika",
				"",
			},
		},
		{
			name: "messages",
			setup: func(l *Logger) {
				l.Success("done")
				l.Warningf("text %q not found", "assert")
				l.Errorf("step %d failed", 3)
				l.Info("nothing to delete")
			},
			expected: []string{
				"✅ done",
				"⚠️  text \"assert\" not found",
				"❌ step 3 failed",
				"ℹ️  nothing to delete",
			},
		},
		{
			name: "step with files",
			setup: func(l *Logger) {
				ctx := context.Background()
				l.StartStep(ctx, StepOperation{Index: 5, Total: 9, Name: "copy-files", Description: "copy single files"})
				l.LogFileOperation(ctx, FileOperation{Path: "Tika.java", Kind: "copy", Status: "copied", IsNew: true})
				l.EndStep(ctx)
			},
			expected: []string{
				"◆ [5/9] copy-files • copy single files",
				"    ✓ Tika.java                           copy       copied",
			},
		},
		{
			name: "end without start",
			setup: func(l *Logger) {
				l.EndStep(context.Background())
				l.LogNewline()
			},
			expected: []string{
				"",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))

			tt.setup(logger)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			for i := range lines {
				lines[i] = strings.TrimRight(lines[i], " ")
			}
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "new file",
			op:   FileOperation{Path: "Tika.java", Kind: "copy", Status: "copied", IsNew: true},
			want: "    ✓ Tika.java                           copy       copied",
		},
		{
			name: "patched file",
			op:   FileOperation{Path: "parser/rtf/TextExtractor.java", Kind: "patch", Status: "1 replacement", IsModified: true},
			want: "    ⟳ parser/rtf/TextExtractor.java       patch      1 replacement",
		},
		{
			name: "removed file",
			op:   FileOperation{Path: "parser/chm/ChmParser.java", Kind: "delete", Status: "deleted", IsRemoved: true},
			want: "    ✗ parser/chm/ChmParser.java           delete     deleted",
		},
		{
			name: "skipped patch",
			op:   FileOperation{Path: "parser/rtf/TextExtractor.java", Kind: "patch", Status: "not found", IsSkipped: true},
			want: "    ! parser/rtf/TextExtractor.java       patch      not found",
		},
		{
			name: "package",
			op:   FileOperation{Path: "mime", Kind: "package", Status: "42 files"},
			want: "    • mime                                package    42 files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.Nop())
			logger.LogFileOperation(context.Background(), tt.op)
			require.NotEmpty(t, buf.String())
			assert.Equal(t, tt.want, strings.TrimRight(buf.String(), " \n"))
		})
	}
}
