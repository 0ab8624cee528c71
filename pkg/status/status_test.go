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
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tikaimport/pkg/log"
)

func TestTrackerRecord(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	var buf bytes.Buffer
	tracker := New(log.New(&buf, zerolog.New(zerolog.NewTestWriter(t))))

	tracker.Record(ctx, Entry{Path: "mime", Action: ActionPackageCopied, Files: 3, Size: 30})
	tracker.Record(ctx, Entry{Path: "parser", Action: ActionPackageCopied, Files: 1, Size: 5})
	tracker.RecordContent(ctx, "Tika.java", ActionFileCopied, []byte("class Tika {}"))
	tracker.RecordContent(ctx, "parser/microsoft/OfficeParser.java", ActionGenerated, []byte("x"))
	tracker.Record(ctx, Entry{Path: "parser/rtf/TextExtractor.java", Action: ActionPatched, Replacements: 2})
	tracker.Record(ctx, Entry{Path: "parser/rtf/Other.java", Action: ActionUnmatched})
	tracker.Record(ctx, Entry{Path: "parser/chm/ChmParser.java", Action: ActionDeleted})

	entries := tracker.Entries()
	require.Len(t, entries, 7)
	assert.Equal(t, "mime", entries[0].Path, "entries keep record order")
	assert.Equal(t, "Tika.java", entries[2].Path)
	assert.Equal(t, int64(13), entries[2].Size)
	assert.Equal(t, 1, entries[2].Files)
	assert.Len(t, entries[2].Checksum, 64)

	assert.Equal(t, Summary{
		Packages:     2,
		PackageFiles: 4,
		Files:        1,
		Generated:    1,
		Patched:      1,
		Unmatched:    1,
		Deleted:      1,
		Bytes:        49,
	}, tracker.Summary())

	out := buf.String()
	assert.Contains(t, out, "3 files")
	assert.Contains(t, out, "2 replacements")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "parser/chm/ChmParser.java")
}

func TestTrackerEntriesIsCopy(t *testing.T) {
	tracker := New(nil)
	tracker.Record(context.Background(), Entry{Path: "a", Action: ActionDeleted})

	entries := tracker.Entries()
	entries[0].Path = "b"

	assert.Equal(t, "a", tracker.Entries()[0].Path)
}

func TestCalculateChecksum(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		calculateChecksum(nil),
		"empty content has the well-known digest")
	assert.NotEqual(t, calculateChecksum([]byte("a")), calculateChecksum([]byte("b")))
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionPackageCopied, "package copied"},
		{ActionFileCopied, "file copied"},
		{ActionGenerated, "generated"},
		{ActionPatched, "patched"},
		{ActionUnmatched, "unmatched"},
		{ActionDeleted, "deleted"},
		{ActionUnknown, "unknown"},
		{Action(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.String())
		})
	}
}
