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
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/walteh/tikaimport/pkg/log"
)

// 📊 Action is what happened to an entry of the vendored tree
type Action int

const (
	ActionUnknown       Action = iota
	ActionPackageCopied        // A package directory was copied
	ActionFileCopied           // A single file was copied
	ActionGenerated            // A file was written from an embedded template
	ActionPatched              // A text patch was applied
	ActionUnmatched            // A text patch found nothing to replace
	ActionDeleted              // A file was removed by the sweep
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionPackageCopied:
		return "package copied"
	case ActionFileCopied:
		return "file copied"
	case ActionGenerated:
		return "generated"
	case ActionPatched:
		return "patched"
	case ActionUnmatched:
		return "unmatched"
	case ActionDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// 📄 Entry describes one change to the vendored tree
type Entry struct {
	Path         string // Path relative to the destination subtree
	Action       Action // What happened
	Files        int    // Number of files written, for package copies
	Size         int64  // Bytes written
	Checksum     string // SHA-256 of the written content, for single files
	Replacements int    // Number of replacements, for patches
}

// 📈 Summary counts the entries of a run by action
type Summary struct {
	Packages     int // Package directories copied
	PackageFiles int // Files written by package copies
	Files        int // Single files copied
	Generated    int // Files written from templates
	Patched      int // Patches applied
	Unmatched    int // Patches that found nothing to replace
	Deleted      int // Files removed by the sweep
	Bytes        int64
}

// 🔧 Tracker collects entries in the order they were recorded
type Tracker struct {
	logger    *log.Logger
	formatter FileFormatter

	mu      sync.Mutex
	entries []Entry
}

// 🏭 New creates a new tracker that echoes entries to logger
func New(logger *log.Logger) *Tracker {
	return &Tracker{
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
	}
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// 📝 Record stores an entry and prints it
func (t *Tracker) Record(ctx context.Context, e Entry) {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.LogFileOperation(ctx, t.formatter.FormatEntry(e))
	}
}

// 📝 RecordContent records a single written file, filling in size and checksum
func (t *Tracker) RecordContent(ctx context.Context, path string, action Action, content []byte) {
	t.Record(ctx, Entry{
		Path:     path,
		Action:   action,
		Files:    1,
		Size:     int64(len(content)),
		Checksum: calculateChecksum(content),
	})
}

// Entries returns a copy of the recorded entries.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// 📊 Summary counts the recorded entries
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s Summary
	for _, e := range t.entries {
		s.Bytes += e.Size
		switch e.Action {
		case ActionPackageCopied:
			s.Packages++
			s.PackageFiles += e.Files
		case ActionFileCopied:
			s.Files++
		case ActionGenerated:
			s.Generated++
		case ActionPatched:
			s.Patched++
		case ActionUnmatched:
			s.Unmatched++
		case ActionDeleted:
			s.Deleted++
		}
	}
	return s
}
