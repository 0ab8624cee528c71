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

package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{
		"/dst/package-info.java":                  "a",
		"/dst/Tika.java":                          "b",
		"/dst/parser/package-info.java":           "c",
		"/dst/parser/chm/ChmParser.java":          "d",
		"/dst/parser/chm/accessor/Accessor.java":  "e",
		"/dst/parser/chm/accessor/ChmParser.java": "f",
	})
	// a directory with a listed name must survive
	require.NoError(t, fs.MkdirAll("/dst/TikaActivator.java", 0o755))

	names := map[string]struct{}{
		"package-info.java":  {},
		"ChmParser.java":     {},
		"TikaActivator.java": {},
	}

	removed, err := SweepNames(fs, "/dst", names)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"/dst/package-info.java",
		"/dst/parser/package-info.java",
		"/dst/parser/chm/ChmParser.java",
		"/dst/parser/chm/accessor/ChmParser.java",
	}, removed)

	assert.Equal(t, []string{"Tika.java", "parser/chm/accessor/Accessor.java"}, listFiles(t, fs, "/dst"))

	isDir, err := afero.IsDir(fs, "/dst/TikaActivator.java")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestSweepNames_EmptySet(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{"/dst/package-info.java": "a"})

	removed, err := SweepNames(fs, "/dst", nil)
	require.NoError(t, err)
	assert.Empty(t, removed)

	exists, err := afero.Exists(fs, "/dst/package-info.java")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSweepNames_MissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := SweepNames(fs, "/nope", map[string]struct{}{"x": {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "walking /nope")
}
