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
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// UsageError marks errors caused by how the tool was invoked rather than by
// a failed step.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// 🔍 ValidateRoots checks that both roots are existing directories.
func ValidateRoots(fs afero.Fs, sourceRoot, destinationRoot string) error {
	for _, path := range []string{sourceRoot, destinationRoot} {
		ok, err := afero.IsDir(fs, path)
		if err != nil || !ok {
			return &UsageError{Err: errors.Errorf("not a directory: %s", path)}
		}
	}
	return nil
}
