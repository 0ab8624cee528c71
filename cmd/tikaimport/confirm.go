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
	"bufio"
	"fmt"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrDeclined is returned when the operator does not confirm the deletion.
var ErrDeclined = errors.Base("deletion not confirmed")

// ❓ Confirm asks whether the contents of path may be deleted and reads one
// line of input. Only "y", after trimming surrounding whitespace, confirms.
// End of input without an answer declines.
func Confirm(in io.Reader, out io.Writer, path string) (bool, error) {
	fmt.Fprintf(out, "Contents of '%s' will be deleted. Continue? [y/n] ", path)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Errorf("reading answer: %w", err)
	}

	return strings.TrimSpace(line) == "y", nil
}
