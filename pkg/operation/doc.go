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

/*
Package operation implements the steps of an import run.

	+-----------+     +-----------+     +-----------+
	|  Source   | --> | Operation | --> |  Target   |
	| (read-only|     |   steps   |     | (base-path|
	|   afero)  |     +-----+-----+     |   afero)  |
	+-----------+           |           +-----------+
	                        v
	                  +-----------+
	                  |  Tracker  |
	                  +-----------+

🎯 Purpose:
  - Wipe and recreate the destination subtree
  - Copy the package directories listed by the manifest
  - Copy single files and write embedded templates, in manifest order
  - Apply literal text patches
  - Remove unwanted files by name anywhere in the subtree

🔄 Flow:
 1. The command validates both roots with ValidateRoots and asks for confirmation
 2. Plan turns a manifest into an ordered list of operations
 3. Runner executes them one after another, stopping at the first error

Every step reads through a read-only filesystem rooted at the source root and
writes through a base-path filesystem rooted at the destination subtree, so a
step cannot touch anything outside of it.

🔍 Example:

	ops := operation.Plan(operation.Options{
		Fs:              afero.NewOsFs(),
		Manifest:        manifest,
		Assets:          assets.Templates(),
		SourceRoot:      src,
		DestinationRoot: dst,
		Tracker:         tracker,
		Logger:          logger,
	})
	err := operation.NewRunner(logger).Run(ctx, ops)
*/
package operation
