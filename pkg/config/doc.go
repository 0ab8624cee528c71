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
Package config loads and validates the import manifest.

	+---------+   +---------+   +---------+   +---------+
	|  .hcl   |   |  .yaml  |   |  .json  |   |  .toml  |
	+----+----+   +----+----+   +----+----+   +----+----+
	     |             |             |             |
	     +-------------+------+------+-------------+
	                          |
	                    +-----+-----+
	                    |  Parser   |  picked by file extension
	                    +-----+-----+
	                          |
	                    +-----+-----+
	                    | Manifest  |  Validate()
	                    +-----------+

🎯 Purpose:
  - Describe an import run as one explicit value: package roots, single
    files, patches, the delete list and ignore globs
  - Ship the default Tika manifest embedded in the binary (see Default)
  - Reject manifests whose paths would escape the source root or the
    destination subtree before anything is written

HCL manifests can refer to the standard Tika source roots as the variables
tika_core and tika_parsers.

🔍 Example:

	m, err := config.Load(ctx, "tika.hcl")
	if err != nil {
		return err
	}
	for _, root := range m.Roots {
		fmt.Println(root.Name, root.PackageNames())
	}
*/
package config
