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
Package status records what an import run did to the vendored tree.

	+-----------+      Record       +-----------+
	| operation | ----------------> |  Tracker  |
	+-----------+                   +-----+-----+
	                                      |
	                        +-------------+-------------+
	                        |                           |
	                  +-----+-----+               +-----+-----+
	                  |  Console  |               |  Summary  |
	                  | (pkg/log) |               |  (pterm)  |
	                  +-----------+               +-----------+

🎯 Purpose:
  - One Entry per package copied, file written, patch applied or file deleted
  - Each entry is echoed to the console as it happens
  - A summary table is rendered once the pipeline finishes

🔄 Flow:
 1. Operations call Record or RecordContent after touching the tree
 2. The Tracker stores the entry and prints it through the console logger
 3. The command renders Summary with a FileFormatter

🔍 Example:

	tracker := status.New(log.New(os.Stdout, *zerolog.Ctx(ctx)))
	tracker.RecordContent(ctx, "Tika.java", status.ActionFileCopied, data)

	table, err := status.NewDefaultFileFormatter().FormatSummary(tracker.Summary())
*/
package status
