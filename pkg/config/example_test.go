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

package config_test

import (
	"context"
	"fmt"

	"github.com/walteh/tikaimport/pkg/config"
)

func ExampleDefault() {
	m, err := config.Default(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m)
	for _, root := range m.Roots {
		fmt.Println(root.Name, len(root.PackageNames()))
	}
	// Output:
	// org/apache/tika: 17 packages, 4 files, 1 patches, 5 deletions
	// core 12
	// parsers 5
}

func ExampleParse() {
	manifest := `
namespace: vendor/tika
package_roots:
  - name: core
    path: tika-core/src/main/java/org/apache/tika
    packages: |
      mime
      utils
delete:
  - package-info.java
`

	m, err := config.Parse(context.Background(), "manifest.yaml", []byte(manifest))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m)
	fmt.Println(m.Roots[0].PackageNames())
	// Output:
	// vendor/tika: 2 packages, 0 files, 0 patches, 1 deletions
	// [mime utils]
}
