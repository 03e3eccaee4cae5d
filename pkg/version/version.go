//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package version holds the product name and version shown by hecto.
// Both may be set at link time:
//
//	go build -ldflags "-X github.com/timburks/hecto/pkg/version.Version=1.2.0"
package version

import "runtime/debug"

var (
	Name    = "hecto"
	Version = "dev"
)

func init() {
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}

// String returns "<name> <version>".
func String() string {
	return Name + " " + Version
}
