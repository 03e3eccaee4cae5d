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

// Package editor runs hecto's event loop.
// The editor owns a terminal session for the duration of Run: it
// redraws the screen, blocks for the next input event, evaluates it,
// and repeats until the user asks to quit with Ctrl+Q.
// There is no text buffer yet, so every other key is ignored.
package editor
