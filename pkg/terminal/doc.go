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

// Package terminal implements the terminal session used by hecto.
// A session owns the host terminal device: it switches it into raw
// mode, buffers output until it is explicitly flushed, and reads input
// events one at a time.
//
// Three backends are available. Termbox is the default and draws
// through termbox-go. Tcell draws through tcell. ANSI talks to the
// device directly with golang.org/x/term and VT100 control sequences.
// All backends enforce the same lifecycle: Initialize exactly once,
// then any number of operations, then Terminate exactly once.
package terminal
