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

// Package types contains the values and interfaces shared by hecto's
// terminal backends, renderer and editor.
package types

// A Position is a 0-based terminal cell.
type Position struct {
	X int // column
	Y int // row
}

// A Size is a snapshot of the terminal dimensions.
type Size struct {
	Width  int
	Height int
}

// Event types
type EventType int

const (
	EventKey EventType = iota
	EventResize
	EventOther
)

// Keys
type Key int

const (
	KeyUnsupported Key = iota
	KeyRune
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeyTab
)

// Modifiers
type Modifier int

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModShift Modifier = 1 << 2
)

// An Event is a single input event read from the terminal.
// Control-modified letters are reported as KeyRune with Ch set to the
// lowercase letter and Mod containing ModCtrl.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Mod  Modifier
}

// A Terminal owns the host terminal device. Initialize must be called
// before any other method and Terminate after the last one.
// Print only buffers text; nothing is visible until Execute.
type Terminal interface {
	Initialize() error
	Terminate() error
	Size() (Size, error)
	ClearScreen() error
	ClearLine() error
	MoveCursorTo(position Position) error
	HideCursor() error
	ShowCursor() error
	Print(text string) error
	Execute() error
	ReadEvent() (Event, error)
}
