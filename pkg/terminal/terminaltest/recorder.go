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

// Package terminaltest provides a recording terminal for tests.
package terminaltest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/timburks/hecto/pkg/terminal"
	hecto "github.com/timburks/hecto/pkg/types"
)

// ErrNoEvents is returned by ReadEvent when the scripted events run out.
var ErrNoEvents = errors.New("no more scripted events")

// A Recorder is an in-memory hecto.Terminal. It records every call in
// order, keeps the text printed on each row, and replays scripted
// input events. Like the real backends it rejects calls made before
// Initialize or after Terminate.
type Recorder struct {
	Width  int
	Height int
	Events []hecto.Event     // returned in order by ReadEvent
	Fail   map[string]error // operation name -> error to return

	Calls   []string // operation names, with arguments for move cursor and print
	Rows    []string // text visible on each row
	Flushed []string // one snapshot of Rows per Execute

	state  int
	cursor hecto.Position
}

const (
	stateNew = iota
	stateActive
	stateTerminated
)

// NewRecorder returns a recorder for a width x height terminal.
func NewRecorder(width, height int, events ...hecto.Event) *Recorder {
	return &Recorder{Width: width, Height: height, Events: events}
}

func (r *Recorder) call(op string, detail string) error {
	name := op
	if detail != "" {
		name = op + " " + detail
	}
	r.Calls = append(r.Calls, name)
	switch {
	case op == "initialize" && r.state == stateActive:
		return &terminal.TerminalError{Op: op, Err: terminal.ErrAlreadyInitialized}
	case op != "initialize" && r.state == stateNew:
		return &terminal.TerminalError{Op: op, Err: terminal.ErrNotInitialized}
	case r.state == stateTerminated:
		return &terminal.TerminalError{Op: op, Err: terminal.ErrTerminated}
	}
	if err := r.Fail[op]; err != nil {
		return &terminal.TerminalError{Op: op, Err: err}
	}
	return nil
}

// Count returns how many recorded calls have exactly this name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// Only returns the recorded calls whose name is one of names, in order.
func (r *Recorder) Only(names ...string) []string {
	var calls []string
	for _, c := range r.Calls {
		for _, name := range names {
			if c == name || strings.HasPrefix(c, name+" ") {
				calls = append(calls, c)
				break
			}
		}
	}
	return calls
}

func (r *Recorder) Initialize() error {
	if err := r.call("initialize", ""); err != nil {
		return err
	}
	r.state = stateActive
	r.cursor = hecto.Position{}
	r.Rows = make([]string, r.Height)
	return nil
}

func (r *Recorder) Terminate() error {
	if err := r.call("terminate", ""); err != nil {
		return err
	}
	r.state = stateTerminated
	return nil
}

func (r *Recorder) Size() (hecto.Size, error) {
	if err := r.call("size", ""); err != nil {
		return hecto.Size{}, err
	}
	return hecto.Size{Width: r.Width, Height: r.Height}, nil
}

func (r *Recorder) ClearScreen() error {
	if err := r.call("clear screen", ""); err != nil {
		return err
	}
	r.Rows = make([]string, r.Height)
	return nil
}

func (r *Recorder) ClearLine() error {
	if err := r.call("clear line", ""); err != nil {
		return err
	}
	if r.cursor.Y < len(r.Rows) {
		r.Rows[r.cursor.Y] = ""
	}
	return nil
}

func (r *Recorder) MoveCursorTo(position hecto.Position) error {
	if err := r.call("move cursor", fmt.Sprintf("%d,%d", position.X, position.Y)); err != nil {
		return err
	}
	r.cursor = position
	return nil
}

func (r *Recorder) HideCursor() error {
	return r.call("hide cursor", "")
}

func (r *Recorder) ShowCursor() error {
	return r.call("show cursor", "")
}

// Print records the text and appends it to the current row.
// The row model is deliberately simple: text always lands at the end
// of the row, and only "\n" advances to the next row.
func (r *Recorder) Print(text string) error {
	if err := r.call("print", fmt.Sprintf("%q", text)); err != nil {
		return err
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.cursor.Y++
		}
		line = strings.TrimSuffix(line, "\r")
		for r.cursor.Y >= len(r.Rows) {
			r.Rows = append(r.Rows, "")
		}
		r.Rows[r.cursor.Y] += line
	}
	return nil
}

func (r *Recorder) Execute() error {
	if err := r.call("execute", ""); err != nil {
		return err
	}
	r.Flushed = append(r.Flushed, strings.Join(r.Rows, "\n"))
	return nil
}

func (r *Recorder) ReadEvent() (hecto.Event, error) {
	if err := r.call("read event", ""); err != nil {
		return hecto.Event{}, err
	}
	if len(r.Events) == 0 {
		return hecto.Event{}, &terminal.TerminalError{Op: "read event", Err: ErrNoEvents}
	}
	event := r.Events[0]
	r.Events = r.Events[1:]
	return event, nil
}
