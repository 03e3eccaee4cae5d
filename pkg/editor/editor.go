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

package editor

import (
	"log"

	"github.com/timburks/hecto/pkg/renderer"
	hecto "github.com/timburks/hecto/pkg/types"
)

// Goodbye is printed on the final screen after the user quits.
const Goodbye = "Goodbye.\r\n"

// The Editor drives a terminal until the user quits.
type Editor struct {
	terminal   hecto.Terminal
	shouldQuit bool // set once by Ctrl+Q, never cleared
}

// NewEditor returns an editor that will drive t. The terminal must not
// have been initialized yet; Run does that.
func NewEditor(t hecto.Terminal) *Editor {
	return &Editor{terminal: t}
}

// ShouldQuit reports whether the user has asked to quit.
func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

// Run initializes the terminal, runs the event loop and terminates the
// terminal again. The terminal is restored whenever initialization
// succeeded, including when the loop fails or panics. A loop error is
// returned in preference to an error from terminating.
func (e *Editor) Run() (err error) {
	if err := e.terminal.Initialize(); err != nil {
		log.Printf("unable to initialize terminal: %+v", err)
		return err
	}
	defer func() {
		if terr := e.terminal.Terminate(); terr != nil {
			log.Printf("unable to restore terminal: %+v", terr)
			if err == nil {
				err = terr
			}
		}
	}()
	if err = e.repl(); err != nil {
		log.Printf("event loop failed: %+v", err)
	}
	return err
}

func (e *Editor) repl() error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		if e.shouldQuit {
			return nil
		}
		event, err := e.terminal.ReadEvent()
		if err != nil {
			return err
		}
		e.EvaluateEvent(event)
	}
}

// EvaluateEvent handles one input event. Only Ctrl+Q does anything.
func (e *Editor) EvaluateEvent(event hecto.Event) {
	if isQuit(event) && !e.shouldQuit {
		log.Printf("quit requested")
		e.shouldQuit = true
	}
}

func isQuit(event hecto.Event) bool {
	return event.Type == hecto.EventKey &&
		event.Key == hecto.KeyRune &&
		event.Ch == 'q' &&
		event.Mod == hecto.ModCtrl
}

// RefreshScreen redraws the whole screen and flushes it.
// The cursor is hidden while drawing.
func (e *Editor) RefreshScreen() error {
	t := e.terminal
	if err := t.HideCursor(); err != nil {
		return err
	}
	if e.shouldQuit {
		if err := t.ClearScreen(); err != nil {
			return err
		}
		if err := t.Print(Goodbye); err != nil {
			return err
		}
	} else {
		if err := renderer.DrawRows(t); err != nil {
			return err
		}
		if err := t.MoveCursorTo(hecto.Position{X: 0, Y: 0}); err != nil {
			return err
		}
	}
	if err := t.ShowCursor(); err != nil {
		return err
	}
	return t.Execute()
}
