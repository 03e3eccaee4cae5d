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

package terminal

import (
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	hecto "github.com/timburks/hecto/pkg/types"
)

var errScreenClosed = errors.New("screen closed")

// Tcell is a terminal session drawn with tcell.
type Tcell struct {
	lifecycle
	screen tcell.Screen
	cursor hecto.Position
}

// NewTcell returns a session that opens the controlling terminal
// when it is initialized.
func NewTcell() *Tcell {
	return &Tcell{}
}

// NewTcellWithScreen returns a session that draws on screen.
// The screen must not have been initialized.
func NewTcellWithScreen(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen}
}

func (t *Tcell) Initialize() error {
	if err := t.beforeInitialize(); err != nil {
		return err
	}
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return wrap("initialize", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return wrap("initialize", err)
	}
	t.activate()
	t.cursor = hecto.Position{}
	t.screen.Clear()
	t.screen.Show()
	return nil
}

func (t *Tcell) Terminate() error {
	if err := t.require("terminate"); err != nil {
		return err
	}
	t.deactivate()
	t.screen.Fini()
	return nil
}

func (t *Tcell) Size() (hecto.Size, error) {
	if err := t.require("size"); err != nil {
		return hecto.Size{}, err
	}
	return checkSize(t.screen.Size())
}

func (t *Tcell) ClearScreen() error {
	if err := t.require("clear screen"); err != nil {
		return err
	}
	t.screen.Clear()
	return nil
}

func (t *Tcell) ClearLine() error {
	if err := t.require("clear line"); err != nil {
		return err
	}
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, t.cursor.Y, ' ', nil, tcell.StyleDefault)
	}
	return nil
}

func (t *Tcell) MoveCursorTo(position hecto.Position) error {
	if err := t.require("move cursor"); err != nil {
		return err
	}
	t.cursor = position
	return nil
}

func (t *Tcell) HideCursor() error {
	if err := t.require("hide cursor"); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Tcell) ShowCursor() error {
	if err := t.require("show cursor"); err != nil {
		return err
	}
	t.screen.ShowCursor(t.cursor.X, t.cursor.Y)
	return nil
}

func (t *Tcell) Print(text string) error {
	if err := t.require("print"); err != nil {
		return err
	}
	for _, ch := range text {
		switch ch {
		case '\r':
			t.cursor.X = 0
		case '\n':
			t.cursor.Y++
		default:
			t.screen.SetContent(t.cursor.X, t.cursor.Y, ch, nil, tcell.StyleDefault)
			t.cursor.X += runewidth.RuneWidth(ch)
		}
	}
	return nil
}

func (t *Tcell) Execute() error {
	if err := t.require("execute"); err != nil {
		return err
	}
	t.screen.Show()
	return nil
}

func (t *Tcell) ReadEvent() (hecto.Event, error) {
	if err := t.require("read event"); err != nil {
		return hecto.Event{}, err
	}
	switch event := t.screen.PollEvent().(type) {
	case nil:
		return hecto.Event{}, wrap("read event", errScreenClosed)
	case *tcell.EventError:
		return hecto.Event{}, wrap("read event", event)
	case *tcell.EventKey:
		return tcellKey(event), nil
	case *tcell.EventResize:
		return hecto.Event{Type: hecto.EventResize}, nil
	default:
		return hecto.Event{Type: hecto.EventOther}, nil
	}
}

func tcellKey(event *tcell.EventKey) hecto.Event {
	var mod hecto.Modifier
	if event.Modifiers()&tcell.ModCtrl != 0 {
		mod |= hecto.ModCtrl
	}
	if event.Modifiers()&tcell.ModAlt != 0 {
		mod |= hecto.ModAlt
	}
	if event.Modifiers()&tcell.ModShift != 0 {
		mod |= hecto.ModShift
	}
	key := hecto.KeyUnsupported
	switch event.Key() {
	case tcell.KeyRune:
		ch := event.Rune()
		if mod&hecto.ModCtrl != 0 {
			ch = unicode.ToLower(ch)
		}
		return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: ch, Mod: mod}
	case tcell.KeyUp:
		key = hecto.KeyArrowUp
	case tcell.KeyDown:
		key = hecto.KeyArrowDown
	case tcell.KeyLeft:
		key = hecto.KeyArrowLeft
	case tcell.KeyRight:
		key = hecto.KeyArrowRight
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key = hecto.KeyBackspace
	case tcell.KeyDelete:
		key = hecto.KeyDelete
	case tcell.KeyEnd:
		key = hecto.KeyEnd
	case tcell.KeyEnter:
		key = hecto.KeyEnter
	case tcell.KeyEscape:
		key = hecto.KeyEsc
	case tcell.KeyHome:
		key = hecto.KeyHome
	case tcell.KeyPgDn:
		key = hecto.KeyPgdn
	case tcell.KeyPgUp:
		key = hecto.KeyPgup
	case tcell.KeyTab:
		key = hecto.KeyTab
	default:
		if event.Key() >= tcell.KeyCtrlA && event.Key() <= tcell.KeyCtrlZ {
			ch := 'a' + rune(event.Key()-tcell.KeyCtrlA)
			return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: ch, Mod: mod | hecto.ModCtrl}
		}
	}
	return hecto.Event{Type: hecto.EventKey, Key: key, Mod: mod}
}
