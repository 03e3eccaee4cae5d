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
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	hecto "github.com/timburks/hecto/pkg/types"
)

// Termbox is a terminal session drawn with termbox-go.
// Printed text is written into termbox's back buffer starting at the
// current cursor position; Execute flushes the back buffer.
type Termbox struct {
	lifecycle
	cursor hecto.Position // write position, and where ShowCursor puts the cursor

	open  func() error
	clear func(fg, bg termbox.Attribute) error
	flush func() error
	close func()
}

// NewTermbox returns a session that takes over the controlling
// terminal when it is initialized.
func NewTermbox() *Termbox {
	return &Termbox{
		open:  openTermbox,
		clear: termbox.Clear,
		flush: termbox.Flush,
		close: termbox.Close,
	}
}

func openTermbox() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return nil
}

func (t *Termbox) Initialize() error {
	if err := t.beforeInitialize(); err != nil {
		return err
	}
	if err := t.open(); err != nil {
		return wrap("initialize", err)
	}
	t.activate()
	t.cursor = hecto.Position{}
	err := t.clear(termbox.ColorDefault, termbox.ColorDefault)
	if err == nil {
		err = t.flush()
	}
	if err != nil {
		// termbox already owns the tty; give it back
		t.deactivate()
		t.close()
		return wrap("initialize", err)
	}
	return nil
}

func (t *Termbox) Terminate() error {
	if err := t.require("terminate"); err != nil {
		return err
	}
	t.deactivate()
	t.close()
	return nil
}

func (t *Termbox) Size() (hecto.Size, error) {
	if err := t.require("size"); err != nil {
		return hecto.Size{}, err
	}
	return checkSize(termbox.Size())
}

func (t *Termbox) ClearScreen() error {
	if err := t.require("clear screen"); err != nil {
		return err
	}
	return wrap("clear screen", t.clear(termbox.ColorDefault, termbox.ColorDefault))
}

func (t *Termbox) ClearLine() error {
	if err := t.require("clear line"); err != nil {
		return err
	}
	width, _ := termbox.Size()
	for x := 0; x < width; x++ {
		termbox.SetCell(x, t.cursor.Y, ' ', termbox.ColorDefault, termbox.ColorDefault)
	}
	return nil
}

func (t *Termbox) MoveCursorTo(position hecto.Position) error {
	if err := t.require("move cursor"); err != nil {
		return err
	}
	t.cursor = position
	return nil
}

func (t *Termbox) HideCursor() error {
	if err := t.require("hide cursor"); err != nil {
		return err
	}
	termbox.HideCursor()
	return nil
}

func (t *Termbox) ShowCursor() error {
	if err := t.require("show cursor"); err != nil {
		return err
	}
	termbox.SetCursor(t.cursor.X, t.cursor.Y)
	return nil
}

func (t *Termbox) Print(text string) error {
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
			// cells outside the screen are silently dropped by termbox
			termbox.SetCell(t.cursor.X, t.cursor.Y, ch, termbox.ColorDefault, termbox.ColorDefault)
			t.cursor.X += runewidth.RuneWidth(ch)
		}
	}
	return nil
}

func (t *Termbox) Execute() error {
	if err := t.require("execute"); err != nil {
		return err
	}
	return wrap("execute", t.flush())
}

func (t *Termbox) ReadEvent() (hecto.Event, error) {
	if err := t.require("read event"); err != nil {
		return hecto.Event{}, err
	}
	event := termbox.PollEvent()
	if event.Type == termbox.EventError {
		return hecto.Event{}, wrap("read event", event.Err)
	}
	return termboxEvent(event), nil
}

func termboxEvent(event termbox.Event) hecto.Event {
	switch event.Type {
	case termbox.EventKey:
	case termbox.EventResize:
		return hecto.Event{Type: hecto.EventResize}
	default:
		return hecto.Event{Type: hecto.EventOther}
	}
	var mod hecto.Modifier
	if event.Mod&termbox.ModAlt != 0 {
		mod |= hecto.ModAlt
	}
	if event.Ch != 0 {
		return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: event.Ch, Mod: mod}
	}
	key := hecto.KeyUnsupported
	switch event.Key {
	case termbox.KeyArrowDown:
		key = hecto.KeyArrowDown
	case termbox.KeyArrowLeft:
		key = hecto.KeyArrowLeft
	case termbox.KeyArrowRight:
		key = hecto.KeyArrowRight
	case termbox.KeyArrowUp:
		key = hecto.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		key = hecto.KeyBackspace
	case termbox.KeyDelete:
		key = hecto.KeyDelete
	case termbox.KeyEnd:
		key = hecto.KeyEnd
	case termbox.KeyEnter:
		key = hecto.KeyEnter
	case termbox.KeyEsc:
		key = hecto.KeyEsc
	case termbox.KeyHome:
		key = hecto.KeyHome
	case termbox.KeyPgdn:
		key = hecto.KeyPgdn
	case termbox.KeyPgup:
		key = hecto.KeyPgup
	case termbox.KeyTab:
		key = hecto.KeyTab
	case termbox.KeySpace:
		return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: ' ', Mod: mod}
	default:
		if event.Key >= termbox.KeyCtrlA && event.Key <= termbox.KeyCtrlZ {
			ch := 'a' + rune(event.Key-termbox.KeyCtrlA)
			return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: ch, Mod: mod | hecto.ModCtrl}
		}
	}
	return hecto.Event{Type: hecto.EventKey, Key: key, Mod: mod}
}
