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
	"bufio"
	"strings"
	"testing"

	"github.com/nsf/termbox-go"

	hecto "github.com/timburks/hecto/pkg/types"
)

func key(k hecto.Key) hecto.Event {
	return hecto.Event{Type: hecto.EventKey, Key: k}
}

func char(ch rune, mod hecto.Modifier) hecto.Event {
	return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: ch, Mod: mod}
}

func TestDecodeEvent(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected []hecto.Event
	}{
		{"q", []hecto.Event{char('q', hecto.ModNone)}},
		{"\x11", []hecto.Event{char('q', hecto.ModCtrl)}},
		{"\x01\x1a", []hecto.Event{char('a', hecto.ModCtrl), char('z', hecto.ModCtrl)}},
		{"é世", []hecto.Event{char('é', hecto.ModNone), char('世', hecto.ModNone)}},
		{"\r\n\t", []hecto.Event{key(hecto.KeyEnter), key(hecto.KeyEnter), key(hecto.KeyTab)}},
		{"\x7f\x08", []hecto.Event{key(hecto.KeyBackspace), key(hecto.KeyBackspace)}},
		{"\x1b", []hecto.Event{key(hecto.KeyEsc)}},
		{"\x1bq", []hecto.Event{char('q', hecto.ModAlt)}},
		{"\x1b[A\x1b[B\x1b[C\x1b[D", []hecto.Event{
			key(hecto.KeyArrowUp), key(hecto.KeyArrowDown), key(hecto.KeyArrowRight), key(hecto.KeyArrowLeft),
		}},
		{"\x1bOA\x1bOH\x1bOF", []hecto.Event{key(hecto.KeyArrowUp), key(hecto.KeyHome), key(hecto.KeyEnd)}},
		{"\x1b[1~\x1b[4~\x1b[3~\x1b[5~\x1b[6~\x1b[7~\x1b[8~", []hecto.Event{
			key(hecto.KeyHome), key(hecto.KeyEnd), key(hecto.KeyDelete),
			key(hecto.KeyPgup), key(hecto.KeyPgdn), key(hecto.KeyHome), key(hecto.KeyEnd),
		}},
		{"\x1b[1;5A", []hecto.Event{key(hecto.KeyArrowUp)}},
		{"\x1b[99~x", []hecto.Event{key(hecto.KeyUnsupported), char('x', hecto.ModNone)}},
		{"\x00\x1c", []hecto.Event{key(hecto.KeyUnsupported), key(hecto.KeyUnsupported)}},
	} {
		r := bufio.NewReader(strings.NewReader(tc.input))
		for i, expected := range tc.expected {
			event, err := decodeEvent(r)
			if err != nil {
				t.Errorf("Decoding %q failed at event %d: %+v", tc.input, i, err)
				break
			}
			if event != expected {
				t.Errorf("Unexpected event %d for %q: %+v, expected %+v", i, tc.input, event, expected)
			}
		}
		if _, err := decodeEvent(r); err == nil {
			t.Errorf("Unconsumed input after decoding %q", tc.input)
		}
	}
}

func TestTermboxEvent(t *testing.T) {
	for _, tc := range []struct {
		event    termbox.Event
		expected hecto.Event
	}{
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlQ}, char('q', hecto.ModCtrl)},
		{termbox.Event{Type: termbox.EventKey, Ch: 'q'}, char('q', hecto.ModNone)},
		{termbox.Event{Type: termbox.EventKey, Ch: 'q', Mod: termbox.ModAlt}, char('q', hecto.ModAlt)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlA}, char('a', hecto.ModCtrl)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, char(' ', hecto.ModNone)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, key(hecto.KeyArrowUp)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, key(hecto.KeyEnter)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyTab}, key(hecto.KeyTab)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace2}, key(hecto.KeyBackspace)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, key(hecto.KeyEsc)},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyF1}, key(hecto.KeyUnsupported)},
		{termbox.Event{Type: termbox.EventResize}, hecto.Event{Type: hecto.EventResize}},
		{termbox.Event{Type: termbox.EventMouse}, hecto.Event{Type: hecto.EventOther}},
	} {
		if event := termboxEvent(tc.event); event != tc.expected {
			t.Errorf("Unexpected conversion of %+v: %+v", tc.event, event)
		}
	}
}

func TestTermboxRejectsCallsOutsideSession(t *testing.T) {
	tb := NewTermbox()
	if err := tb.Print("~"); err == nil {
		t.Errorf("Print succeeded before initialize")
	}
	if _, err := tb.ReadEvent(); err == nil {
		t.Errorf("ReadEvent succeeded before initialize")
	}
	if err := tb.Terminate(); err == nil {
		t.Errorf("Terminate succeeded before initialize")
	}
}
