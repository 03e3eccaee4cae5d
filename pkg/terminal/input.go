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

	hecto "github.com/timburks/hecto/pkg/types"
)

const (
	byteEscape    = 0x1b
	byteDelete    = 0x7f
	byteBackspace = 0x08
	byteCtrlA     = 0x01
	byteCtrlZ     = 0x1a
)

func keyEvent(key hecto.Key) hecto.Event {
	return hecto.Event{Type: hecto.EventKey, Key: key}
}

func runeEvent(ch rune, mod hecto.Modifier) hecto.Event {
	return hecto.Event{Type: hecto.EventKey, Key: hecto.KeyRune, Ch: ch, Mod: mod}
}

// decodeEvent reads one key from a raw-mode byte stream.
// It blocks until at least one byte is available.
func decodeEvent(r *bufio.Reader) (hecto.Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return hecto.Event{}, err
	}
	switch {
	case b == byteEscape:
		return decodeEscape(r)
	case b == '\r' || b == '\n':
		return keyEvent(hecto.KeyEnter), nil
	case b == '\t':
		return keyEvent(hecto.KeyTab), nil
	case b == byteDelete || b == byteBackspace:
		return keyEvent(hecto.KeyBackspace), nil
	case b >= byteCtrlA && b <= byteCtrlZ:
		return runeEvent(rune('a'+b-byteCtrlA), hecto.ModCtrl), nil
	case b < ' ':
		return keyEvent(hecto.KeyUnsupported), nil
	}
	if err := r.UnreadByte(); err != nil {
		return hecto.Event{}, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return hecto.Event{}, err
	}
	return runeEvent(ch, hecto.ModNone), nil
}

// decodeEscape handles the bytes following ESC. A lone ESC (nothing
// else already buffered) is the escape key; ESC followed by a printable
// rune is that rune with Alt.
func decodeEscape(r *bufio.Reader) (hecto.Event, error) {
	if r.Buffered() == 0 {
		return keyEvent(hecto.KeyEsc), nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return hecto.Event{}, err
	}
	if b != '[' && b != 'O' {
		if b < ' ' || b == byteDelete {
			return keyEvent(hecto.KeyUnsupported), nil
		}
		if err := r.UnreadByte(); err != nil {
			return hecto.Event{}, err
		}
		ch, _, err := r.ReadRune()
		if err != nil {
			return hecto.Event{}, err
		}
		return runeEvent(ch, hecto.ModAlt), nil
	}
	// CSI or SS3: optional numeric parameters, then a final byte.
	var parameter []byte
	for {
		if r.Buffered() == 0 {
			return keyEvent(hecto.KeyUnsupported), nil
		}
		c, err := r.ReadByte()
		if err != nil {
			return hecto.Event{}, err
		}
		if (c >= '0' && c <= '9') || c == ';' {
			parameter = append(parameter, c)
			continue
		}
		return keyEvent(csiKey(c, string(parameter))), nil
	}
}

func csiKey(final byte, parameter string) hecto.Key {
	switch final {
	case 'A':
		return hecto.KeyArrowUp
	case 'B':
		return hecto.KeyArrowDown
	case 'C':
		return hecto.KeyArrowRight
	case 'D':
		return hecto.KeyArrowLeft
	case 'H':
		return hecto.KeyHome
	case 'F':
		return hecto.KeyEnd
	case '~':
		switch parameter {
		case "1", "7":
			return hecto.KeyHome
		case "4", "8":
			return hecto.KeyEnd
		case "3":
			return hecto.KeyDelete
		case "5":
			return hecto.KeyPgup
		case "6":
			return hecto.KeyPgdn
		}
	}
	return hecto.KeyUnsupported
}
