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

// Package renderer draws the rows of an empty editing surface.
// Its functions hold no state; the terminal size is queried afresh on
// every call because nothing tells us when the terminal is resized.
package renderer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	hecto "github.com/timburks/hecto/pkg/types"
	"github.com/timburks/hecto/pkg/version"
)

// EmptyRow marks a row that holds no text.
const EmptyRow = "~"

// DrawRows paints every row of the terminal: the welcome banner on the
// row a third of the way down and EmptyRow everywhere else.
// The last row gets no line break so the viewport never scrolls.
// Nothing is flushed.
func DrawRows(t hecto.Terminal) error {
	size, err := t.Size()
	if err != nil {
		return err
	}
	for row := 0; row < size.Height; row++ {
		if err := t.ClearLine(); err != nil {
			return err
		}
		if row == size.Height/3 {
			err = DrawWelcomeMessage(t, size.Width)
		} else {
			err = t.Print(EmptyRow)
		}
		if err != nil {
			return err
		}
		if row+1 < size.Height {
			if err := t.Print("\r\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawWelcomeMessage prints the banner for the current build.
func DrawWelcomeMessage(t hecto.Terminal, width int) error {
	return t.Print(Banner(version.Name, version.Version, width))
}

// Banner returns the welcome message centered in width columns,
// starting with EmptyRow and cut to at most width columns.
// When the message is wider than the terminal it is not padded at all.
func Banner(name, release string, width int) string {
	if width <= 0 {
		return ""
	}
	message := fmt.Sprintf("%s editor -- version %s", name, release)
	padding := (width - runewidth.StringWidth(message)) / 2
	spaces := max(padding-1, 0)
	banner := EmptyRow + strings.Repeat(" ", spaces) + message
	return runewidth.Truncate(banner, width, "")
}
