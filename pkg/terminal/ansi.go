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
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	hecto "github.com/timburks/hecto/pkg/types"
)

// VT100 control sequences
const (
	sequenceClearScreen = "\x1b[2J"
	sequenceCursorHome  = "\x1b[H"
	sequenceClearLine   = "\x1b[2K"
	sequenceHideCursor  = "\x1b[?25l"
	sequenceShowCursor  = "\x1b[?25h"
	sequenceMoveCursor  = "\x1b[%d;%dH" // 1-based row, column
)

// ANSI is a terminal session that writes control sequences directly
// to the terminal device. Output accumulates in memory and reaches
// the device in a single write when Execute is called.
type ANSI struct {
	lifecycle
	reader   *bufio.Reader
	writer   io.Writer
	inputFd  int // raw mode is set on the input side
	outputFd int // size is queried on the output side
	saved    *term.State
	buffer   bytes.Buffer

	makeRaw func(fd int) (*term.State, error)
	restore func(fd int, state *term.State) error
	getSize func(fd int) (width, height int, err error)
}

// NewANSI returns a session that reads input from in and writes to out.
// Both are normally the same tty, or os.Stdin and os.Stdout.
func NewANSI(in, out *os.File) *ANSI {
	return newANSI(in, out, int(in.Fd()), int(out.Fd()))
}

func newANSI(in io.Reader, out io.Writer, inputFd, outputFd int) *ANSI {
	return &ANSI{
		reader:   bufio.NewReader(in),
		writer:   out,
		inputFd:  inputFd,
		outputFd: outputFd,
		makeRaw:  term.MakeRaw,
		restore:  term.Restore,
		getSize:  term.GetSize,
	}
}

func (a *ANSI) Initialize() error {
	if err := a.beforeInitialize(); err != nil {
		return err
	}
	saved, err := a.makeRaw(a.inputFd)
	if err != nil {
		return wrap("initialize", err)
	}
	a.saved = saved
	a.activate()
	a.buffer.Reset()
	a.buffer.WriteString(sequenceClearScreen)
	a.buffer.WriteString(sequenceCursorHome)
	if err := a.Execute(); err != nil {
		a.deactivate()
		a.restore(a.inputFd, a.saved)
		return wrap("initialize", err)
	}
	return nil
}

func (a *ANSI) Terminate() error {
	if err := a.require("terminate"); err != nil {
		return err
	}
	a.deactivate()
	return wrap("terminate", a.restore(a.inputFd, a.saved))
}

func (a *ANSI) Size() (hecto.Size, error) {
	if err := a.require("size"); err != nil {
		return hecto.Size{}, err
	}
	width, height, err := a.getSize(a.outputFd)
	if err != nil {
		return hecto.Size{}, wrap("size", err)
	}
	return checkSize(width, height)
}

func (a *ANSI) ClearScreen() error {
	return a.queue("clear screen", sequenceClearScreen)
}

func (a *ANSI) ClearLine() error {
	return a.queue("clear line", sequenceClearLine)
}

func (a *ANSI) MoveCursorTo(position hecto.Position) error {
	return a.queue("move cursor", fmt.Sprintf(sequenceMoveCursor, position.Y+1, position.X+1))
}

func (a *ANSI) HideCursor() error {
	return a.queue("hide cursor", sequenceHideCursor)
}

func (a *ANSI) ShowCursor() error {
	return a.queue("show cursor", sequenceShowCursor)
}

func (a *ANSI) Print(text string) error {
	return a.queue("print", text)
}

func (a *ANSI) queue(op, text string) error {
	if err := a.require(op); err != nil {
		return err
	}
	a.buffer.WriteString(text)
	return nil
}

func (a *ANSI) Execute() error {
	if err := a.require("execute"); err != nil {
		return err
	}
	if a.buffer.Len() == 0 {
		return nil
	}
	defer a.buffer.Reset()
	n, err := a.writer.Write(a.buffer.Bytes())
	if err == nil && n < a.buffer.Len() {
		err = io.ErrShortWrite
	}
	return wrap("execute", err)
}

func (a *ANSI) ReadEvent() (hecto.Event, error) {
	if err := a.require("read event"); err != nil {
		return hecto.Event{}, err
	}
	event, err := decodeEvent(a.reader)
	return event, wrap("read event", err)
}
