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
	"fmt"
	"os"

	hecto "github.com/timburks/hecto/pkg/types"
)

var (
	ErrNotInitialized     = errors.New("terminal is not initialized")
	ErrAlreadyInitialized = errors.New("terminal is already initialized")
	ErrTerminated         = errors.New("terminal has been terminated")
	ErrUnknownSize        = errors.New("terminal size is unknown")
)

// A TerminalError reports a failure of the underlying terminal device.
type TerminalError struct {
	Op  string // operation that failed, e.g. "initialize" or "execute"
	Err error
}

func (e *TerminalError) Error() string {
	return "terminal " + e.Op + ": " + e.Err.Error()
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var terr *TerminalError
	if errors.As(err, &terr) {
		return err
	}
	return &TerminalError{Op: op, Err: err}
}

const (
	stateNew = iota
	stateActive
	stateTerminated
)

// lifecycle rejects operations issued outside Initialize...Terminate.
type lifecycle struct {
	state int
}

func (l *lifecycle) beforeInitialize() error {
	switch l.state {
	case stateActive:
		return wrap("initialize", ErrAlreadyInitialized)
	case stateTerminated:
		return wrap("initialize", ErrTerminated)
	}
	return nil
}

func (l *lifecycle) require(op string) error {
	switch l.state {
	case stateNew:
		return wrap(op, ErrNotInitialized)
	case stateTerminated:
		return wrap(op, ErrTerminated)
	}
	return nil
}

func (l *lifecycle) activate() {
	l.state = stateActive
}

func (l *lifecycle) deactivate() {
	l.state = stateTerminated
}

// Backends lists the names accepted by New.
var Backends = []string{"termbox", "tcell", "ansi"}

// New returns an uninitialized terminal for the named backend.
// An empty name selects termbox.
func New(backend string) (hecto.Terminal, error) {
	switch backend {
	case "", "termbox":
		return NewTermbox(), nil
	case "tcell":
		return NewTcell(), nil
	case "ansi":
		return NewANSI(os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend %q (choose one of %v)", backend, Backends)
	}
}

func checkSize(width, height int) (hecto.Size, error) {
	if width <= 0 || height <= 0 {
		return hecto.Size{}, wrap("size", fmt.Errorf("%w: %dx%d", ErrUnknownSize, width, height))
	}
	return hecto.Size{Width: width, Height: height}, nil
}
