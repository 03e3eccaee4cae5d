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
	"testing"

	"github.com/nsf/termbox-go"
)

type fakeTermbox struct {
	opened  int
	closed  int
	flushed int
	failure error // returned by flush
}

func newFakeTermbox(fake *fakeTermbox) *Termbox {
	tb := NewTermbox()
	tb.open = func() error {
		fake.opened++
		return nil
	}
	tb.clear = func(fg, bg termbox.Attribute) error {
		return nil
	}
	tb.flush = func() error {
		fake.flushed++
		return fake.failure
	}
	tb.close = func() {
		fake.closed++
	}
	return tb
}

func TestTermboxInitializeAndTerminate(t *testing.T) {
	fake := &fakeTermbox{}
	tb := newFakeTermbox(fake)
	if err := tb.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %+v", err)
	}
	if fake.opened != 1 || fake.flushed != 1 || fake.closed != 0 {
		t.Errorf("Unexpected initialize: %+v", fake)
	}
	if err := tb.Execute(); err != nil {
		t.Errorf("Execute failed: %+v", err)
	}
	if err := tb.Terminate(); err != nil {
		t.Errorf("Terminate failed: %+v", err)
	}
	if fake.closed != 1 {
		t.Errorf("termbox closed %d times", fake.closed)
	}
}

// a failed first flush must not leave termbox holding the tty
func TestTermboxInitializeFailureReleasesTerminal(t *testing.T) {
	fake := &fakeTermbox{failure: errors.New("write /dev/tty: input/output error")}
	tb := newFakeTermbox(fake)
	err := tb.Initialize()
	var terr *TerminalError
	if !errors.As(err, &terr) || terr.Op != "initialize" || !errors.Is(err, fake.failure) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if fake.closed != 1 {
		t.Errorf("termbox closed %d times after a failed initialize", fake.closed)
	}
	if err := tb.Print("~"); !errors.Is(err, ErrTerminated) {
		t.Errorf("Unexpected error after a failed initialize: %+v", err)
	}
	if err := tb.Terminate(); !errors.Is(err, ErrTerminated) {
		t.Errorf("Unexpected error from terminate: %+v", err)
	}
	if fake.closed != 1 {
		t.Errorf("termbox closed %d times", fake.closed)
	}
}

func TestTermboxOpenFailure(t *testing.T) {
	fake := &fakeTermbox{}
	tb := newFakeTermbox(fake)
	failure := errors.New("open /dev/tty: no such device or address")
	tb.open = func() error { return failure }
	if err := tb.Initialize(); !errors.Is(err, failure) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if fake.closed != 0 {
		t.Errorf("termbox closed without being opened")
	}
	if err := tb.Terminate(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Unexpected error from terminate: %+v", err)
	}
}
