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
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/hecto/pkg/editor"
	"github.com/timburks/hecto/pkg/terminal"
	"github.com/timburks/hecto/pkg/version"
)

// newTerminal builds the terminal session for a backend name.
var newTerminal = terminal.New

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var backend string
	logname := filepath.Join(os.Getenv("HOME"), ".hectolog")

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--backend": // termbox, tcell or ansi
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "No backend specified for --backend option")
				return 2
			}
			backend = args[i]
		case "--log":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "No file specified for --log option")
				return 2
			}
			logname = args[i]
		case "--version":
			fmt.Println(version.String())
			return 0
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument %q\n", args[i])
			return 2
		}
	}

	// The screen belongs to the editor, so log to a file.
	f, err := os.OpenFile(logname, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()
	log.SetOutput(f)

	t, err := newTerminal(backend)
	if err != nil {
		log.Printf("%+v", err)
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log.Printf("starting %s", version.String())

	// Run returns only after the terminal has been restored.
	if err := editor.NewEditor(t).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log.Printf("exiting")
	return 0
}
