// This file is part of Cartimport.
//
// Cartimport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cartimport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cartimport.  If not, see <https://www.gnu.org/licenses/>.

// Package prompt asks the user what to do with cartridges that the
// compatibility gate can not support. The Decide() function of the Terminal
// type satisfies the compatibility.Decider type.
//
// When the input is a terminal the answer is a single key press, read with
// the terminal in cbreak mode. Otherwise the answer is read a line at a
// time, which is useful when answers are piped in from a script.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/cloverkit/cartimport/compatibility"
	"github.com/mattn/go-isatty"
)

type styles struct {
	question lipgloss.Style
	file     lipgloss.Style
	keys     lipgloss.Style
}

// Terminal is used to ask the user questions.
type Terminal struct {
	crit sync.Mutex

	output io.Writer
	reader *bufio.Reader

	// file descriptor of input. only valid if tty is true
	fd  uintptr
	tty bool

	styles styles
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. Single key answers are only possible if input is an *os.File
// connected to a terminal.
func NewTerminal(input io.Reader, output io.Writer) *Terminal {
	r := lipgloss.NewRenderer(output)

	pt := &Terminal{
		output: output,
		reader: bufio.NewReader(input),
		styles: styles{
			question: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
			file:     r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
			keys:     r.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		},
	}

	if f, ok := input.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		pt.fd = f.Fd()
		pt.tty = true
	}

	return pt
}

// Decide implements the compatibility.Decider type. End of input, or any
// failure to read the input, is taken to mean Reject.
func (pt *Terminal) Decide(v compatibility.Verdict, fileNameHint string) compatibility.Decision {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	for {
		fmt.Fprintf(pt.output, "%s %s %s ",
			pt.styles.file.Render(fileNameHint+":"),
			pt.styles.question.Render(fmt.Sprintf("%s. Import anyway?", v)),
			pt.styles.keys.Render("(y)es, (a)ll, (n)o"))

		k, err := pt.readKey()
		if err != nil {
			fmt.Fprintln(pt.output)
			return compatibility.Reject
		}

		switch k {
		case 'y':
			fmt.Fprintln(pt.output, "yes")
			return compatibility.Allow
		case 'a':
			fmt.Fprintln(pt.output, "all")
			return compatibility.AllowAllFutureUnsupported
		case 'n':
			fmt.Fprintln(pt.output, "no")
			return compatibility.Reject
		}

		fmt.Fprintln(pt.output)
	}
}

// readKey returns the answer in lower case. A zero rune is returned for an
// empty line.
func (pt *Terminal) readKey() (rune, error) {
	if pt.tty {
		restore, err := cbreakMode(pt.fd)
		if err == nil {
			defer restore()
			b, err := pt.reader.ReadByte()
			if err != nil {
				return 0, err
			}
			return toLower(rune(b)), nil
		}
	}

	s, err := pt.reader.ReadString('\n')
	s = strings.TrimSpace(s)
	if err != nil && s == "" {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return toLower([]rune(s)[0]), nil
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
