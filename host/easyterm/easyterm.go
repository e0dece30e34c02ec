// This file is part of uARM.
//
// uARM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uARM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uARM.  If not, see <https://www.gnu.org/licenses/>.

package easyterm

import (
	"os"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Patterns for terminal errors.
const (
	NotATerminal = "easyterm: %s is not a terminal"
	TermiosError = "easyterm: %v"
)

// Terminal is a wrapper for the termios attributes of an input terminal.
// The attributes in place when Initialise() was called are restored by
// CanonicalMode().
type Terminal struct {
	input *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	raw bool
}

// Initialise the Terminal for the input file. Fails if the input file is not
// a terminal.
func (pt *Terminal) Initialise(input *os.File) error {
	if input == nil || !term.IsTerminal(int(input.Fd())) {
		name := "input"
		if input != nil {
			name = input.Name()
		}
		return curated.Errorf(NotATerminal, name)
	}

	pt.input = input

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(TermiosError, err)
	}

	// raw input but output processing is left alone so that newlines written
	// by the guest still return the carriage
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)
	pt.rawAttr.Oflag = pt.canAttr.Oflag

	// signals are still generated so that the console can see interrupt and
	// quit
	pt.rawAttr.Lflag |= unix.ISIG

	return nil
}

// RawMode puts the terminal into raw mode.
func (pt *Terminal) RawMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	pt.raw = true
	return nil
}

// CanonicalMode puts the terminal back into the mode it was in when
// Initialise() was called.
func (pt *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	pt.raw = false
	return nil
}

// IsRaw returns true if the terminal is in raw mode.
func (pt *Terminal) IsRaw() bool {
	return pt.raw
}

// Flush discards any unread input.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	return nil
}
