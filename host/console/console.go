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

package console

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/uart"
	"github.com/ElectroBoy404NotFound/uARM/host/easyterm"
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// Values returned by the host side of the console before translation.
const (
	HostCtlC = -1
	HostNone = -2
)

// the number of characters buffered between the reader goroutine and the
// guest. input beyond this is dropped
const inputBuffer = 256

// Translate a host character value to a uart.Char. HostCtlC becomes the break
// condition. Values that do not fit in a byte cannot be sent to the guest.
func Translate(v int) uart.Char {
	switch {
	case v == HostCtlC:
		return uart.CharBreak
	case v == HostNone, v < 0, v >= 0x100:
		return uart.CharNone
	}
	return uart.Char(v)
}

// Console connects the FFUART to the host's standard input and output.
// Implements the uart.Console interface.
//
// Input is read by a goroutine and buffered. The interrupt signal (Ctrl-C) is
// delivered to the guest as the end-of-text character and the quit signal
// (Ctrl-\) as a break.
type Console struct {
	env    logger.Permission
	input  *os.File
	output io.Writer

	term     easyterm.Terminal
	terminal bool

	chars chan byte
	sigs  chan os.Signal

	// closed when the reader goroutine ends. nil if there is no reader
	done chan struct{}

	// writes to the output can come from the emulation and from Stop()
	mu sync.Mutex
}

// NewConsole is the preferred method of initialisation for the Console type.
// The input can be nil, in which case the guest never receives a character.
func NewConsole(env logger.Permission, input *os.File, output io.Writer) *Console {
	return &Console{
		env:    env,
		input:  input,
		output: output,
		chars:  make(chan byte, inputBuffer),
		sigs:   make(chan os.Signal, 1),
	}
}

// Start the reader goroutine and listen for signals. If the input is a
// terminal it is put into raw mode.
func (con *Console) Start() error {
	signal.Notify(con.sigs, syscall.SIGINT, syscall.SIGQUIT)

	if con.input == nil {
		return nil
	}

	if err := con.term.Initialise(con.input); err == nil {
		if err := con.term.RawMode(); err != nil {
			return err
		}
		con.terminal = true
	} else {
		logger.Log(con.env, "console", err)
	}

	// clear any deadline left by a previous Stop()
	_ = con.input.SetReadDeadline(time.Time{})

	done := make(chan struct{})
	con.done = done
	go func() {
		defer close(done)
		b := make([]byte, 1)
		for {
			n, err := con.input.Read(b)
			if n > 0 {
				select {
				case con.chars <- b[0]:
				default:
				}
			}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// Stop listening for signals and restore the terminal.
//
// The reader goroutine is ended by setting a read deadline on the input. If
// the input does not support deadlines, which is usual for a terminal on
// standard input, the reader stays blocked until the next read returns and
// then exits when it sees the error or the end of the input.
func (con *Console) Stop() error {
	signal.Stop(con.sigs)

	if con.done != nil {
		if err := con.input.SetReadDeadline(time.Now()); err == nil {
			<-con.done
		} else {
			logger.Logf(con.env, "console", "reader not stopped: %v", err)
		}
		con.done = nil
	}

	if con.terminal {
		return con.term.CanonicalMode()
	}
	return nil
}

// read returns the next host value without blocking
func (con *Console) read() int {
	select {
	case s := <-con.sigs:
		if s == syscall.SIGQUIT {
			return HostCtlC
		}
		return easyterm.KeyInterrupt
	default:
	}

	select {
	case b := <-con.chars:
		return int(b)
	default:
	}

	return HostNone
}

// ReadChar implements the uart.Console interface.
func (con *Console) ReadChar() uart.Char {
	return Translate(con.read())
}

// WriteChar implements the uart.Console interface.
func (con *Console) WriteChar(c uart.Char) {
	if c == uart.CharNone {
		return
	}

	con.mu.Lock()
	defer con.mu.Unlock()

	if c&^0xff != 0 {
		fmt.Fprintf(con.output, "<<~~ EC_0x%x ~~>>", int(c))
		return
	}
	_, _ = con.output.Write([]byte{byte(c)})
}
