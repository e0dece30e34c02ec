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

package uart

import (
	"fmt"

	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
)

// Register offsets.
const (
	RBR = 0x00 // THR on write. DLL when LCR.DLAB is set
	IER = 0x04 // DLH when LCR.DLAB is set
	IIR = 0x08 // FCR on write
	LCR = 0x0c
	MCR = 0x10
	LSR = 0x14
	MSR = 0x18
	SPR = 0x1c
	ISR = 0x20

	THR = RBR
	DLL = RBR
	DLH = IER
	FCR = IIR
)

// IER bits.
const (
	IerRAVIE = uint32(1 << 0)
	IerTIE   = uint32(1 << 1)
	IerRLSE  = uint32(1 << 2)
	IerUUE   = uint32(1 << 6)
)

// LSR bits.
const (
	LsrDR   = uint32(1 << 0)
	LsrOE   = uint32(1 << 1)
	LsrBI   = uint32(1 << 4)
	LsrTDRQ = uint32(1 << 5)
	LsrTEMT = uint32(1 << 6)
)

// IIR values. The FIFO enabled bits are added separately.
const (
	IirNone       = uint32(0x01)
	IirLineStatus = uint32(0x06)
	IirReceive    = uint32(0x04)
	IirTransmit   = uint32(0x02)
	iirFIFOs      = uint32(0xc0)
)

const (
	lcrDLAB     = uint32(1 << 7)
	mcrLoopback = uint32(1 << 4)
	fcrEnable   = uint32(1 << 0)
	fcrResetRX  = uint32(1 << 1)
)

// FIFOSize is the depth of the receive FIFO.
const FIFOSize = 64

// a received character. break is held in the FIFO alongside data so that it
// is reported when it reaches the head of the FIFO
type entry struct {
	data uint8
	brk  bool
}

// UART is a 16550 style serial port. Received characters are polled from the
// host console by Process() and written characters are passed to the host
// console immediately.
type UART struct {
	name    string
	line    int
	lines   intc.Lines
	console Console

	rx     [FIFOSize]entry
	rxHead int
	rxLen  int

	ier     uint32
	lcr     uint32
	mcr     uint32
	spr     uint32
	isr     uint32
	fcr     uint32
	divisor uint32
	overrun bool

	// transmit holding register empty interrupt. set when THR becomes empty
	// and cleared when the condition is reported by IIR
	txPending bool
}

// NewUART is the preferred method of initialisation for the UART type. The
// console can be nil, in which case the UART never receives and transmitted
// characters are discarded.
func NewUART(name string, line int, lines intc.Lines, console Console) *UART {
	return &UART{
		name:    name,
		line:    line,
		lines:   lines,
		console: console,
	}
}

func (u *UART) String() string {
	return fmt.Sprintf("%s: IER=%02x LCR=%02x LSR=%02x rx=%d", u.name, u.ier, u.lcr, u.lsr(), u.rxLen)
}

// Process polls the host console for a received character.
func (u *UART) Process() {
	if u.console == nil {
		return
	}

	switch c := u.console.ReadChar(); c {
	case CharNone:
		return
	case CharBreak:
		u.push(entry{brk: true})
	default:
		u.push(entry{data: uint8(c)})
	}

	u.update()
}

func (u *UART) push(e entry) {
	if u.rxLen == FIFOSize {
		u.overrun = true
		return
	}
	u.rx[(u.rxHead+u.rxLen)%FIFOSize] = e
	u.rxLen++
}

func (u *UART) pop() entry {
	if u.rxLen == 0 {
		return entry{}
	}
	e := u.rx[u.rxHead]
	u.rxHead = (u.rxHead + 1) % FIFOSize
	u.rxLen--
	return e
}

func (u *UART) lsr() uint32 {
	v := LsrTDRQ | LsrTEMT
	if u.rxLen > 0 {
		v |= LsrDR
		if u.rx[u.rxHead].brk {
			v |= LsrBI
		}
	}
	if u.overrun {
		v |= LsrOE
	}
	return v
}

// iir returns the highest priority pending interrupt
func (u *UART) iir() uint32 {
	lsr := u.lsr()
	switch {
	case u.ier&IerRLSE != 0 && lsr&(LsrOE|LsrBI) != 0:
		return IirLineStatus
	case u.ier&IerRAVIE != 0 && lsr&LsrDR != 0:
		return IirReceive
	case u.ier&IerTIE != 0 && u.txPending:
		return IirTransmit
	}
	return IirNone
}

func (u *UART) update() {
	if u.ier&IerUUE != 0 && u.iir() != IirNone {
		u.lines.Assert(u.line)
	} else {
		u.lines.Deassert(u.line)
	}
}

func (u *UART) transmit(v uint32) {
	c := Char(v & 0xff)
	if u.mcr&mcrLoopback != 0 {
		u.push(entry{data: uint8(c)})
	} else if u.console != nil {
		u.console.WriteChar(c)
	}
	u.txPending = true
}

// Read implements the memory.Registers interface.
func (u *UART) Read(offset uint32) (uint32, bool) {
	var v uint32

	switch offset {
	case RBR:
		if u.lcr&lcrDLAB != 0 {
			v = u.divisor & 0xff
		} else {
			v = uint32(u.pop().data)
		}
	case IER:
		if u.lcr&lcrDLAB != 0 {
			v = (u.divisor >> 8) & 0xff
		} else {
			v = u.ier
		}
	case IIR:
		v = u.iir()
		if v == IirTransmit {
			u.txPending = false
		}
		if u.fcr&fcrEnable != 0 {
			v |= iirFIFOs
		}
	case LCR:
		v = u.lcr
	case MCR:
		v = u.mcr
	case LSR:
		v = u.lsr()
		u.overrun = false
	case MSR:
		// CTS, DSR and DCD always asserted
		v = 0xb0
	case SPR:
		v = u.spr
	case ISR:
		v = u.isr
	default:
		return 0, false
	}

	u.update()
	return v, true
}

// Write implements the memory.Registers interface.
func (u *UART) Write(offset uint32, value uint32) bool {
	switch offset {
	case THR:
		if u.lcr&lcrDLAB != 0 {
			u.divisor = (u.divisor & 0xff00) | (value & 0xff)
		} else {
			u.transmit(value)
		}
	case IER:
		if u.lcr&lcrDLAB != 0 {
			u.divisor = (u.divisor & 0x00ff) | (value&0xff)<<8
		} else {
			// enabling the transmit interrupt reports the empty THR
			if value&IerTIE != 0 && u.ier&IerTIE == 0 {
				u.txPending = true
			}
			u.ier = value & 0xff
		}
	case FCR:
		u.fcr = value & 0xc9
		if value&fcrResetRX != 0 {
			u.rxHead = 0
			u.rxLen = 0
		}
	case LCR:
		u.lcr = value & 0xff
	case MCR:
		u.mcr = value & 0x1f
	case LSR, MSR:
		// read only
	case SPR:
		u.spr = value & 0xff
	case ISR:
		u.isr = value & 0x1f
	default:
		return false
	}

	u.update()
	return true
}
