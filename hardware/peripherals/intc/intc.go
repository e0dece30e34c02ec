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

package intc

import (
	"fmt"
	"math/bits"
)

// Interrupt lines.
const (
	GPIO0    = 8
	GPIO1    = 9
	GPIOx    = 10
	STUART   = 20
	BTUART   = 21
	FFUART   = 22
	DMA      = 25
	OST0     = 26
	OST1     = 27
	OST2     = 28
	OST3     = 29
	RTCHz    = 30
	RTCAlarm = 31
	NumLines = 32
	NoLine   = -1
)

// Register offsets.
const (
	ICIP = 0x00
	ICMR = 0x04
	ICLR = 0x08
	ICFP = 0x0c
	ICPR = 0x10
	ICCR = 0x14
)

// Lines is the interface used by peripherals to raise and lower their
// interrupt line.
type Lines interface {
	Assert(line int)
	Deassert(line int)
}

// Controller is the PXA255 interrupt controller. Peripherals assert and
// deassert their lines and the core polls Pending() before every instruction.
type Controller struct {
	// raw state of the interrupt lines
	pending uint32

	// mask. a line is only seen by the core if its mask bit is set
	mask uint32

	// level. a set bit routes the line to FIQ, otherwise IRQ
	level uint32

	// disable idle mask. stored only, there is no idle mode
	control uint32
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (ic *Controller) String() string {
	return fmt.Sprintf("ICPR=%08x ICMR=%08x ICLR=%08x", ic.pending, ic.mask, ic.level)
}

// Assert implements the Lines interface. Lines outside the range 0 to
// NumLines-1 are ignored.
func (ic *Controller) Assert(line int) {
	if line < 0 || line >= NumLines {
		return
	}
	ic.pending |= 1 << line
}

// Deassert implements the Lines interface.
func (ic *Controller) Deassert(line int) {
	if line < 0 || line >= NumLines {
		return
	}
	ic.pending &^= 1 << line
}

// Set asserts or deasserts the line.
func (ic *Controller) Set(line int, raised bool) {
	if raised {
		ic.Assert(line)
	} else {
		ic.Deassert(line)
	}
}

func (ic *Controller) irq() uint32 {
	return ic.pending & ic.mask &^ ic.level
}

func (ic *Controller) fiq() uint32 {
	return ic.pending & ic.mask & ic.level
}

// Pending returns the state of the IRQ and FIQ inputs to the core.
func (ic *Controller) Pending() (irq bool, fiq bool) {
	return ic.irq() != 0, ic.fiq() != 0
}

// Highest returns the line that should be serviced first and whether it is
// routed to FIQ. FIQ lines come before IRQ lines and within each group the
// lowest numbered line comes first. Returns NoLine if nothing is pending.
func (ic *Controller) Highest() (int, bool) {
	if f := ic.fiq(); f != 0 {
		return bits.TrailingZeros32(f), true
	}
	if i := ic.irq(); i != 0 {
		return bits.TrailingZeros32(i), false
	}
	return NoLine, false
}

// Read implements the memory.Registers interface.
func (ic *Controller) Read(offset uint32) (uint32, bool) {
	switch offset {
	case ICIP:
		return ic.irq(), true
	case ICMR:
		return ic.mask, true
	case ICLR:
		return ic.level, true
	case ICFP:
		return ic.fiq(), true
	case ICPR:
		return ic.pending, true
	case ICCR:
		return ic.control, true
	}
	return 0, false
}

// Write implements the memory.Registers interface. The pending registers are
// read only and writes to them are ignored.
func (ic *Controller) Write(offset uint32, value uint32) bool {
	switch offset {
	case ICIP, ICFP, ICPR:
	case ICMR:
		ic.mask = value
	case ICLR:
		ic.level = value
	case ICCR:
		ic.control = value & 0x1
	default:
		return false
	}
	return true
}
