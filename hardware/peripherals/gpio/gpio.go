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

package gpio

import (
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
)

// Register offsets for bank 0. Banks 1 and 2 follow at +4 and +8.
const (
	GPLR = 0x00
	GPDR = 0x0c
	GPSR = 0x18
	GPCR = 0x24
	GRER = 0x30
	GFER = 0x3c
	GEDR = 0x48
	GAFR = 0x54 // six registers, two per bank
)

// NumBanks is the number of 32 line banks.
const NumBanks = 3

// NumPins is the number of GPIO lines.
const NumPins = NumBanks * 32

type bank struct {
	output  uint32
	input   uint32
	dir     uint32
	rising  uint32
	falling uint32
	edge    uint32
}

// level of every pin in the bank. outputs drive the pin, inputs follow the
// external level
func (b *bank) level() uint32 {
	return (b.output & b.dir) | (b.input &^ b.dir)
}

// GPIO is the general purpose I/O controller.
type GPIO struct {
	lines intc.Lines
	banks [NumBanks]bank
	altFn [NumBanks * 2]uint32
}

// NewGPIO is the preferred method of initialisation for the GPIO type.
func NewGPIO(lines intc.Lines) *GPIO {
	return &GPIO{
		lines: lines,
	}
}

// change records edges for a change of level in the bank
func (g *GPIO) change(b *bank, before uint32) {
	after := b.level()
	rose := after &^ before
	fell := before &^ after
	b.edge |= (rose & b.rising) | (fell & b.falling)
	g.update()
}

func (g *GPIO) update() {
	e0 := g.banks[0].edge
	g.set(intc.GPIO0, e0&0x1 != 0)
	g.set(intc.GPIO1, e0&0x2 != 0)
	g.set(intc.GPIOx, e0&^0x3 != 0 || g.banks[1].edge != 0 || g.banks[2].edge != 0)
}

func (g *GPIO) set(line int, raised bool) {
	if raised {
		g.lines.Assert(line)
	} else {
		g.lines.Deassert(line)
	}
}

// SetInput sets the external level of a pin. The level is only seen by the
// guest if the pin is configured as an input.
func (g *GPIO) SetInput(pin int, high bool) {
	if pin < 0 || pin >= NumPins {
		return
	}
	b := &g.banks[pin/32]
	before := b.level()
	if high {
		b.input |= 1 << (pin % 32)
	} else {
		b.input &^= 1 << (pin % 32)
	}
	g.change(b, before)
}

// Level returns the current level of a pin.
func (g *GPIO) Level(pin int) bool {
	if pin < 0 || pin >= NumPins {
		return false
	}
	return g.banks[pin/32].level()&(1<<(pin%32)) != 0
}

// decode returns the register group and the bank for an offset
func decode(offset uint32) (uint32, int) {
	if offset >= GAFR {
		return GAFR, int(offset-GAFR) >> 2
	}
	group := offset / 0x0c * 0x0c
	return group, int(offset-group) >> 2
}

// Read implements the memory.Registers interface.
func (g *GPIO) Read(offset uint32) (uint32, bool) {
	group, n := decode(offset)
	if group == GAFR {
		if n >= len(g.altFn) {
			return 0, false
		}
		return g.altFn[n], true
	}

	b := &g.banks[n]
	switch group {
	case GPLR:
		return b.level(), true
	case GPDR:
		return b.dir, true
	case GPSR, GPCR:
		// write only
		return 0, true
	case GRER:
		return b.rising, true
	case GFER:
		return b.falling, true
	case GEDR:
		return b.edge, true
	}
	return 0, false
}

// Write implements the memory.Registers interface.
func (g *GPIO) Write(offset uint32, value uint32) bool {
	group, n := decode(offset)
	if group == GAFR {
		if n >= len(g.altFn) {
			return false
		}
		g.altFn[n] = value
		return true
	}

	b := &g.banks[n]
	before := b.level()

	switch group {
	case GPLR:
		// read only
		return true
	case GPDR:
		b.dir = value
	case GPSR:
		b.output |= value
	case GPCR:
		b.output &^= value
	case GRER:
		b.rising = value
		return true
	case GFER:
		b.falling = value
		return true
	case GEDR:
		// write one to clear
		b.edge &^= value
		g.update()
		return true
	default:
		return false
	}

	g.change(b, before)
	return true
}
