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

package ostimer

import (
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// Register offsets.
const (
	OSMR0 = 0x00
	OSMR1 = 0x04
	OSMR2 = 0x08
	OSMR3 = 0x0c
	OSCR  = 0x10
	OSSR  = 0x14
	OWER  = 0x18
	OIER  = 0x1c
)

// NumChannels is the number of match registers.
const NumChannels = 4

// Timer implements the four channel OS timer. The counter advances once per
// call to Tick().
type Timer struct {
	env   logger.Permission
	lines intc.Lines

	match   [NumChannels]uint32
	counter uint32
	status  uint32
	intEn   uint32

	// watchdog enable. set once and never cleared
	watchdog bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(env logger.Permission, lines intc.Lines) *Timer {
	return &Timer{
		env:   env,
		lines: lines,
	}
}

// Tick advances the counter by one and checks the match registers.
func (t *Timer) Tick() {
	t.counter++
	for i := range t.match {
		if t.counter == t.match[i] {
			t.status |= 1 << i
			if i == 3 && t.watchdog {
				logger.Logf(t.env, "ostimer", "watchdog match at %08x", t.counter)
			}
		}
	}
	t.update()
}

// update sets the state of the interrupt lines to reflect the status and
// interrupt enable registers
func (t *Timer) update() {
	for i := 0; i < NumChannels; i++ {
		if t.status&t.intEn&(1<<i) != 0 {
			t.lines.Assert(intc.OST0 + i)
		} else {
			t.lines.Deassert(intc.OST0 + i)
		}
	}
}

// Read implements the memory.Registers interface.
func (t *Timer) Read(offset uint32) (uint32, bool) {
	switch offset {
	case OSMR0, OSMR1, OSMR2, OSMR3:
		return t.match[offset>>2], true
	case OSCR:
		return t.counter, true
	case OSSR:
		return t.status, true
	case OWER:
		if t.watchdog {
			return 1, true
		}
		return 0, true
	case OIER:
		return t.intEn, true
	}
	return 0, false
}

// Write implements the memory.Registers interface.
func (t *Timer) Write(offset uint32, value uint32) bool {
	switch offset {
	case OSMR0, OSMR1, OSMR2, OSMR3:
		t.match[offset>>2] = value
	case OSCR:
		t.counter = value
	case OSSR:
		// write one to clear
		t.status &^= value & 0x0f
		t.update()
	case OWER:
		if value&0x1 == 0x1 && !t.watchdog {
			t.watchdog = true
			logger.Log(t.env, "ostimer", "watchdog enabled")
		}
	case OIER:
		t.intEn = value & 0x0f
		t.update()
	default:
		return false
	}
	return true
}
