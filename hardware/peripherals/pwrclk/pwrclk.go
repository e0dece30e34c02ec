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

package pwrclk

import (
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// Clock manager register offsets.
const (
	CCCR = 0x00
	CKEN = 0x04
	OSCC = 0x08
)

// Power manager register offsets.
const (
	PMCR  = 0x00
	PSSR  = 0x04
	PSPR  = 0x08
	PWER  = 0x0c
	PRER  = 0x10
	PFER  = 0x14
	PEDR  = 0x18
	PCFR  = 0x1c
	PGSR0 = 0x20
	PGSR1 = 0x24
	PGSR2 = 0x28
	RCSR  = 0x30
)

// Coprocessor 14 registers handled by the power and clock unit.
const (
	CCLKCFG = 6
	PWRMODE = 7
)

// oscillator is on and stable
const osccOOK = uint32(1 << 0)

// reset status: hardware reset
const rcsrHWR = uint32(1 << 0)

// PwrClk is the power manager and the clock manager. Register values are
// stored and have no effect on the emulation.
type PwrClk struct {
	env logger.Permission

	// clock manager
	cccr uint32
	cken uint32
	oscc uint32

	// power manager, indexed by offset
	power [RCSR/4 + 1]uint32

	// coprocessor 14
	cclkcfg uint32
	pwrmode uint32
}

// NewPwrClk is the preferred method of initialisation for the PwrClk type.
func NewPwrClk(env logger.Permission) *PwrClk {
	p := &PwrClk{
		env:  env,
		cccr: 0x00000121,
		cken: 0x00017def,
		oscc: osccOOK,
	}
	p.power[RCSR/4] = rcsrHWR
	return p
}

// Clock returns the register interface for the clock manager.
func (p *PwrClk) Clock() *ClockRegisters {
	return (*ClockRegisters)(p)
}

// Power returns the register interface for the power manager.
func (p *PwrClk) Power() *PowerRegisters {
	return (*PowerRegisters)(p)
}

// ClockRegisters implements the memory.Registers interface for the clock
// manager.
type ClockRegisters PwrClk

// Read implements the memory.Registers interface.
func (c *ClockRegisters) Read(offset uint32) (uint32, bool) {
	switch offset {
	case CCCR:
		return c.cccr, true
	case CKEN:
		return c.cken, true
	case OSCC:
		return c.oscc, true
	}
	return 0, false
}

// Write implements the memory.Registers interface.
func (c *ClockRegisters) Write(offset uint32, value uint32) bool {
	switch offset {
	case CCCR:
		c.cccr = value & 0x3ff
	case CKEN:
		c.cken = value & 0x17def
	case OSCC:
		// OON can be set but never cleared. OOK follows immediately
		c.oscc |= value & 0x2
		c.oscc |= osccOOK
	default:
		return false
	}
	return true
}

// PowerRegisters implements the memory.Registers interface for the power
// manager.
type PowerRegisters PwrClk

// Read implements the memory.Registers interface.
func (p *PowerRegisters) Read(offset uint32) (uint32, bool) {
	if offset > RCSR || offset == 0x2c {
		return 0, false
	}
	return p.power[offset>>2], true
}

// Write implements the memory.Registers interface.
func (p *PowerRegisters) Write(offset uint32, value uint32) bool {
	switch offset {
	case PSSR, PEDR, RCSR:
		// write one to clear
		p.power[offset>>2] &^= value
	case PMCR, PSPR, PWER, PRER, PFER, PCFR, PGSR0, PGSR1, PGSR2:
		p.power[offset>>2] = value
	default:
		return false
	}
	return true
}

// MCR implements the cpu.Coprocessor interface for coprocessor 14.
func (p *PwrClk) MCR(op1, crn, crm, op2 uint8, value uint32) bool {
	if op1 != 0 || crm != 0 || op2 != 0 {
		return false
	}
	switch crn {
	case CCLKCFG:
		p.cclkcfg = value & 0x3
		logger.Logf(p.env, "pwrclk", "CCLKCFG: %#x", p.cclkcfg)
	case PWRMODE:
		p.pwrmode = value & 0x3
		logger.Logf(p.env, "pwrclk", "PWRMODE: %#x", p.pwrmode)
	default:
		return false
	}
	return true
}

// MRC implements the cpu.Coprocessor interface for coprocessor 14.
func (p *PwrClk) MRC(op1, crn, crm, op2 uint8) (uint32, bool) {
	if op1 != 0 || crm != 0 || op2 != 0 {
		return 0, false
	}
	switch crn {
	case CCLKCFG:
		return p.cclkcfg, true
	case PWRMODE:
		return p.pwrmode, true
	}
	return 0, false
}
