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

package cp15

import (
	"github.com/ElectroBoy404NotFound/uARM/hardware/faults"
	"github.com/ElectroBoy404NotFound/uARM/hardware/mmu"
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// Identification values for an XScale PXA255.
const (
	MainID    = uint32(0x69052d06)
	CacheType = uint32(0x0b1aa1aa)
)

// Control register bits.
const (
	ControlM = uint32(1 << 0)
	ControlA = uint32(1 << 1)
	ControlS = uint32(1 << 8)
	ControlR = uint32(1 << 9)
	ControlV = uint32(1 << 13)
)

// bits of the control register that always read as one
const controlSBO = uint32(0x00000078)

// CP15 is the system control coprocessor. It configures the MMU and records
// the most recent fault.
type CP15 struct {
	env logger.Permission
	mmu *mmu.MMU

	// optional log of distinct faults
	faults *faults.Faults

	control    uint32
	auxControl uint32
	ttb        uint32
	dacr       uint32
	pid        uint32
	cpar       uint32

	// fault status (c5) and fault address (c6). stale until the first fault
	fsr uint32
	far uint32

	// cache (c9) and TLB (c10) lockdown registers are stored but have no
	// effect
	cacheLockdown [2]uint32
	tlbLockdown   [2]uint32
}

// NewCP15 is the preferred method of initialisation for the CP15 type. The
// CP15 attaches itself to the MMU as the fault recorder. The faults argument
// can be nil.
func NewCP15(env logger.Permission, m *mmu.MMU, flt *faults.Faults) *CP15 {
	c := &CP15{
		env:     env,
		mmu:     m,
		faults:  flt,
		control: controlSBO,
	}
	m.AttachRecorder(c)
	return c
}

// SetFaultStatus implements the mmu.Recorder interface.
func (c *CP15) SetFaultStatus(addr uint32, status mmu.FaultStatus) {
	c.far = addr
	c.fsr = uint32(status)
	if c.faults != nil {
		c.faults.NewEntry(addr, uint8(status))
	}
}

// FaultAddress returns the address of the most recent fault.
func (c *CP15) FaultAddress() uint32 {
	return c.far
}

// FaultStatus returns the status of the most recent fault.
func (c *CP15) FaultStatus() mmu.FaultStatus {
	return mmu.FaultStatus(c.fsr)
}

// Control returns the control register. The core uses it to find the
// location of the exception vectors (ControlV) and whether alignment checking
// is enabled (ControlA).
func (c *CP15) Control() uint32 {
	return c.control
}

func (c *CP15) setControl(v uint32) {
	prev := c.control
	c.control = v | controlSBO

	c.mmu.SetEnabled(c.control&ControlM == ControlM)
	c.mmu.SetProtection(c.control&ControlS == ControlS, c.control&ControlR == ControlR)

	if (prev^c.control)&ControlM == ControlM {
		if c.control&ControlM == ControlM {
			logger.Logf(c.env, "cp15", "MMU enabled (TTB %08x)", c.ttb)
		} else {
			logger.Log(c.env, "cp15", "MMU disabled")
		}
	}
}

// MCR implements the cpu.Coprocessor interface.
func (c *CP15) MCR(op1, crn, crm, op2 uint8, value uint32) bool {
	if op1 != 0 {
		return false
	}

	switch crn {
	case 1:
		switch op2 {
		case 0:
			c.setControl(value)
		case 1:
			c.auxControl = value
		default:
			return false
		}
	case 2:
		c.ttb = value & 0xffffc000
		c.mmu.SetTTB(c.ttb)
	case 3:
		c.dacr = value
		c.mmu.SetDomains(value)
	case 5:
		c.fsr = value & 0xff
	case 6:
		c.far = value
	case 7, 8:
		// cache and TLB maintenance. there is no cache and no TLB
	case 9:
		c.cacheLockdown[op2&1] = value
	case 10:
		c.tlbLockdown[op2&1] = value
	case 13:
		c.pid = value & 0xfe000000
		c.mmu.SetPID(c.pid)
	case 14:
		// debug registers
	case 15:
		if crm != 1 {
			return false
		}
		c.cpar = value & 0x3fff
	default:
		return false
	}

	return true
}

// MRC implements the cpu.Coprocessor interface.
func (c *CP15) MRC(op1, crn, crm, op2 uint8) (uint32, bool) {
	if op1 != 0 {
		return 0, false
	}

	switch crn {
	case 0:
		switch op2 {
		case 0:
			return MainID, true
		case 1:
			return CacheType, true
		}
	case 1:
		switch op2 {
		case 0:
			return c.control, true
		case 1:
			return c.auxControl, true
		}
	case 2:
		return c.ttb, true
	case 3:
		return c.dacr, true
	case 5:
		return c.fsr, true
	case 6:
		return c.far, true
	case 9:
		return c.cacheLockdown[op2&1], true
	case 10:
		return c.tlbLockdown[op2&1], true
	case 13:
		return c.pid, true
	case 14:
		return 0, true
	case 15:
		if crm == 1 {
			return c.cpar, true
		}
	}

	return 0, false
}

// CoprocessorAccess returns true if the coprocessor number is allowed by the
// coprocessor access register. Coprocessors 14 and 15 are always accessible.
func (c *CP15) CoprocessorAccess(n int) bool {
	if n >= 14 {
		return true
	}
	return c.cpar&(1<<n) != 0
}
