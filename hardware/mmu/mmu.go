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

package mmu

// Walker reads words from physical memory. Translation tables are always read
// through the Walker so that changes made by the guest to its own tables are
// seen immediately.
type Walker interface {
	Read32(pa uint32) (uint32, bool)
}

// Recorder is told about every failed translation.
type Recorder interface {
	SetFaultStatus(addr uint32, status FaultStatus)
}

// the fast context switch extension only applies to the bottom 32MB of the
// virtual address space
const fcseLimit = 0x02000000

// MMU translates virtual addresses to physical addresses using ARMv5 short
// descriptor translation tables. There is no TLB.
//
// The MMU is configured by the system control coprocessor. Translate() has no
// side effects other than the call to the Recorder on failure.
type MMU struct {
	mem Walker
	rec Recorder

	enabled bool
	ttb     uint32
	dacr    uint32

	// the S (system) and R (ROM) protection bits from the control register
	sBit bool
	rBit bool

	// process ID in bits 31:25. zero disables the fast context switch
	pid uint32
}

// NewMMU is the preferred method of initialisation for the MMU type. The MMU
// starts disabled.
func NewMMU(mem Walker) *MMU {
	return &MMU{mem: mem}
}

// AttachRecorder sets the Recorder to be used for failed translations. A nil
// Recorder is allowed.
func (m *MMU) AttachRecorder(rec Recorder) {
	m.rec = rec
}

// SetEnabled turns translation on or off. When off addresses are mapped to
// themselves.
func (m *MMU) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Enabled returns true if translation is enabled.
func (m *MMU) Enabled() bool {
	return m.enabled
}

// SetTTB sets the base of the first level translation table. The bottom 14
// bits are ignored.
func (m *MMU) SetTTB(ttb uint32) {
	m.ttb = ttb & 0xffffc000
}

// SetDomains sets the domain access control register.
func (m *MMU) SetDomains(dacr uint32) {
	m.dacr = dacr
}

// SetProtection sets the S and R bits used in access permission checks.
func (m *MMU) SetProtection(s bool, r bool) {
	m.sBit = s
	m.rBit = r
}

// SetPID sets the fast context switch process ID. Only bits 31:25 are used.
func (m *MMU) SetPID(pid uint32) {
	m.pid = pid & 0xfe000000
}

func (m *MMU) fault(va uint32, status FaultStatus) (uint32, FaultStatus, bool) {
	if m.rec != nil {
		m.rec.SetFaultStatus(va, status)
	}
	return 0, status, false
}

// Translate the virtual address for an access of the given size. On success
// the physical address is returned. On failure the fault status is returned
// and the fault has been recorded.
//
// The size must be a power of two and the address must be aligned to the size
// or the translation fails with AlignmentFault. The translation tables are not
// read in that case.
func (m *MMU) Translate(va uint32, size int, write bool, privileged bool) (uint32, FaultStatus, bool) {
	if size <= 0 || size&(size-1) != 0 || va&uint32(size-1) != 0 {
		return m.fault(va, AlignmentFault)
	}

	if m.pid != 0 && va < fcseLimit {
		va |= m.pid
	}

	if !m.enabled {
		return va, NoFault, true
	}

	l1, ok := m.mem.Read32(m.ttb | (va>>20)<<2)
	if !ok {
		return m.fault(va, ExternalAbortFirst)
	}

	domain := (l1 >> 5) & 0x0f

	var pa uint32
	var ap uint32
	var section bool

	switch l1 & 0x3 {
	case 0:
		return m.fault(va, TranslationSection)

	case 2:
		section = true
		pa = (l1 & 0xfff00000) | (va & 0x000fffff)
		ap = (l1 >> 10) & 0x3

	case 1, 3:
		var l2addr uint32
		fine := l1&0x3 == 3
		if fine {
			l2addr = (l1 & 0xfffff000) | ((va>>10)&0x3ff)<<2
		} else {
			l2addr = (l1 & 0xfffffc00) | ((va>>12)&0xff)<<2
		}

		l2, ok := m.mem.Read32(l2addr)
		if !ok {
			return m.fault(va, withDomain(ExternalAbortSecond, domain))
		}

		switch l2 & 0x3 {
		case 0:
			return m.fault(va, withDomain(TranslationPage, domain))
		case 1:
			// large page. four sub-pages with their own permissions
			pa = (l2 & 0xffff0000) | (va & 0x0000ffff)
			ap = (l2 >> (4 + 2*((va>>14)&0x3))) & 0x3
		case 2:
			// small page. four sub-pages with their own permissions
			pa = (l2 & 0xfffff000) | (va & 0x00000fff)
			ap = (l2 >> (4 + 2*((va>>10)&0x3))) & 0x3
		case 3:
			if fine {
				// tiny page
				pa = (l2 & 0xfffffc00) | (va & 0x000003ff)
			} else {
				// extended small page. XScale only
				pa = (l2 & 0xfffff000) | (va & 0x00000fff)
			}
			ap = (l2 >> 4) & 0x3
		}
	}

	switch (m.dacr >> (domain * 2)) & 0x3 {
	case 0, 2:
		if section {
			return m.fault(va, withDomain(DomainSection, domain))
		}
		return m.fault(va, withDomain(DomainPage, domain))
	case 3:
		// manager. permissions are not checked
		return pa, NoFault, true
	}

	if !m.permitted(ap, write, privileged) {
		if section {
			return m.fault(va, withDomain(PermissionSection, domain))
		}
		return m.fault(va, withDomain(PermissionPage, domain))
	}

	return pa, NoFault, true
}

// permitted checks access permission bits for a client domain.
func (m *MMU) permitted(ap uint32, write bool, privileged bool) bool {
	switch ap {
	case 0:
		if write {
			return false
		}
		switch {
		case m.sBit && !m.rBit:
			return privileged
		case !m.sBit && m.rBit:
			return true
		}
		return false
	case 1:
		return privileged
	case 2:
		return privileged || !write
	}
	return true
}
