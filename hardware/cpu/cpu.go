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

package cpu

// Register numbers used with the Registers interface. R0 to R15 are numbered
// 0 to 15.
const (
	SP   = 13
	LR   = 14
	PC   = 15
	CPSR = 16
	SPSR = 17
)

// NumRegisters is the number of registers addressable through the Registers
// interface, including CPSR and SPSR.
const NumRegisters = 18

// Registers gives access to the register file of the current mode.
type Registers interface {
	Reg(n int) uint32
	SetReg(n int, value uint32)
}

// Core is an ARM instruction core. Step executes a single instruction,
// calling back into the Bus for every memory access, every coprocessor
// instruction and every hypercall.
//
// An error from Step() is an unrecoverable emulation error. Guest visible
// conditions (faults, undefined instructions, interrupts) are never returned
// as errors.
type Core interface {
	Registers
	Step() error
}

// Bus is the interface the machine presents to the Core.
type Bus interface {
	// Memory performs a guest memory access of size bytes at the virtual
	// address. The buffer is in little-endian byte order. On failure the
	// fault status is returned and the fault has already been recorded.
	Memory(buf []byte, va uint32, size int, write bool, privileged bool) (uint8, bool)

	// Hypercall is called on the reserved trap instruction. Returns false if
	// the hypercall was not handled.
	Hypercall(regs Registers) bool

	// SetFault records a fault found by the core itself, for example an
	// alignment fault detected during instruction fetch.
	SetFault(addr uint32, status uint8)

	// Interrupts returns the state of the IRQ and FIQ inputs. Polled by the
	// core before every instruction.
	Interrupts() (irq bool, fiq bool)

	// Coprocessor returns the coprocessor with the number n or nil if there is
	// no such coprocessor. The returned value can also implement
	// DoubleCoprocessor and Accumulator.
	Coprocessor(n int) Coprocessor
}

// Coprocessor implements the register transfer instructions MCR and MRC.
// Returning false causes an undefined instruction exception.
type Coprocessor interface {
	MCR(op1, crn, crm, op2 uint8, value uint32) bool
	MRC(op1, crn, crm, op2 uint8) (uint32, bool)
}

// DoubleCoprocessor implements the two register transfer instructions MCRR
// and MRRC.
type DoubleCoprocessor interface {
	MCRR(op uint8, crm uint8, lo uint32, hi uint32) bool
	MRRC(op uint8, crm uint8) (uint32, uint32, bool)
}

// Accumulator implements the XScale multiply with internal accumulate
// instructions.
type Accumulator interface {
	MIA(acc uint8, rm uint32, rs uint32) bool
	MIAPH(acc uint8, rm uint32, rs uint32) bool
	MIAxy(acc uint8, topRm bool, topRs bool, rm uint32, rs uint32) bool
}

// Factory creates a Core attached to the Bus. The reset vector is the
// address of the first instruction.
type Factory func(bus Bus, resetVector uint32) (Core, error)
