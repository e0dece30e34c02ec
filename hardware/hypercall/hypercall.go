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

package hypercall

import (
	"fmt"
	"io"

	"github.com/ElectroBoy404NotFound/uARM/hardware/cpu"
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// The register holding the hypercall number.
const Selector = 12

// Hypercall numbers.
const (
	Halt = iota
	PrintDecimal
	PrintChar
	RAMSize
	BlockOp
	BufferAccess
)

// Block device operations as passed in R0 to the BlockOp hypercall.
const (
	OpSize = iota
	OpRead
	OpWrite
)

// Directions for the BufferAccess hypercall, passed in R2.
const (
	BufferRead  = 0
	BufferWrite = 1
)

// BlockDevice performs sector sized operations against the BlockBuffer.
//
// For OpSize the sector number selects the query: sector 0 puts the number
// of sectors in word 0 of the buffer, sector 1 puts the sector size. Other
// sectors fail.
type BlockDevice interface {
	Operate(op uint32, sector uint32, buf *BlockBuffer) bool
}

// Machine is the part of the emulated machine the Gate needs.
type Machine interface {
	Halt()
	RAMSize() uint32
}

// Gate dispatches hypercalls. It owns the BlockBuffer.
type Gate struct {
	env  logger.Permission
	mc   Machine
	disk BlockDevice

	// diagnostic output for the print hypercalls
	out io.Writer

	Buffer BlockBuffer
}

// NewGate is the preferred method of initialisation for the Gate type. The
// block device can be nil, in which case block operations always fail.
func NewGate(env logger.Permission, mc Machine, disk BlockDevice, out io.Writer) *Gate {
	if out == nil {
		out = io.Discard
	}
	return &Gate{
		env:  env,
		mc:   mc,
		disk: disk,
		out:  out,
	}
}

// Dispatch performs the hypercall selected by R12. Returns false if the
// hypercall was not handled, either because the number is unknown or because
// the arguments were invalid. The CPU core decides what that means for the
// guest.
func (g *Gate) Dispatch(regs cpu.Registers) bool {
	switch regs.Reg(Selector) {
	case Halt:
		logger.Log(g.env, "hypercall", "hypercall 0 caught")
		g.mc.Halt()

	case PrintDecimal:
		fmt.Fprintf(g.out, "%d", regs.Reg(0))

	case PrintChar:
		_, _ = g.out.Write([]byte{byte(regs.Reg(0))})

	case RAMSize:
		regs.SetReg(0, g.mc.RAMSize())

	case BlockOp:
		if g.disk == nil {
			return false
		}
		return g.disk.Operate(regs.Reg(0), regs.Reg(1), &g.Buffer)

	case BufferAccess:
		offset := regs.Reg(1)
		if offset >= BlockWords {
			return false
		}
		switch regs.Reg(2) {
		case BufferRead:
			regs.SetReg(0, g.Buffer[offset])
		case BufferWrite:
			g.Buffer[offset] = regs.Reg(0)
		default:
			return false
		}

	default:
		return false
	}

	return true
}
