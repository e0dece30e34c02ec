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

package dsp

import "fmt"

// the accumulator is 40 bits wide
const accMask = uint64(1)<<40 - 1

// DSP is coprocessor 0 of the XScale core. It holds a single 40 bit
// accumulator used by the multiply with internal accumulate instructions.
// Only acc0 exists. Instructions naming any other accumulator are undefined.
type DSP struct {
	acc0 uint64
}

// NewDSP is the preferred method of initialisation for the DSP type.
func NewDSP() *DSP {
	return &DSP{}
}

func (d *DSP) String() string {
	return fmt.Sprintf("acc0=%010x", d.acc0)
}

// Accumulator returns the value of acc0 sign extended to 64 bits.
func (d *DSP) Accumulator() int64 {
	return int64(d.acc0<<24) >> 24
}

func (d *DSP) accumulate(v int64) {
	d.acc0 = (d.acc0 + uint64(v)) & accMask
}

// MCR implements the cpu.Coprocessor interface. Single register transfers
// are not supported by the accumulator.
func (d *DSP) MCR(op1, crn, crm, op2 uint8, value uint32) bool {
	return false
}

// MRC implements the cpu.Coprocessor interface.
func (d *DSP) MRC(op1, crn, crm, op2 uint8) (uint32, bool) {
	return 0, false
}

// MCRR implements the cpu.DoubleCoprocessor interface. This is the MAR
// instruction.
func (d *DSP) MCRR(op uint8, crm uint8, lo uint32, hi uint32) bool {
	if op != 0 || crm != 0 {
		return false
	}
	d.acc0 = (uint64(hi&0xff) << 32) | uint64(lo)
	return true
}

// MRRC implements the cpu.DoubleCoprocessor interface. This is the MRA
// instruction. Bits 39:32 are sign extended into the high word.
func (d *DSP) MRRC(op uint8, crm uint8) (uint32, uint32, bool) {
	if op != 0 || crm != 0 {
		return 0, 0, false
	}
	v := d.Accumulator()
	return uint32(v), uint32(v >> 32), true
}

// MIA implements the cpu.Accumulator interface.
func (d *DSP) MIA(acc uint8, rm uint32, rs uint32) bool {
	if acc != 0 {
		return false
	}
	d.accumulate(int64(int32(rm)) * int64(int32(rs)))
	return true
}

// MIAPH implements the cpu.Accumulator interface. Both halves of the
// registers are multiplied and the two products added to the accumulator.
func (d *DSP) MIAPH(acc uint8, rm uint32, rs uint32) bool {
	if acc != 0 {
		return false
	}
	lo := int64(int16(rm)) * int64(int16(rs))
	hi := int64(int16(rm>>16)) * int64(int16(rs>>16))
	d.accumulate(lo + hi)
	return true
}

// MIAxy implements the cpu.Accumulator interface. The x and y selectors pick
// the top or bottom half of each register.
func (d *DSP) MIAxy(acc uint8, topRm bool, topRs bool, rm uint32, rs uint32) bool {
	if acc != 0 {
		return false
	}
	if topRm {
		rm >>= 16
	}
	if topRs {
		rs >>= 16
	}
	d.accumulate(int64(int16(rm)) * int64(int16(rs)))
	return true
}
