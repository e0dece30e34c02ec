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

package memory

import "encoding/binary"

// Registers is implemented by peripherals. Offsets are relative to the base of
// the peripheral's region and are always word aligned. Returning false fails
// the access, for example because there is no register at that offset.
type Registers interface {
	Read(offset uint32) (uint32, bool)
	Write(offset uint32, value uint32) bool
}

type device struct {
	regs Registers
}

// NewDevice creates a Handler for a peripheral. Only aligned 4 byte accesses
// are accepted.
func NewDevice(regs Registers) Handler {
	return &device{regs: regs}
}

// Access implements the Handler interface.
func (d *device) Access(offset uint32, size int, write bool, buf []byte) bool {
	if size != 4 || offset&0x3 != 0 {
		return false
	}
	if write {
		return d.regs.Write(offset, binary.LittleEndian.Uint32(buf))
	}
	v, ok := d.regs.Read(offset)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint32(buf, v)
	return true
}
