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

// Allocated is a backing store owned by the emulator. The memory is zero on
// creation.
type Allocated struct {
	data     []byte
	readOnly bool
}

// NewAllocated is the preferred method of initialisation for the Allocated
// type. Writes to a read only store always fail.
func NewAllocated(size uint32, readOnly bool) *Allocated {
	return &Allocated{
		data:     make([]byte, size),
		readOnly: readOnly,
	}
}

// Access implements the Handler interface.
func (a *Allocated) Access(offset uint32, size int, write bool, buf []byte) bool {
	if int(offset)+size > len(a.data) {
		return false
	}
	if write {
		if a.readOnly {
			return false
		}
		copy(a.data[offset:], buf[:size])
	} else {
		copy(buf[:size], a.data[offset:])
	}
	return true
}

// Load copies data into the start of the store, ignoring the read only flag.
// Returns false if the data does not fit.
func (a *Allocated) Load(data []byte) bool {
	if len(data) > len(a.data) {
		return false
	}
	copy(a.data, data)
	return true
}

// Bytes returns the underlying memory.
func (a *Allocated) Bytes() []byte {
	return a.data
}
