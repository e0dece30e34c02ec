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

// Callout forwards accesses to functions supplied by the host. Indexes are
// word indexes relative to the start of the region. The host is responsible
// for any synchronisation on its side.
type Callout struct {
	WordGet func(index uint32) uint32
	WordSet func(index uint32, value uint32)
}

type callout struct {
	co Callout
}

// NewCallout creates a Handler for a Callout.
//
// Word accesses map directly onto WordGet and WordSet. Byte and halfword
// accesses are emulated: a read extracts the bytes from the containing word
// and a write is a read-modify-write of the containing word. An access that
// crosses a word boundary fails.
func NewCallout(co Callout) Handler {
	return &callout{co: co}
}

// Access implements the Handler interface.
func (c *callout) Access(offset uint32, size int, write bool, buf []byte) bool {
	shift := offset & 0x3
	if int(shift)+size > 4 {
		return false
	}

	idx := offset >> 2

	if size == 4 {
		if write {
			c.co.WordSet(idx, uint32(buf[0])|uint32(buf[1])<<8|uint32(buf[2])<<16|uint32(buf[3])<<24)
		} else {
			w := c.co.WordGet(idx)
			buf[0] = byte(w)
			buf[1] = byte(w >> 8)
			buf[2] = byte(w >> 16)
			buf[3] = byte(w >> 24)
		}
		return true
	}

	w := c.co.WordGet(idx)
	for i := 0; i < size; i++ {
		s := (shift + uint32(i)) * 8
		if write {
			w = (w &^ (0xff << s)) | uint32(buf[i])<<s
		} else {
			buf[i] = byte(w >> s)
		}
	}
	if write {
		c.co.WordSet(idx, w)
	}

	return true
}
