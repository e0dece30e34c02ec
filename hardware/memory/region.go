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

import "fmt"

// Handler is implemented by every backing store. The offset is relative to the
// base of the region and the access is guaranteed to lie entirely inside the
// region. The buffer is in little-endian byte order. Returning false fails the
// access.
type Handler interface {
	Access(offset uint32, size int, write bool, buf []byte) bool
}

// Region is a contiguous range of the physical address space owned by exactly
// one Handler.
type Region struct {
	Name    string
	Base    uint32
	Size    uint32
	Handler Handler
}

func (r Region) String() string {
	return fmt.Sprintf("%s [%08x -> %08x]", r.Name, r.Base, uint64(r.Base)+uint64(r.Size)-1)
}

// end is one past the last address of the region. it does not fit in 32 bits
// for a region ending at the top of the address space
func (r Region) end() uint64 {
	return uint64(r.Base) + uint64(r.Size)
}

// contains returns true if the entire range [pa, pa+size) is inside the region.
func (r Region) contains(pa uint32, size int) bool {
	return pa >= r.Base && uint64(pa)+uint64(size) <= r.end()
}

func (r Region) overlaps(o Region) bool {
	return uint64(r.Base) < o.end() && uint64(o.Base) < r.end()
}
