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

import (
	"encoding/binary"
	"sort"

	"github.com/ElectroBoy404NotFound/uARM/curated"
)

// Patterns for region installation errors.
const (
	RegionEmpty    = "memory: %s has zero size"
	RegionOverflow = "memory: %s extends past the top of the address space"
	RegionConflict = "memory: %s overlaps %s"
	RegionNoAccess = "memory: %s has no handler"
)

// Space is the physical address space. Regions are installed once, during
// machine creation, and are never removed or resized.
type Space struct {
	// sorted by base address. regions never overlap so the order is total
	regions []Region
}

// NewSpace is the preferred method of initialisation for the Space type.
func NewSpace() *Space {
	return &Space{}
}

// Install a new region. Fails if the region is empty, wraps past the top of
// the address space or overlaps an installed region.
func (sp *Space) Install(r Region) error {
	if r.Size == 0 {
		return curated.Errorf(RegionEmpty, r.Name)
	}
	if r.end() > 1<<32 {
		return curated.Errorf(RegionOverflow, r.Name)
	}
	if r.Handler == nil {
		return curated.Errorf(RegionNoAccess, r.Name)
	}

	i := sort.Search(len(sp.regions), func(i int) bool {
		return sp.regions[i].Base >= r.Base
	})

	// only the neighbours in the sorted list can overlap
	if i > 0 && sp.regions[i-1].overlaps(r) {
		return curated.Errorf(RegionConflict, r, sp.regions[i-1])
	}
	if i < len(sp.regions) && sp.regions[i].overlaps(r) {
		return curated.Errorf(RegionConflict, r, sp.regions[i])
	}

	sp.regions = append(sp.regions, Region{})
	copy(sp.regions[i+1:], sp.regions[i:])
	sp.regions[i] = r

	return nil
}

// find the region containing the entire range [pa, pa+size). returns nil if
// the range is in no region or spans more than one region
func (sp *Space) find(pa uint32, size int) *Region {
	// first region with a base above pa. the candidate is the one before it
	i := sort.Search(len(sp.regions), func(i int) bool {
		return sp.regions[i].Base > pa
	})
	if i == 0 {
		return nil
	}
	r := &sp.regions[i-1]
	if !r.contains(pa, size) {
		return nil
	}
	return r
}

// Access performs a physical memory access. The access fails without touching
// any memory if the range overflows the address space, spans two regions or
// falls in no region.
func (sp *Space) Access(pa uint32, size int, write bool, buf []byte) bool {
	if size <= 0 || len(buf) < size {
		return false
	}
	if uint64(pa)+uint64(size) > 1<<32 {
		return false
	}

	r := sp.find(pa, size)
	if r == nil {
		return false
	}

	return r.Handler.Access(pa-r.Base, size, write, buf[:size])
}

// Read32 reads a word from the physical address. Used for translation table
// walks and DMA transfers.
func (sp *Space) Read32(pa uint32) (uint32, bool) {
	var b [4]byte
	if !sp.Access(pa, 4, false, b[:]) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[:]), true
}

// Write32 writes a word to the physical address.
func (sp *Space) Write32(pa uint32, v uint32) bool {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return sp.Access(pa, 4, true, b[:])
}

// Regions returns a copy of the installed regions in address order.
func (sp *Space) Regions() []Region {
	r := make([]Region, len(sp.regions))
	copy(r, sp.regions)
	return r
}
