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

package faults

import (
	"fmt"
	"io"
)

// Category classifies the reason for a memory fault. Derived from the low four
// bits of the fault status.
type Category string

// List of valid Category values.
const (
	Alignment   Category = "alignment"
	Translation Category = "translation"
	Domain      Category = "domain"
	Permission  Category = "permission"
	External    Category = "external abort"
	Unknown     Category = "unknown"
)

// Categorise returns the Category for the fault status.
func Categorise(status uint8) Category {
	switch status & 0x0f {
	case 0x1, 0x3:
		return Alignment
	case 0x5, 0x7:
		return Translation
	case 0x9, 0xb:
		return Domain
	case 0xd, 0xf:
		return Permission
	case 0x8, 0xa, 0xc, 0xe:
		return External
	}
	return Unknown
}

// Entry is a single entry in the fault log.
type Entry struct {
	Category Category

	// the full fault status, including the domain in the upper four bits
	Status uint8

	// faulting address
	Address uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %08x (status %02x, domain %d) x%d", e.Category, e.Address, e.Status&0x0f, e.Status>>4, e.Count)
}

// Faults records the distinct faults seen by the machine. Entries are keyed by
// the address and status so that a fault handler retrying the same access
// increases the count rather than growing the log.
type Faults struct {
	entries map[uint64]*Entry

	// all distinct faults in the order of their first appearance
	Log []*Entry
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() *Faults {
	return &Faults{
		entries: make(map[uint64]*Entry),
	}
}

// Clear all entries from the fault log.
func (flt *Faults) Clear() {
	clear(flt.entries)
	flt.Log = flt.Log[:0]
}

// WriteLog writes the list of faults in the order they were first seen.
func (flt *Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Log {
		fmt.Fprintln(w, e.String())
	}
}

// NewEntry adds a fault to the log.
func (flt *Faults) NewEntry(address uint32, status uint8) {
	key := uint64(address)<<8 | uint64(status)

	e, found := flt.entries[key]
	if !found {
		e = &Entry{
			Category: Categorise(status),
			Status:   status,
			Address:  address,
		}
		flt.entries[key] = e
		flt.Log = append(flt.Log, e)
	}

	e.Count++
}
