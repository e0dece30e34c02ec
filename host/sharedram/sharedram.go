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

package sharedram

import (
	"encoding/binary"
	"os"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/hardware/memory"
	"golang.org/x/sys/unix"
)

// Patterns for shared RAM errors.
const (
	SharedRAMError = "sharedram: %v"
	InvalidSize    = "sharedram: size must be a non-zero multiple of four (%#x)"
)

// SharedRAM is memory mapped from a file, or anonymous memory when no file is
// given, for use as callout RAM. Another process mapping the same file sees
// the guest's RAM.
type SharedRAM struct {
	data []byte
}

// NewSharedRAM maps size bytes. The file is created if it does not exist and
// is grown to the size if it is smaller.
func NewSharedRAM(path string, size uint32) (*SharedRAM, error) {
	if size == 0 || size&0x3 != 0 {
		return nil, curated.Errorf(InvalidSize, size)
	}

	fd := -1
	flags := unix.MAP_SHARED | unix.MAP_ANON

	if path != "" {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
		if err != nil {
			return nil, curated.Errorf(SharedRAMError, err)
		}

		// the mapping holds its own reference to the file
		defer f.Close()

		st, err := f.Stat()
		if err != nil {
			return nil, curated.Errorf(SharedRAMError, err)
		}
		if st.Size() < int64(size) {
			if err := f.Truncate(int64(size)); err != nil {
				return nil, curated.Errorf(SharedRAMError, err)
			}
		}

		fd = int(f.Fd())
		flags = unix.MAP_SHARED
	}

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		return nil, curated.Errorf(SharedRAMError, err)
	}

	return &SharedRAM{data: data}, nil
}

// Close unmaps the memory. The callout functions must not be used after
// Close().
func (sr *SharedRAM) Close() error {
	if err := unix.Munmap(sr.data); err != nil {
		return curated.Errorf(SharedRAMError, err)
	}
	sr.data = nil
	return nil
}

// Size returns the size of the mapping in bytes.
func (sr *SharedRAM) Size() uint32 {
	return uint32(len(sr.data))
}

// Callout returns the callout functions for the mapping. Words are stored in
// little-endian byte order.
func (sr *SharedRAM) Callout() *memory.Callout {
	return &memory.Callout{
		WordGet: func(idx uint32) uint32 {
			return binary.LittleEndian.Uint32(sr.data[idx*4:])
		},
		WordSet: func(idx uint32, v uint32) {
			binary.LittleEndian.PutUint32(sr.data[idx*4:], v)
		},
	}
}
