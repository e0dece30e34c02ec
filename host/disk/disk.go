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

package disk

import (
	"os"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/hardware/hypercall"
)

// Patterns for disk errors.
const (
	DiskError = "disk: %v"
	DiskEmpty = "disk: %s has no complete sectors"
)

// Disk is a block device backed by an image file. Implements the
// hypercall.BlockDevice interface.
type Disk struct {
	f        *os.File
	sectors  uint32
	readOnly bool
}

// Open the disk image. A read only disk fails all write operations.
func Open(path string, readOnly bool) (*Disk, error) {
	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf(DiskError, err)
	}

	d := &Disk{
		f:        f,
		sectors:  uint32(st.Size() / hypercall.BlockSize),
		readOnly: readOnly,
	}
	if d.sectors == 0 {
		f.Close()
		return nil, curated.Errorf(DiskEmpty, path)
	}

	return d, nil
}

// Close the disk image.
func (d *Disk) Close() error {
	if err := d.f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}
	return nil
}

// Sectors returns the number of complete sectors in the image.
func (d *Disk) Sectors() uint32 {
	return d.sectors
}

// Operate implements the hypercall.BlockDevice interface.
func (d *Disk) Operate(op uint32, sector uint32, buf *hypercall.BlockBuffer) bool {
	switch op {
	case hypercall.OpSize:
		switch sector {
		case 0:
			buf[0] = d.sectors
		case 1:
			buf[0] = hypercall.BlockSize
		default:
			return false
		}
		return true

	case hypercall.OpRead:
		if sector >= d.sectors {
			return false
		}
		p := make([]byte, hypercall.BlockSize)
		if _, err := d.f.ReadAt(p, int64(sector)*hypercall.BlockSize); err != nil {
			return false
		}
		buf.SetBytes(p)
		return true

	case hypercall.OpWrite:
		if d.readOnly || sector >= d.sectors {
			return false
		}
		if _, err := d.f.WriteAt(buf.Bytes(), int64(sector)*hypercall.BlockSize); err != nil {
			return false
		}
		return true
	}

	return false
}
