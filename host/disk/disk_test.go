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

package disk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/hardware/hypercall"
	"github.com/ElectroBoy404NotFound/uARM/host/disk"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func image(t *testing.T, size int) string {
	t.Helper()
	p := make([]byte, size)
	for i := range p {
		p[i] = byte(i / hypercall.BlockSize)
	}
	fn := filepath.Join(t.TempDir(), "disk.img")
	test.DemandSuccess(t, os.WriteFile(fn, p, 0o600))
	return fn
}

func TestSize(t *testing.T) {
	d, err := disk.Open(image(t, 3*512+100), true)
	test.DemandSuccess(t, err)
	defer d.Close()

	test.ExpectEquality(t, d.Sectors(), uint32(3))

	var buf hypercall.BlockBuffer
	test.ExpectSuccess(t, d.Operate(hypercall.OpSize, 0, &buf))
	test.ExpectEquality(t, buf[0], uint32(3))
	test.ExpectSuccess(t, d.Operate(hypercall.OpSize, 1, &buf))
	test.ExpectEquality(t, buf[0], uint32(512))
	test.ExpectFailure(t, d.Operate(hypercall.OpSize, 2, &buf))
}

func TestReadWrite(t *testing.T) {
	fn := image(t, 4*512)
	d, err := disk.Open(fn, false)
	test.DemandSuccess(t, err)

	var buf hypercall.BlockBuffer
	test.ExpectSuccess(t, d.Operate(hypercall.OpRead, 2, &buf))
	test.ExpectEquality(t, buf[0], uint32(0x02020202))
	test.ExpectEquality(t, buf[127], uint32(0x02020202))

	buf[0] = 0xdeadbeef
	test.ExpectSuccess(t, d.Operate(hypercall.OpWrite, 3, &buf))
	test.ExpectFailure(t, d.Operate(hypercall.OpRead, 4, &buf))
	test.ExpectFailure(t, d.Operate(hypercall.OpWrite, 4, &buf))
	test.ExpectFailure(t, d.Operate(3, 0, &buf))
	test.DemandSuccess(t, d.Close())

	p, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p[3*512], byte(0xef))
	test.ExpectEquality(t, p[3*512+3], byte(0xde))
	test.ExpectEquality(t, p[3*512+4], byte(0x02))
}

func TestReadOnly(t *testing.T) {
	d, err := disk.Open(image(t, 512), true)
	test.DemandSuccess(t, err)
	defer d.Close()

	var buf hypercall.BlockBuffer
	test.ExpectFailure(t, d.Operate(hypercall.OpWrite, 0, &buf))
}

func TestOpenErrors(t *testing.T) {
	_, err := disk.Open(filepath.Join(t.TempDir(), "missing.img"), true)
	test.ExpectSuccess(t, curated.Is(err, disk.DiskError))

	_, err = disk.Open(image(t, 100), true)
	test.ExpectSuccess(t, curated.Is(err, disk.DiskEmpty))
}
