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

package sharedram_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/hardware/memory"
	"github.com/ElectroBoy404NotFound/uARM/host/sharedram"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func TestAnonymous(t *testing.T) {
	sr, err := sharedram.NewSharedRAM("", 0x1000)
	test.DemandSuccess(t, err)
	defer sr.Close()

	test.ExpectEquality(t, sr.Size(), uint32(0x1000))

	co := sr.Callout()
	co.WordSet(3, 0x11223344)
	test.ExpectEquality(t, co.WordGet(3), uint32(0x11223344))
	test.ExpectEquality(t, co.WordGet(0), uint32(0))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ram")

	sr, err := sharedram.NewSharedRAM(fn, 0x2000)
	test.DemandSuccess(t, err)

	// through a memory region so that sub-word writes are exercised
	sp := memory.NewSpace()
	test.DemandSuccess(t, sp.Install(memory.Region{
		Name:    "coRAM",
		Base:    0xa0000000,
		Size:    sr.Size(),
		Handler: memory.NewCallout(*sr.Callout()),
	}))
	test.ExpectSuccess(t, sp.Write32(0xa0000100, 0xaabbccdd))
	test.ExpectSuccess(t, sp.Access(0xa0000101, 1, true, []byte{0x00}))
	test.DemandSuccess(t, sr.Close())

	p, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p), 0x2000)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(p[0x100:]), uint32(0xaabb00dd))
}

func TestInvalidSize(t *testing.T) {
	_, err := sharedram.NewSharedRAM("", 0)
	test.ExpectSuccess(t, curated.Is(err, sharedram.InvalidSize))
	_, err = sharedram.NewSharedRAM("", 7)
	test.ExpectSuccess(t, curated.Is(err, sharedram.InvalidSize))
}
