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

package mmu_test

import (
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/hardware/mmu"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

// tables is a Walker backed by a map. reads of missing addresses fail.
type tables struct {
	words map[uint32]uint32
	reads int
}

func (tb *tables) Read32(pa uint32) (uint32, bool) {
	tb.reads++
	v, ok := tb.words[pa]
	return v, ok
}

type recorder struct {
	addr   uint32
	status mmu.FaultStatus
	calls  int
}

func (r *recorder) SetFaultStatus(addr uint32, status mmu.FaultStatus) {
	r.addr = addr
	r.status = status
	r.calls++
}

const ttb = 0x00004000

func newMMU() (*mmu.MMU, *tables, *recorder) {
	tb := &tables{words: make(map[uint32]uint32)}
	rec := &recorder{}
	m := mmu.NewMMU(tb)
	m.AttachRecorder(rec)
	m.SetTTB(ttb)
	m.SetEnabled(true)

	// domain 0 client, domain 1 manager, domain 2 no access
	m.SetDomains(0x00000001 | 0x3<<2)
	return m, tb, rec
}

func l1(va uint32) uint32 {
	return ttb | (va>>20)<<2
}

func TestAlignment(t *testing.T) {
	m, tb, rec := newMMU()

	for _, c := range []struct {
		va   uint32
		size int
	}{
		{0x1000, 3},
		{0x1001, 2},
		{0x1002, 4},
		{0x1000, 0},
		{0x1000, 8 + 1},
	} {
		_, fs, ok := m.Translate(c.va, c.size, false, true)
		test.ExpectFailure(t, ok, c)
		test.ExpectEquality(t, fs, mmu.AlignmentFault, c)
		test.ExpectEquality(t, rec.addr, c.va, c)
	}

	test.ExpectEquality(t, tb.reads, 0)
	test.ExpectEquality(t, rec.calls, 5)
}

func TestDisabled(t *testing.T) {
	m, tb, rec := newMMU()
	m.SetEnabled(false)

	pa, fs, ok := m.Translate(0xa0001234, 4, true, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0xa0001234))
	test.ExpectEquality(t, fs, mmu.NoFault)
	test.ExpectEquality(t, tb.reads, 0)
	test.ExpectEquality(t, rec.calls, 0)
}

func TestFCSE(t *testing.T) {
	m, _, _ := newMMU()
	m.SetEnabled(false)
	m.SetPID(0x06000000)

	pa, _, ok := m.Translate(0x00008000, 4, false, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0x06008000))

	// above 32MB the pid is not applied
	pa, _, _ = m.Translate(0x02008000, 4, false, true)
	test.ExpectEquality(t, pa, uint32(0x02008000))
}

func TestSection(t *testing.T) {
	m, tb, rec := newMMU()

	// section at va 0xc0000000 -> pa 0xa0000000. domain 0, AP=2
	tb.words[l1(0xc0000000)] = 0xa0000000 | 2<<10 | 0<<5 | 0x2

	pa, _, ok := m.Translate(0xc0012344, 4, false, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0xa0012344))

	// user write to AP=2 is a permission fault
	_, fs, ok := m.Translate(0xc0012344, 4, true, false)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs, mmu.PermissionSection)
	test.ExpectEquality(t, rec.addr, uint32(0xc0012344))

	// privileged write is fine
	_, _, ok = m.Translate(0xc0012344, 4, true, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, rec.calls, 1)
}

func TestUnmapped(t *testing.T) {
	m, tb, rec := newMMU()

	tb.words[l1(0x10000000)] = 0
	_, fs, ok := m.Translate(0x10000000, 4, false, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs, mmu.TranslationSection)
	test.ExpectEquality(t, rec.status, mmu.TranslationSection)

	// no first level descriptor in physical memory at all
	_, fs, ok = m.Translate(0x20000000, 4, false, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs, mmu.ExternalAbortFirst)
}

func TestCoarse(t *testing.T) {
	m, tb, rec := newMMU()

	const coarse = 0x00008000

	// coarse table in domain 1 (manager)
	tb.words[l1(0x00100000)] = coarse | 1<<5 | 0x1

	// small page at index 2 -> 0xa0003000 with AP=0 on every sub-page. the
	// manager domain ignores the permissions
	tb.words[coarse|2<<2] = 0xa0003000 | 0x2

	pa, _, ok := m.Translate(0x00102abc, 4, true, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0xa0003abc))

	// extended small page at index 3
	tb.words[coarse|3<<2] = 0xa0004000 | 0x3
	pa, _, ok = m.Translate(0x00103010, 2, false, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0xa0004010))

	// large page at index 16. replicated in the table, only one entry needed
	tb.words[coarse|16<<2] = 0xa0010000 | 0x1
	pa, _, ok = m.Translate(0x00110888, 1, false, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0xa0010888))

	// no second level entry
	tb.words[coarse|4<<2] = 0
	_, fs, ok := m.Translate(0x00104000, 4, false, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs.Code(), mmu.TranslationPage)
	test.ExpectEquality(t, fs.Domain(), uint8(1))
	test.ExpectEquality(t, rec.status, fs)

	// second level table entry is not in physical memory
	_, fs, ok = m.Translate(0x00105000, 4, false, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs.Code(), mmu.ExternalAbortSecond)
}

func TestFine(t *testing.T) {
	m, tb, _ := newMMU()

	const fine = 0x0000c000

	// fine table in domain 0 (client)
	tb.words[l1(0x00200000)] = fine | 0<<5 | 0x3

	// tiny page at index 5 -> 0xa0000400 with AP=3
	tb.words[fine|5<<2] = 0xa0000400 | 3<<4 | 0x3
	pa, _, ok := m.Translate(0x00201678, 4, true, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pa, uint32(0xa0000678))

	// small page through a fine table. sub-page 1 has AP=1, the rest AP=3
	for i := uint32(0); i < 4; i++ {
		tb.words[fine|(8+i)<<2] = 0xa0005000 | 0xf3<<4 | 1<<6 | 0x2
	}
	_, fs, ok := m.Translate(0x00202400, 4, false, false)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs, mmu.PermissionPage)

	_, _, ok = m.Translate(0x00202000, 4, false, false)
	test.ExpectSuccess(t, ok)
}

func TestDomain(t *testing.T) {
	m, tb, _ := newMMU()

	tb.words[l1(0x30000000)] = 0x30000000 | 3<<10 | 2<<5 | 0x2
	_, fs, ok := m.Translate(0x30000000, 4, false, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, fs.Code(), mmu.DomainSection)
	test.ExpectEquality(t, fs.Domain(), uint8(2))
}

func TestProtectionBits(t *testing.T) {
	m, tb, _ := newMMU()

	// AP=0
	tb.words[l1(0x40000000)] = 0x40000000 | 0<<10 | 0x2

	_, _, ok := m.Translate(0x40000000, 4, false, true)
	test.ExpectFailure(t, ok)

	m.SetProtection(true, false)
	_, _, ok = m.Translate(0x40000000, 4, false, true)
	test.ExpectSuccess(t, ok)
	_, _, ok = m.Translate(0x40000000, 4, false, false)
	test.ExpectFailure(t, ok)

	m.SetProtection(false, true)
	_, _, ok = m.Translate(0x40000000, 4, false, false)
	test.ExpectSuccess(t, ok)
	_, _, ok = m.Translate(0x40000000, 4, true, true)
	test.ExpectFailure(t, ok)
}
