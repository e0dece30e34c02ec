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

package faults_test

import (
	"strings"
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/hardware/faults"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func TestCategorise(t *testing.T) {
	test.ExpectEquality(t, faults.Categorise(0x01), faults.Alignment)
	test.ExpectEquality(t, faults.Categorise(0x05), faults.Translation)
	test.ExpectEquality(t, faults.Categorise(0x37), faults.Translation)
	test.ExpectEquality(t, faults.Categorise(0x2b), faults.Domain)
	test.ExpectEquality(t, faults.Categorise(0x0f), faults.Permission)
	test.ExpectEquality(t, faults.Categorise(0x08), faults.External)
	test.ExpectEquality(t, faults.Categorise(0x00), faults.Unknown)
}

func TestLog(t *testing.T) {
	flt := faults.NewFaults()
	flt.NewEntry(0x1000, 0x05)
	flt.NewEntry(0x1000, 0x05)
	flt.NewEntry(0x1000, 0x1d)
	flt.NewEntry(0x2000, 0x05)

	test.DemandEquality(t, len(flt.Log), 3)
	test.ExpectEquality(t, flt.Log[0].Count, 2)
	test.ExpectEquality(t, flt.Log[1].Category, faults.Permission)
	test.ExpectEquality(t, flt.Log[2].Address, uint32(0x2000))

	var s strings.Builder
	flt.WriteLog(&s)
	test.ExpectEquality(t, strings.Count(s.String(), "\n"), 3)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "translation: 00001000 (status 05, domain 0) x2\n"))

	flt.Clear()
	test.ExpectEquality(t, len(flt.Log), 0)
	flt.NewEntry(0x1000, 0x05)
	test.ExpectEquality(t, flt.Log[0].Count, 1)
}
