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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/host/easyterm"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "easyterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	var pt easyterm.Terminal
	err = pt.Initialise(f)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NotATerminal))
	test.ExpectFailure(t, pt.IsRaw())

	err = pt.Initialise(nil)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NotATerminal))
}
