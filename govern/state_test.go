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

package govern_test

import (
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/govern"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.State(99).String(), "")

	test.ExpectFailure(t, govern.Initialising.Stopped())
	test.ExpectFailure(t, govern.Running.Stopped())
	test.ExpectSuccess(t, govern.Halted.Stopped())
	test.ExpectSuccess(t, govern.Ending.Stopped())
}
