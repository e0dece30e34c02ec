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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/prefs"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.String(), "false")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectFailure(t, b.Set(10))
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectEquality(t, i.String(), "0")

	test.ExpectSuccess(t, i.Set("0x01000000"))
	test.ExpectEquality(t, i.Get().(int), 0x01000000)

	test.ExpectSuccess(t, i.Set(uint32(7)))
	test.ExpectEquality(t, i.Get().(int), 7)

	test.ExpectFailure(t, i.Set("sixteen"))
	test.ExpectEquality(t, i.Get().(int), 7)

	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("callout"))
	test.ExpectEquality(t, s.String(), "callout")

	s.SetMaxLen(4)
	test.ExpectEquality(t, s.String(), "call")

	test.ExpectSuccess(t, s.Set("allocated"))
	test.ExpectEquality(t, s.String(), "allo")
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var post int

	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook rejects the value so it is never stored
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestApplyCommandLine(t *testing.T) {
	var size prefs.Int
	test.ExpectSuccess(t, size.Set(16))

	prefs.PushCommandLineStack("ram.size::0x2000; ram.mode::callout")
	test.ExpectSuccess(t, prefs.ApplyCommandLine("ram.size", &size))
	test.ExpectEquality(t, size.Get().(int), 0x2000)

	// the value was consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "ram.mode::callout")

	// nothing on the stack is not an error
	test.ExpectSuccess(t, prefs.ApplyCommandLine("ram.size", &size))
	test.ExpectEquality(t, size.Get().(int), 0x2000)
}
