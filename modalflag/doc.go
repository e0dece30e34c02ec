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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags directly, flags are defined on a
// Modes instance before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	logging := md.AddBool("log", false, "echo log to stdout")
//	md.AddSubModes("RUN", "DISK")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
// After Parse() the selected mode is returned by Mode(). A call to NewMode()
// then starts the flags for that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		ramMode := md.AddString("rammode", "allocated", "RAM backing")
//		p, err = md.Parse()
//		...
//	}
//
// Sub-mode names are case insensitive. If the first argument after the flags
// does not name a sub-mode then the default sub-mode (the first one added) is
// selected and the argument is left for RemainingArgs().
package modalflag
