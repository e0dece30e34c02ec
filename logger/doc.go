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

// Package logger is the central log for the emulator. Entries are tagged and
// consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// The central logger is accessed through the package level functions. Separate
// instances, created with NewLogger(), are useful for testing.
//
// Every logging request carries a Permission. The environment of an emulated
// machine implements the Permission interface so that a machine that has been
// told to be quiet will not add entries. The Allow value can be used when the
// request does not originate from an emulation.
package logger
