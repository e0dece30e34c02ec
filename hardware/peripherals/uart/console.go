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

package uart

// Char is a character passed between the UART and the host console. Values
// 0x00 to 0xff are data. The negative values are conditions.
type Char int

// Conditions returned by Console.ReadChar().
const (
	// no character is waiting
	CharNone Char = -1

	// the host has signalled a break condition
	CharBreak Char = -2
)

// Console is the host side of a UART. ReadChar() must not block.
type Console interface {
	ReadChar() Char
	WriteChar(c Char)
}
