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

// Package gpio implements the general purpose I/O controller: three banks of
// 32 lines with direction, set/clear, edge detection and alternate function
// registers.
//
// Edge detection on line 0 and line 1 raises their own interrupt lines. An
// edge on any other line raises the shared GPIOx interrupt.
package gpio
