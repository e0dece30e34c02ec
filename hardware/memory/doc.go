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

// Package memory implements the physical address space of the machine.
//
// The Space type holds a list of non-overlapping regions. Every region is
// owned by a Handler, which is one of three backing stores chosen when the
// region is created:
//
//	NewAllocated()	memory owned by the emulator (RAM and ROM)
//	NewCallout()	memory owned by the host, accessed a word at a time
//	NewDevice()	the register block of a peripheral
//
// Every physical access is checked against the region list before any byte is
// touched. An access that is in no region, or that spans two regions, fails.
package memory
