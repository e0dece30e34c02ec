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

// Package hypercall implements the call gate through which guest code reaches
// the host. A hypercall is a reserved trap instruction. The CPU core calls
// Dispatch() with the current register file and the hypercall number is taken
// from R12.
//
//	R12  operation
//	 0   halt the machine
//	 1   print R0 as a decimal number on the diagnostic output
//	 2   print the low byte of R0 as a character on the diagnostic output
//	 3   R0 = size of RAM in bytes
//	 4   block device operation R0 (size, read, write) on sector R1
//	 5   block buffer word R1: R2 == 0 reads into R0, R2 == 1 writes from R0
//
// Sector data passes through the BlockBuffer, a 512 byte buffer that the guest
// fills or empties a word at a time with hypercall 5.
package hypercall
