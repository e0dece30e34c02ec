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

// Package mmu translates virtual addresses to physical addresses. The
// translation tables are the ARMv5 short descriptor format, with the XScale
// extended small page in coarse tables.
//
// Translate() checks alignment, applies the fast context switch extension and
// then, if the MMU is enabled, walks the tables. Every table read goes through
// the physical address space. Failures are reported to the Recorder, which is
// normally the system control coprocessor.
package mmu
