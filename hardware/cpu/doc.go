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

// Package cpu defines the contract between the machine and an ARM instruction
// core. The core itself is not part of this package: any type implementing
// Core can be attached to the machine through a Factory.
//
// The core sees the rest of the machine only through the Bus interface. Every
// memory reference goes through Bus.Memory(), which translates the virtual
// address and dispatches the physical access. The reserved trap instruction
// is passed to Bus.Hypercall().
//
// The scripted sub-package provides a Core driven by a Lua script, which is
// useful for testing the machine without an instruction set.
package cpu
