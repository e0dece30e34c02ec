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

// Package scripted implements a CPU core driven by a Lua script. There is no
// instruction decoder. The script is called once per step and performs memory
// accesses, hypercalls and coprocessor transfers through the same bus
// callbacks an instruction core would use. This is useful for exercising the
// machine from the command line and for writing test firmware without an
// assembler.
//
// A script that prints the RAM size and halts:
//
//	function step()
//		hypercall(3)
//		hypercall(1)
//		hypercall(0)
//	end
package scripted
