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

// Package cp15 implements the system control coprocessor. It owns the control
// register, the translation table base, the domain access control register
// and the process ID, and passes them on to the MMU.
//
// CP15 is also the fault recorder. The MMU reports failed translations with
// SetFaultStatus() and the core reads them back through FaultAddress() and
// FaultStatus(), or through MRC instructions to c5 and c6. The values are
// undefined until the first fault.
package cp15
