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

// Package govern defines the states of a running emulation. The State is
// returned by the continue check function passed to hardware.SoC.Run() and
// allows the caller to end an emulation that the guest has not halted.
package govern
