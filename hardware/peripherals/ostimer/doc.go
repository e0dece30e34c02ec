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

// Package ostimer implements the OS timer: a free running counter and four
// match registers. A match sets the corresponding status bit, which raises
// interrupt line OST0+n while the interrupt enable bit for the channel is set.
//
// The counter is advanced only by the scheduler, never by reading the host
// clock.
package ostimer
