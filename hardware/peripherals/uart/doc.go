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

// Package uart implements the 16550 style serial ports. There are three in
// the machine (FFUART, BTUART and STUART) but normally only the FFUART is
// connected to the host console.
//
// Receiving is polled: the scheduler calls Process() periodically and one
// character is taken from the host console each time. A break from the host
// is queued in the receive FIFO and reported with LSR.BI when it reaches the
// head of the FIFO.
package uart
