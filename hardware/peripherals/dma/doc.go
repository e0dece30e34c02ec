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

// Package dma implements the sixteen channel DMA controller. Transfers are
// synchronous: writing the RUN bit of a channel's DCSR performs the whole
// transfer, or the whole descriptor chain, before the write returns.
//
// Memory is accessed through the physical address space. Descriptors are read
// with Read32() and data is copied a word at a time when the addresses and the
// length allow it, otherwise a byte at a time.
//
// Peripheral flow control is not modelled. A transfer with FLOWSRC or FLOWTRG
// set completes immediately like any other.
package dma
