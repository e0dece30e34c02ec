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

package hypercall

import "encoding/binary"

// BlockSize is the size in bytes of one sector of the block device.
const BlockSize = 512

// BlockWords is the number of words in the BlockBuffer.
const BlockWords = BlockSize / 4

// BlockBuffer stages one sector between the guest and the block device. The
// guest reaches it a word at a time through the buffer access hypercall. The
// block device sees it as bytes through Bytes() and SetBytes().
type BlockBuffer [BlockWords]uint32

// Bytes returns the buffer in little-endian byte order.
func (b *BlockBuffer) Bytes() []byte {
	p := make([]byte, BlockSize)
	for i, w := range b {
		binary.LittleEndian.PutUint32(p[i*4:], w)
	}
	return p
}

// SetBytes fills the buffer from p, which is in little-endian byte order. A
// short slice leaves the remainder of the buffer zeroed.
func (b *BlockBuffer) SetBytes(p []byte) {
	var s [BlockSize]byte
	copy(s[:], p)
	for i := range b {
		b[i] = binary.LittleEndian.Uint32(s[i*4:])
	}
}
