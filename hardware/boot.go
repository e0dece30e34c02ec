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

package hardware

// the embedded boot image is placed in ROM at reset. it is Thumb code that
// reads the first sector of the block device with the hypercalls, copies the
// sector to the start of RAM and jumps to it
var bootImage = []byte{
	0x01, 0x00, 0x8f, 0xe2, 0x10, 0xff, 0x2f, 0xe1, 0x04, 0x27, 0x01, 0x20, 0x00, 0x21, 0x00, 0xf0,
	0x0d, 0xf8, 0x0a, 0x24, 0x24, 0x07, 0x65, 0x1c, 0x05, 0x27, 0x00, 0x22, 0x00, 0xf0, 0x06, 0xf8,
	0x20, 0x60, 0x24, 0x1d, 0x49, 0x1c, 0x80, 0x29, 0xf8, 0xd1, 0x28, 0x47, 0xbc, 0x46, 0xbb, 0xbb,
	0x70, 0x47,
}

// BootImage returns a copy of the embedded boot image.
func BootImage() []byte {
	b := make([]byte, len(bootImage))
	copy(b, bootImage)
	return b
}
