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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// The RAM size is used to show the top of RAM. Useful for reference.
func Summary(romSize uint32, ramSize uint32) string {
	s := strings.Builder{}

	line := func(origin uint32, size uint32, area Area) {
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", origin, origin+size-1, area.String()))
	}

	line(OriginROM, romSize, ROM)
	for _, d := range devices {
		line(d.origin, DeviceSize, d.area)
	}
	line(OriginRAM, ramSize, RAM)

	return s.String()
}
