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

// Area represents the different areas of the physical address space.
type Area int

// List of valid Area values.
const (
	Undefined Area = iota
	ROM
	DMA
	FFUART
	BTUART
	STUART
	RTC
	OSTimer
	IntC
	GPIO
	Power
	Clock
	RAM
)

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case DMA:
		return "DMA"
	case FFUART:
		return "FFUART"
	case BTUART:
		return "BTUART"
	case STUART:
		return "STUART"
	case RTC:
		return "RTC"
	case OSTimer:
		return "OS Timers"
	case IntC:
		return "Interrupt Controller"
	case GPIO:
		return "GPIO"
	case Power:
		return "Power Manager"
	case Clock:
		return "Clock Manager"
	case RAM:
		return "RAM"
	}
	return "undefined"
}

// The origin of each area of the physical address space.
const (
	OriginROM     = uint32(0x00000000)
	OriginDMA     = uint32(0x40000000)
	OriginFFUART  = uint32(0x40100000)
	OriginBTUART  = uint32(0x40200000)
	OriginSTUART  = uint32(0x40700000)
	OriginRTC     = uint32(0x40900000)
	OriginOSTimer = uint32(0x40A00000)
	OriginIntC    = uint32(0x40D00000)
	OriginGPIO    = uint32(0x40E00000)
	OriginPower   = uint32(0x40F00000)
	OriginClock   = uint32(0x41300000)
	OriginRAM     = uint32(0xA0000000)
)

// DeviceSize is the size of the register block of every peripheral.
const DeviceSize = uint32(0x00010000)

// MaxROMSize is the largest boot image that can be placed in ROM.
const MaxROMSize = 52

// origins of the areas in address order. ROM and RAM have variable sizes and
// are not included
var devices = []struct {
	origin uint32
	area   Area
}{
	{OriginDMA, DMA},
	{OriginFFUART, FFUART},
	{OriginBTUART, BTUART},
	{OriginSTUART, STUART},
	{OriginRTC, RTC},
	{OriginOSTimer, OSTimer},
	{OriginIntC, IntC},
	{OriginGPIO, GPIO},
	{OriginPower, Power},
	{OriginClock, Clock},
}

// MapAddress returns the device Area containing the address and the address
// relative to the origin of that area. ROM and RAM cannot be identified by
// address alone because their sizes are configured at runtime. Undefined is
// returned for any address outside of a device area.
func MapAddress(address uint32) (uint32, Area) {
	for _, d := range devices {
		if address >= d.origin && address-d.origin < DeviceSize {
			return address - d.origin, d.area
		}
	}
	return address, Undefined
}
