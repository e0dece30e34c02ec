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

package gpio_test

import (
	"testing"

	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/gpio"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

func newGPIO() (*gpio.GPIO, *intc.Controller) {
	ic := intc.NewController()
	_ = ic.Write(intc.ICMR, 0xffffffff)
	return gpio.NewGPIO(ic), ic
}

func TestOutput(t *testing.T) {
	g, _ := newGPIO()

	// bank 1, pin 40
	test.ExpectSuccess(t, g.Write(gpio.GPDR+4, 1<<8))
	test.ExpectSuccess(t, g.Write(gpio.GPSR+4, 1<<8))
	test.ExpectSuccess(t, g.Level(40))
	v, _ := g.Read(gpio.GPLR + 4)
	test.ExpectEquality(t, v, uint32(1<<8))

	test.ExpectSuccess(t, g.Write(gpio.GPCR+4, 1<<8))
	test.ExpectFailure(t, g.Level(40))

	// external level is ignored for outputs
	g.SetInput(40, true)
	test.ExpectFailure(t, g.Level(40))
}

func TestEdges(t *testing.T) {
	g, ic := newGPIO()

	test.ExpectSuccess(t, g.Write(gpio.GRER, 0x1))
	test.ExpectSuccess(t, g.Write(gpio.GFER+8, 0x4))

	g.SetInput(0, true)
	v, _ := g.Read(gpio.GEDR)
	test.ExpectEquality(t, v, uint32(0x1))
	line, _ := ic.Highest()
	test.ExpectEquality(t, line, intc.GPIO0)

	// falling edge not enabled on pin 0
	test.ExpectSuccess(t, g.Write(gpio.GEDR, 0x1))
	g.SetInput(0, false)
	irq, _ := ic.Pending()
	test.ExpectFailure(t, irq)

	// pin 66 in bank 2 falling edge
	g.SetInput(66, true)
	irq, _ = ic.Pending()
	test.ExpectFailure(t, irq)
	g.SetInput(66, false)
	line, _ = ic.Highest()
	test.ExpectEquality(t, line, intc.GPIOx)

	test.ExpectSuccess(t, g.Write(gpio.GEDR+8, 0x4))
	irq, _ = ic.Pending()
	test.ExpectFailure(t, irq)
}

func TestAlternateFunction(t *testing.T) {
	g, _ := newGPIO()
	test.ExpectSuccess(t, g.Write(gpio.GAFR+0x14, 0xaaaa))
	v, _ := g.Read(gpio.GAFR + 0x14)
	test.ExpectEquality(t, v, uint32(0xaaaa))

	_, ok := g.Read(gpio.GAFR + 0x18)
	test.ExpectFailure(t, ok)
}
