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

package hardware_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/environment"
	"github.com/ElectroBoy404NotFound/uARM/govern"
	"github.com/ElectroBoy404NotFound/uARM/hardware"
	"github.com/ElectroBoy404NotFound/uARM/hardware/cpu"
	"github.com/ElectroBoy404NotFound/uARM/hardware/hypercall"
	"github.com/ElectroBoy404NotFound/uARM/hardware/memory"
	"github.com/ElectroBoy404NotFound/uARM/hardware/mmu"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/ostimer"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/uart"
	"github.com/ElectroBoy404NotFound/uARM/prefs"
	"github.com/ElectroBoy404NotFound/uARM/test"
)

// core is a CPU core driven by a Go function
type core struct {
	bus   cpu.Bus
	regs  [cpu.NumRegisters]uint32
	steps int
	step  func(c *core) error
}

func (c *core) Reg(n int) uint32 {
	return c.regs[n]
}

func (c *core) SetReg(n int, v uint32) {
	c.regs[n] = v
}

func (c *core) Step() error {
	c.steps++
	if c.step != nil {
		return c.step(c)
	}
	return nil
}

func (c *core) read32(va uint32) (uint32, bool) {
	var b [4]byte
	_, ok := c.bus.Memory(b[:], va, 4, false, true)
	return binary.LittleEndian.Uint32(b[:]), ok
}

func (c *core) write32(va uint32, v uint32) bool {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, ok := c.bus.Memory(b[:], va, 4, true, true)
	return ok
}

func newSoC(t *testing.T, commandLine string, host hardware.HostIO) (*hardware.SoC, *core) {
	t.Helper()

	prefs.PushCommandLineStack(commandLine)
	env, err := environment.NewEnvironment("test", nil)
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)
	env.Quiet = true

	c := &core{}
	soc, err := hardware.NewSoC(env, host, func(bus cpu.Bus, reset uint32) (cpu.Core, error) {
		c.bus = bus
		c.regs[cpu.PC] = reset
		return c, nil
	})
	test.DemandSuccess(t, err)

	return soc, c
}

func TestMemoryMap(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})

	test.ExpectEquality(t, len(soc.Mem.Regions()), 12)
	test.ExpectEquality(t, soc.RAMSize(), uint32(0x01000000))
	test.ExpectSuccess(t, strings.Contains(soc.MemorySummary(), "a0000000 -> a0ffffff\tRAM"))
	test.ExpectSuccess(t, strings.Contains(soc.MemorySummary(), "00000000 -> 00000033\tROM"))

	// reset vector is the start of ROM and ROM holds the boot image
	test.ExpectEquality(t, c.regs[cpu.PC], uint32(0))
	w, ok := c.read32(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, binary.LittleEndian.Uint32(hardware.BootImage()))

	// ROM is read only
	test.ExpectFailure(t, c.write32(0, 0))
	w, _ = c.read32(0)
	test.ExpectEquality(t, w, binary.LittleEndian.Uint32(hardware.BootImage()))

	test.ExpectSuccess(t, c.write32(0xa0000100, 0x12345678))
	w, ok = c.read32(0xa0000100)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, uint32(0x12345678))
}

func TestUnmappedAccess(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})
	ram := append([]byte{}, soc.RAM.Bytes()...)

	var b [4]byte
	fs, ok := c.bus.Memory(b[:], 0x50000000, 4, true, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, mmu.FaultStatus(fs), mmu.ExternalAbort)
	test.ExpectEquality(t, soc.CP15.FaultAddress(), uint32(0x50000000))

	// misaligned accesses never reach memory
	fs, ok = c.bus.Memory(b[:], 0xa0fffffe, 4, true, true)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, mmu.FaultStatus(fs), mmu.AlignmentFault)

	test.ExpectSuccess(t, string(ram) == string(soc.RAM.Bytes()))
}

func TestDeviceAccess(t *testing.T) {
	_, c := newSoC(t, "", hardware.HostIO{})

	// device registers only allow word access
	var b [2]byte
	_, ok := c.bus.Memory(b[:], 0x40a00010, 2, false, true)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, c.write32(0x40a00000, 0xabcd))
	w, ok := c.read32(0x40a00000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, uint32(0xabcd))
}

func TestTimerTick(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})

	_ = soc.Timer.Write(ostimer.OSMR0, 1)
	_ = soc.Timer.Write(ostimer.OIER, 1)
	_ = soc.IC.Write(intc.ICMR, 1<<intc.OST0)

	var seen int
	c.step = func(c *core) error {
		if irq, _ := c.bus.Interrupts(); irq && seen == 0 {
			seen = c.steps
		}
		return nil
	}

	for i := 0; i < 32; i++ {
		test.DemandSuccess(t, soc.Step())
	}

	// the interrupt raised by the eighth iteration's tick is visible to the
	// eighth step
	test.ExpectEquality(t, seen, 8)
	test.ExpectEquality(t, soc.Cycles(), uint32(32))

	oscr, _ := soc.Timer.Read(ostimer.OSCR)
	test.ExpectEquality(t, oscr, uint32(4))
}

func TestTickMasks(t *testing.T) {
	soc, _ := newSoC(t, "sched.timer::0x1", hardware.HostIO{})

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, soc.Step())
	}
	oscr, _ := soc.Timer.Read(ostimer.OSCR)
	test.ExpectEquality(t, oscr, uint32(5))
}

// countingConsole never has a character but counts how often it is polled
type countingConsole struct {
	reads int
}

func (con *countingConsole) ReadChar() uart.Char {
	con.reads++
	return uart.CharNone
}

func (con *countingConsole) WriteChar(_ uart.Char) {
}

func TestTickDivisors(t *testing.T) {
	for _, c := range []struct {
		commandLine string
		steps       int
		timer       uint32
		uart        int
		rtc         int
	}{
		{"", 0x2000, 0x400, 0x20, 2},
		{"sched.timer::0x1; sched.uart::0x3; sched.rtc::0x7", 32, 16, 8, 4},
	} {
		con := &countingConsole{}

		// the clock is read once when the RTC is created and once per update
		var clockReads int
		clock := func() time.Time {
			clockReads++
			return time.Unix(1000, 0)
		}

		soc, _ := newSoC(t, c.commandLine, hardware.HostIO{Console: con, Clock: clock})

		for i := 0; i < c.steps; i++ {
			test.DemandSuccess(t, soc.Step())
		}

		oscr, _ := soc.Timer.Read(ostimer.OSCR)
		test.ExpectEquality(t, oscr, c.timer, c.commandLine)
		test.ExpectEquality(t, con.reads, c.uart, c.commandLine)
		test.ExpectEquality(t, clockReads-1, c.rtc, c.commandLine)
	}
}

func TestHalt(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})

	c.step = func(c *core) error {
		if c.steps == 3 {
			c.regs[hypercall.Selector] = hypercall.Halt
			if !c.bus.Hypercall(c) {
				return errors.New("halt not handled")
			}
		}
		return nil
	}

	test.ExpectSuccess(t, soc.Running())
	test.DemandSuccess(t, soc.Run(nil))
	test.ExpectEquality(t, c.steps, 3)
	test.ExpectFailure(t, soc.Running())
	test.ExpectEquality(t, soc.State(), govern.Halted)

	// running again does nothing
	test.DemandSuccess(t, soc.Run(nil))
	test.ExpectEquality(t, c.steps, 3)
}

func TestContinueCheck(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})

	err := soc.Run(func() (govern.State, error) {
		if c.steps == 100 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.steps, 100)
	test.ExpectEquality(t, soc.State(), govern.Ending)
}

func TestEmulationError(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})

	c.step = func(c *core) error {
		return errors.New("undefined instruction")
	}
	err := soc.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.EmulationError))
	test.ExpectEquality(t, err.Error(), "Emulation error: <<undefined instruction>>")
}

func TestRAMSizeHypercall(t *testing.T) {
	_, c := newSoC(t, "ram.size::0x00800000", hardware.HostIO{})

	c.regs[hypercall.Selector] = hypercall.RAMSize
	test.ExpectSuccess(t, c.bus.Hypercall(c))
	test.ExpectEquality(t, c.regs[0], uint32(0x00800000))
}

func TestCalloutRAM(t *testing.T) {
	words := make(map[uint32]uint32)
	co := &memory.Callout{
		WordGet: func(idx uint32) uint32 { return words[idx] },
		WordSet: func(idx uint32, v uint32) { words[idx] = v },
	}

	soc, c := newSoC(t, "ram.mode::callout", hardware.HostIO{RAM: co})
	test.ExpectEquality(t, soc.RAM, nil)

	test.ExpectSuccess(t, c.write32(0xa0000010, 0xcafef00d))
	test.ExpectEquality(t, words[4], uint32(0xcafef00d))

	var b [1]byte
	_, ok := c.bus.Memory(b[:], 0xa0000011, 1, false, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b[0], byte(0xf0))
}

func TestCalloutMissing(t *testing.T) {
	prefs.PushCommandLineStack("ram.mode::callout")
	env, err := environment.NewEnvironment("test", nil)
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	_, err = hardware.NewSoC(env, hardware.HostIO{}, nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.InitError))
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "Cannot init coRAM"))
}

func TestCoreError(t *testing.T) {
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)

	_, err = hardware.NewSoC(env, hardware.HostIO{}, func(cpu.Bus, uint32) (cpu.Core, error) {
		return nil, errors.New("no core")
	})
	test.ExpectEquality(t, err.Error(), "Cannot init CPU: no core")
}

func TestCoprocessors(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})

	test.ExpectEquality(t, c.bus.Coprocessor(15), cpu.Coprocessor(soc.CP15))
	test.ExpectEquality(t, c.bus.Coprocessor(14), cpu.Coprocessor(soc.PwrClk))
	test.ExpectEquality(t, c.bus.Coprocessor(1), nil)

	// the DSP is hidden until enabled in the coprocessor access register
	test.ExpectEquality(t, c.bus.Coprocessor(0), nil)
	test.ExpectSuccess(t, soc.CP15.MCR(0, 15, 1, 0, 0x1))
	cp0 := c.bus.Coprocessor(0)
	test.ExpectEquality(t, cp0, cpu.Coprocessor(soc.DSP))

	_, ok := cp0.(cpu.DoubleCoprocessor)
	test.ExpectSuccess(t, ok)
	_, ok = cp0.(cpu.Accumulator)
	test.ExpectSuccess(t, ok)
}

func TestFaultRecording(t *testing.T) {
	soc, c := newSoC(t, "faults.log::true", hardware.HostIO{})

	var b [4]byte
	for i := 0; i < 3; i++ {
		c.bus.Memory(b[:], 0x60000000, 4, false, true)
	}
	c.bus.SetFault(0x1002, 0x1)

	test.ExpectEquality(t, soc.CP15.FaultAddress(), uint32(0x1002))
	test.ExpectEquality(t, soc.CP15.FaultStatus(), mmu.AlignmentFault)

	var s strings.Builder
	soc.WriteFaultLog(&s)
	test.ExpectEquality(t, strings.Count(s.String(), "\n"), 2)
	test.ExpectSuccess(t, strings.Contains(s.String(), "x3"))
}

func TestDumpState(t *testing.T) {
	soc, c := newSoC(t, "", hardware.HostIO{})
	c.regs[1] = 0xff
	c.regs[cpu.CPSR] = 0xd3

	var s strings.Builder
	soc.DumpState(&s)
	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.ExpectEquality(t, len(lines), 18)
	test.ExpectEquality(t, lines[1], "R1\t= 0xff")
	test.ExpectEquality(t, lines[16], "CPSR\t= 0xd3")
	test.ExpectEquality(t, lines[17], "SPSR\t= 0x0")
}

func TestVisualise(t *testing.T) {
	soc, _ := newSoC(t, "", hardware.HostIO{})

	var s strings.Builder
	soc.Visualise(&s)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "digraph"))
}
