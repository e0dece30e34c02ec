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

import (
	"fmt"
	"io"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/environment"
	"github.com/ElectroBoy404NotFound/uARM/govern"
	"github.com/ElectroBoy404NotFound/uARM/hardware/cp15"
	"github.com/ElectroBoy404NotFound/uARM/hardware/cpu"
	"github.com/ElectroBoy404NotFound/uARM/hardware/faults"
	"github.com/ElectroBoy404NotFound/uARM/hardware/hypercall"
	"github.com/ElectroBoy404NotFound/uARM/hardware/memory"
	"github.com/ElectroBoy404NotFound/uARM/hardware/memory/memorymap"
	"github.com/ElectroBoy404NotFound/uARM/hardware/mmu"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/dma"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/dsp"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/gpio"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/ostimer"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/pwrclk"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/rtc"
	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/uart"
	"github.com/ElectroBoy404NotFound/uARM/hardware/preferences"
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// Patterns for machine errors.
const (
	InitError      = "Cannot init %s: %v"
	EmulationError = "Emulation error: <<%v>>"
)

// HostIO collates the host resources used by the machine. All fields are
// optional except RAM, which is required when the RAM mode preference is
// "callout".
type HostIO struct {
	// console attached to the FFUART. the other UARTs are not connected
	Console uart.Console

	// block device reached by the block hypercalls
	Disk hypercall.BlockDevice

	// output for the print hypercalls
	Diagnostic io.Writer

	// host functions backing RAM in callout mode
	RAM *memory.Callout

	// host clock used by the RTC. defaults to time.Now
	Clock rtc.Clock
}

// SoC is the emulated PXA255 system-on-chip.
type SoC struct {
	env *environment.Environment

	CPU cpu.Core

	Mem  *memory.Space
	MMU  *mmu.MMU
	CP15 *cp15.CP15

	// nil unless the faults.log preference is set
	Faults *faults.Faults

	ROM *memory.Allocated

	// nil when RAM is in callout mode
	RAM *memory.Allocated

	IC     *intc.Controller
	Timer  *ostimer.Timer
	RTC    *rtc.RTC
	FFUART *uart.UART
	BTUART *uart.UART
	STUART *uart.UART
	PwrClk *pwrclk.PwrClk
	GPIO   *gpio.GPIO
	DMA    *dma.DMA
	DSP    *dsp.DSP

	Hypercalls *hypercall.Gate

	ramSize uint32
	state   govern.State

	// free running cycle counter and the scheduler masks
	cycles    uint32
	timerMask uint32
	uartMask  uint32
	rtcMask   uint32
}

// NewSoC creates the machine. The core factory is called last, once the
// machine is ready to receive callbacks.
func NewSoC(env *environment.Environment, host HostIO, core cpu.Factory) (*SoC, error) {
	soc := &SoC{
		env:       env,
		ramSize:   uint32(env.Prefs.RAMSize.Get().(int)),
		timerMask: uint32(env.Prefs.TimerMask.Get().(int)),
		uartMask:  uint32(env.Prefs.UARTMask.Get().(int)),
		rtcMask:   uint32(env.Prefs.RTCMask.Get().(int)),
	}

	soc.Mem = memory.NewSpace()
	soc.MMU = mmu.NewMMU(soc.Mem)

	if len(bootImage) > memorymap.MaxROMSize {
		return nil, curated.Errorf(InitError, "ROM", "boot image too large")
	}
	romSize := uint32(len(bootImage)+3) &^ 3
	soc.ROM = memory.NewAllocated(romSize, true)
	soc.ROM.Load(bootImage)
	if err := soc.install("ROM", memorymap.OriginROM, romSize, soc.ROM); err != nil {
		return nil, err
	}

	switch env.Prefs.RAMMode.String() {
	case preferences.RAMAllocated:
		soc.RAM = memory.NewAllocated(soc.ramSize, false)
		if err := soc.install("RAM", memorymap.OriginRAM, soc.ramSize, soc.RAM); err != nil {
			return nil, err
		}
	case preferences.RAMCallout:
		if host.RAM == nil {
			return nil, curated.Errorf(InitError, "coRAM", "no callout functions")
		}
		if err := soc.install("coRAM", memorymap.OriginRAM, soc.ramSize, memory.NewCallout(*host.RAM)); err != nil {
			return nil, err
		}
	}

	if env.Prefs.FaultLog.Get().(bool) {
		soc.Faults = faults.NewFaults()
	}
	soc.CP15 = cp15.NewCP15(env, soc.MMU, soc.Faults)

	soc.IC = intc.NewController()
	soc.Timer = ostimer.NewTimer(env, soc.IC)
	soc.RTC = rtc.NewRTC(soc.IC, host.Clock)
	soc.FFUART = uart.NewUART("FFUART", intc.FFUART, soc.IC, host.Console)
	soc.BTUART = uart.NewUART("BTUART", intc.BTUART, soc.IC, nil)
	soc.STUART = uart.NewUART("STUART", intc.STUART, soc.IC, nil)
	soc.PwrClk = pwrclk.NewPwrClk(env)
	soc.GPIO = gpio.NewGPIO(soc.IC)
	soc.DMA = dma.NewDMA(env, soc.IC, soc.Mem)
	soc.DSP = dsp.NewDSP()

	for _, d := range []struct {
		name   string
		origin uint32
		regs   memory.Registers
	}{
		{"PXA255's interrupt controller", memorymap.OriginIntC, soc.IC},
		{"PXA255's OS timers", memorymap.OriginOSTimer, soc.Timer},
		{"PXA255's RTC", memorymap.OriginRTC, soc.RTC},
		{"PXA255's FFUART", memorymap.OriginFFUART, soc.FFUART},
		{"PXA255's BTUART", memorymap.OriginBTUART, soc.BTUART},
		{"PXA255's STUART", memorymap.OriginSTUART, soc.STUART},
		{"PXA255's Power manager", memorymap.OriginPower, soc.PwrClk.Power()},
		{"PXA255's Clock manager", memorymap.OriginClock, soc.PwrClk.Clock()},
		{"PXA255's GPIO controller", memorymap.OriginGPIO, soc.GPIO},
		{"PXA255's DMA controller", memorymap.OriginDMA, soc.DMA},
	} {
		if err := soc.install(d.name, d.origin, memorymap.DeviceSize, memory.NewDevice(d.regs)); err != nil {
			return nil, err
		}
	}

	soc.Hypercalls = hypercall.NewGate(env, soc, host.Disk, host.Diagnostic)

	var err error
	soc.CPU, err = core(soc, memorymap.OriginROM)
	if err != nil {
		return nil, curated.Errorf(InitError, "CPU", err)
	}

	soc.state = govern.Running
	logger.Logf(env, "soc", "%d bytes of RAM (%s)", soc.ramSize, env.Prefs.RAMMode.String())

	return soc, nil
}

func (soc *SoC) install(name string, base uint32, size uint32, h memory.Handler) error {
	err := soc.Mem.Install(memory.Region{
		Name:    name,
		Base:    base,
		Size:    size,
		Handler: h,
	})
	if err != nil {
		return curated.Errorf(InitError, name, err)
	}
	return nil
}

func (soc *SoC) String() string {
	return fmt.Sprintf("%s: cycles=%d", soc.state, soc.cycles)
}

// Halt stops the machine. The scheduler finishes the current step and
// returns. Implements the hypercall.Machine interface.
func (soc *SoC) Halt() {
	if soc.state == govern.Running {
		soc.state = govern.Halted
	}
}

// Running returns true until the machine has been halted.
func (soc *SoC) Running() bool {
	return soc.state == govern.Running
}

// State returns the current state of the machine.
func (soc *SoC) State() govern.State {
	return soc.state
}

// RAMSize implements the hypercall.Machine interface.
func (soc *SoC) RAMSize() uint32 {
	return soc.ramSize
}

// Cycles returns the value of the scheduler's cycle counter.
func (soc *SoC) Cycles() uint32 {
	return soc.cycles
}

// MemorySummary returns the memory map of the machine as a string.
func (soc *SoC) MemorySummary() string {
	return memorymap.Summary(uint32(len(soc.ROM.Bytes())), soc.ramSize)
}

// Memory implements the cpu.Bus interface.
func (soc *SoC) Memory(buf []byte, va uint32, size int, write bool, privileged bool) (uint8, bool) {
	pa, fs, ok := soc.MMU.Translate(va, size, write, privileged)
	if !ok {
		return uint8(fs), false
	}
	if !soc.Mem.Access(pa, size, write, buf) {
		soc.CP15.SetFaultStatus(va, mmu.ExternalAbort)
		return uint8(mmu.ExternalAbort), false
	}
	return 0, true
}

// Hypercall implements the cpu.Bus interface.
func (soc *SoC) Hypercall(regs cpu.Registers) bool {
	return soc.Hypercalls.Dispatch(regs)
}

// SetFault implements the cpu.Bus interface.
func (soc *SoC) SetFault(addr uint32, status uint8) {
	soc.CP15.SetFaultStatus(addr, mmu.FaultStatus(status))
}

// Interrupts implements the cpu.Bus interface.
func (soc *SoC) Interrupts() (bool, bool) {
	return soc.IC.Pending()
}

// Coprocessor implements the cpu.Bus interface. Coprocessor 0 is only
// available when enabled in the coprocessor access register.
func (soc *SoC) Coprocessor(n int) cpu.Coprocessor {
	switch n {
	case 0:
		if soc.CP15.CoprocessorAccess(0) {
			return soc.DSP
		}
	case 14:
		return soc.PwrClk
	case 15:
		return soc.CP15
	}
	return nil
}
