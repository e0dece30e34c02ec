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

package scripted

import (
	"encoding/binary"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/hardware/cpu"
	lua "github.com/yuin/gopher-lua"
)

// Patterns for scripted core errors.
const (
	ScriptError = "scripted: %v"
	NoStep      = "scripted: script does not define a step() function"
)

// the mode bits of the CPSR for user mode. every other mode is privileged
const (
	modeMask = 0x1f
	modeUser = 0x10
)

// Core is a cpu.Core that runs a Lua script. The script must define a global
// function step(), which is called once per CPU step. Returning false from
// step() is an emulation error.
//
// The following functions are available to the script:
//
//	reg(n)                          value of register n. CPSR is 16, SPSR 17
//	setreg(n, v)                    set register n
//	read(va, size)                  memory read. returns value or nil, fsr
//	write(va, size, v)              memory write. returns true or false, fsr
//	hypercall(n)                    hypercall n with the current registers
//	interrupts()                    irq, fiq
//	fault(addr, status)             record a fault
//	mcr(cp, op1, crn, crm, op2, v)  coprocessor register write
//	mrc(cp, op1, crn, crm, op2)     coprocessor register read. value or nil
//
// Memory accesses are privileged unless the CPSR mode is user mode.
type Core struct {
	bus  cpu.Bus
	L    *lua.LState
	step lua.LValue
	regs [cpu.NumRegisters]uint32
}

// NewFactory returns a cpu.Factory that creates a Core running the script.
func NewFactory(script string) cpu.Factory {
	return func(bus cpu.Bus, resetVector uint32) (cpu.Core, error) {
		return NewCore(bus, resetVector, script)
	}
}

// NewCore is the preferred method of initialisation for the Core type. The
// CPU starts in supervisor mode with IRQ and FIQ disabled.
func NewCore(bus cpu.Bus, resetVector uint32, script string) (*Core, error) {
	c := &Core{
		bus: bus,
		L:   lua.NewState(),
	}
	c.regs[cpu.PC] = resetVector
	c.regs[cpu.CPSR] = 0xd3

	for name, fn := range map[string]lua.LGFunction{
		"reg":        c.reg,
		"setreg":     c.setreg,
		"read":       c.read,
		"write":      c.write,
		"hypercall":  c.hypercall,
		"interrupts": c.interrupts,
		"fault":      c.fault,
		"mcr":        c.mcr,
		"mrc":        c.mrc,
	} {
		c.L.SetGlobal(name, c.L.NewFunction(fn))
	}

	if err := c.L.DoString(script); err != nil {
		c.L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}

	c.step = c.L.GetGlobal("step")
	if c.step.Type() != lua.LTFunction {
		c.L.Close()
		return nil, curated.Errorf(NoStep)
	}

	return c, nil
}

// Close releases the Lua state.
func (c *Core) Close() {
	c.L.Close()
}

// Reg implements the cpu.Registers interface.
func (c *Core) Reg(n int) uint32 {
	return c.regs[n]
}

// SetReg implements the cpu.Registers interface.
func (c *Core) SetReg(n int, v uint32) {
	c.regs[n] = v
}

// Step implements the cpu.Core interface.
func (c *Core) Step() error {
	err := c.L.CallByParam(lua.P{
		Fn:      c.step,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	ret := c.L.Get(-1)
	c.L.Pop(1)
	if ret == lua.LFalse {
		return curated.Errorf(ScriptError, "step() returned false")
	}

	return nil
}

func (c *Core) privileged() bool {
	return c.regs[cpu.CPSR]&modeMask != modeUser
}

func checkUint32(L *lua.LState, n int) uint32 {
	return uint32(int64(L.CheckNumber(n)))
}

func checkRegister(L *lua.LState, n int) int {
	r := L.CheckInt(n)
	if r < 0 || r >= cpu.NumRegisters {
		L.ArgError(n, "no such register")
	}
	return r
}

func (c *Core) reg(L *lua.LState) int {
	L.Push(lua.LNumber(c.regs[checkRegister(L, 1)]))
	return 1
}

func (c *Core) setreg(L *lua.LState) int {
	c.regs[checkRegister(L, 1)] = checkUint32(L, 2)
	return 0
}

func (c *Core) read(L *lua.LState) int {
	va := checkUint32(L, 1)
	size := L.OptInt(2, 4)
	if size < 1 || size > 4 {
		L.ArgError(2, "size must be 1, 2 or 4")
	}

	var b [4]byte
	fs, ok := c.bus.Memory(b[:], va, size, false, c.privileged())
	if !ok {
		L.Push(lua.LNil)
		L.Push(lua.LNumber(fs))
		return 2
	}
	L.Push(lua.LNumber(binary.LittleEndian.Uint32(b[:])))
	return 1
}

func (c *Core) write(L *lua.LState) int {
	va := checkUint32(L, 1)
	size := L.CheckInt(2)
	if size < 1 || size > 4 {
		L.ArgError(2, "size must be 1, 2 or 4")
	}

	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], checkUint32(L, 3))
	fs, ok := c.bus.Memory(b[:], va, size, true, c.privileged())
	L.Push(lua.LBool(ok))
	if !ok {
		L.Push(lua.LNumber(fs))
		return 2
	}
	return 1
}

func (c *Core) hypercall(L *lua.LState) int {
	c.regs[12] = checkUint32(L, 1)
	L.Push(lua.LBool(c.bus.Hypercall(c)))
	return 1
}

func (c *Core) interrupts(L *lua.LState) int {
	irq, fiq := c.bus.Interrupts()
	L.Push(lua.LBool(irq))
	L.Push(lua.LBool(fiq))
	return 2
}

func (c *Core) fault(L *lua.LState) int {
	c.bus.SetFault(checkUint32(L, 1), uint8(L.CheckInt(2)))
	return 0
}

func (c *Core) coprocessor(L *lua.LState) cpu.Coprocessor {
	return c.bus.Coprocessor(L.CheckInt(1))
}

func (c *Core) mcr(L *lua.LState) int {
	cp := c.coprocessor(L)
	if cp == nil {
		L.Push(lua.LFalse)
		return 1
	}
	ok := cp.MCR(uint8(L.CheckInt(2)), uint8(L.CheckInt(3)), uint8(L.CheckInt(4)), uint8(L.CheckInt(5)), checkUint32(L, 6))
	L.Push(lua.LBool(ok))
	return 1
}

func (c *Core) mrc(L *lua.LState) int {
	cp := c.coprocessor(L)
	if cp == nil {
		L.Push(lua.LNil)
		return 1
	}
	v, ok := cp.MRC(uint8(L.CheckInt(2)), uint8(L.CheckInt(3)), uint8(L.CheckInt(4)), uint8(L.CheckInt(5)))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}
