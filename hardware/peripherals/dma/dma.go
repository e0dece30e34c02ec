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

package dma

import (
	"fmt"
	"math/bits"

	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
	"github.com/ElectroBoy404NotFound/uARM/logger"
)

// NumChannels is the number of DMA channels.
const NumChannels = 16

// NumRequests is the number of request to channel map registers.
const NumRequests = 40

// Register offsets.
const (
	DCSR   = 0x000 // one per channel
	DINT   = 0x0f0
	DRCMR  = 0x100 // one per request
	DDADR  = 0x200 // DDADR, DSADR, DTADR and DCMD repeat every 16 bytes per channel
	DSADR  = 0x204
	DTADR  = 0x208
	DCMD   = 0x20c
	dmaTop = DDADR + NumChannels*0x10
)

// DCSR bits.
const (
	CsrRUN         = uint32(1 << 31)
	CsrNODESCFETCH = uint32(1 << 30)
	CsrSTOPIRQEN   = uint32(1 << 29)
	CsrSTOPSTATE   = uint32(1 << 3)
	CsrENDINTR     = uint32(1 << 2)
	CsrSTARTINTR   = uint32(1 << 1)
	CsrBUSERRINTR  = uint32(1 << 0)

	csrW1C    = CsrENDINTR | CsrSTARTINTR | CsrBUSERRINTR
	csrStored = CsrRUN | CsrNODESCFETCH | CsrSTOPIRQEN
)

// DCMD bits.
const (
	CmdINCSRCADDR = uint32(1 << 31)
	CmdINCTRGADDR = uint32(1 << 30)
	CmdSTARTIRQEN = uint32(1 << 22)
	CmdENDIRQEN   = uint32(1 << 21)
	CmdLEN        = uint32(0x1fff)
)

// DDADR bit indicating the end of a descriptor chain.
const DescriptorStop = uint32(1 << 0)

// the largest number of descriptors processed for one write to DCSR.RUN. a
// circular chain would otherwise never finish
const maxChain = 4096

// the largest number of channel starts for one write to DCSR.RUN. channels
// that start each other through their own transfers would otherwise never
// finish
const maxStarts = 256

// Bus is physical memory as seen by the DMA controller. Addresses are never
// translated.
type Bus interface {
	Access(pa uint32, size int, write bool, buf []byte) bool
	Read32(pa uint32) (uint32, bool)
}

type channel struct {
	csr  uint32
	desc uint32
	src  uint32
	trg  uint32
	cmd  uint32
}

func (ch *channel) interrupting() bool {
	return ch.csr&csrW1C != 0 || (ch.csr&CsrSTOPSTATE != 0 && ch.csr&CsrSTOPIRQEN != 0)
}

// DMA is the DMA controller. Transfers run to completion when the RUN bit is
// written.
type DMA struct {
	env   logger.Permission
	lines intc.Lines
	bus   Bus

	channels [NumChannels]channel
	requests [NumRequests]uint32

	// the channel currently transferring or -1. a transfer can write to the
	// DMA registers, in which case channels started by the transfer are
	// added to the pending mask and run once the active channel has stopped
	active  int
	pending uint32
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA(env logger.Permission, lines intc.Lines, bus Bus) *DMA {
	d := &DMA{
		env:    env,
		lines:  lines,
		bus:    bus,
		active: -1,
	}
	for i := range d.channels {
		d.channels[i].csr = CsrSTOPSTATE
	}
	return d
}

func (d *DMA) String() string {
	var n int
	for i := range d.channels {
		if d.channels[i].csr&CsrRUN != 0 {
			n++
		}
	}
	return fmt.Sprintf("DMA: %d channels running, DINT=%04x", n, d.dint())
}

func (d *DMA) dint() uint32 {
	var v uint32
	for i := range d.channels {
		if d.channels[i].interrupting() {
			v |= 1 << i
		}
	}
	return v
}

func (d *DMA) update() {
	if d.dint() != 0 {
		d.lines.Assert(intc.DMA)
	} else {
		d.lines.Deassert(intc.DMA)
	}
}

// copy the block described by the channel's registers. returns false on a
// bus error
func (d *DMA) transfer(ch *channel) bool {
	length := ch.cmd & CmdLEN

	size := 4
	if length&0x3 != 0 || ch.src&0x3 != 0 || ch.trg&0x3 != 0 {
		size = 1
	}

	var buf [4]byte
	for n := uint32(0); n < length; n += uint32(size) {
		if !d.bus.Access(ch.src, size, false, buf[:]) {
			return false
		}
		if !d.bus.Access(ch.trg, size, true, buf[:]) {
			return false
		}
		if ch.cmd&CmdINCSRCADDR != 0 {
			ch.src += uint32(size)
		}
		if ch.cmd&CmdINCTRGADDR != 0 {
			ch.trg += uint32(size)
		}
	}

	// length counts down to zero as the transfer progresses
	ch.cmd &^= CmdLEN
	return true
}

// complete a single transfer, raising start and end interrupts as enabled.
// returns false on a bus error
func (d *DMA) block(ch *channel) bool {
	if ch.cmd&CmdSTARTIRQEN != 0 {
		ch.csr |= CsrSTARTINTR
	}
	end := ch.cmd&CmdENDIRQEN != 0
	if !d.transfer(ch) {
		return false
	}
	if end {
		ch.csr |= CsrENDINTR
	}
	return true
}

func (d *DMA) run(n int) {
	ch := &d.channels[n]
	ch.csr &^= CsrSTOPSTATE

	ok := true
	if ch.csr&CsrNODESCFETCH != 0 {
		ok = d.block(ch)
	} else {
		var count int
		for ok && ch.desc&DescriptorStop == 0 {
			if count == maxChain {
				logger.Logf(d.env, "dma", "channel %d: descriptor chain too long", n)
				break
			}
			count++

			var w [4]uint32
			for i := range w {
				w[i], ok = d.bus.Read32((ch.desc &^ 0xf) + uint32(i*4))
				if !ok {
					break
				}
			}
			if !ok {
				break
			}

			ch.desc, ch.src, ch.trg, ch.cmd = w[0], w[1], w[2], w[3]
			ok = d.block(ch)
		}
	}

	if !ok {
		ch.csr |= CsrBUSERRINTR
		logger.Logf(d.env, "dma", "channel %d: bus error (src %08x trg %08x)", n, ch.src, ch.trg)
	}

	ch.csr &^= CsrRUN
	ch.csr |= CsrSTOPSTATE
}

// start channel n. if a transfer is in progress the channel is queued
// instead. a RUN write to the active channel by its own transfer is stored
// but has no other effect
func (d *DMA) start(n int) {
	if d.active >= 0 {
		if n != d.active {
			d.pending |= 1 << n
		}
		return
	}

	d.pending = 1 << n

	var starts int
	for d.pending != 0 {
		n := bits.TrailingZeros32(d.pending)
		d.pending &^= 1 << n

		ch := &d.channels[n]
		if ch.csr&CsrRUN == 0 {
			continue
		}

		if starts == maxStarts {
			logger.Logf(d.env, "dma", "channel %d: too many channel starts", n)
			ch.csr &^= CsrRUN
			ch.csr |= CsrSTOPSTATE
			continue
		}
		starts++

		d.active = n
		d.run(n)
		d.active = -1
	}
}

// Read implements the memory.Registers interface.
func (d *DMA) Read(offset uint32) (uint32, bool) {
	switch {
	case offset < DCSR+NumChannels*4:
		return d.channels[offset>>2].csr, true
	case offset == DINT:
		return d.dint(), true
	case offset >= DRCMR && offset < DRCMR+NumRequests*4:
		return d.requests[(offset-DRCMR)>>2], true
	case offset >= DDADR && offset < dmaTop:
		ch := &d.channels[(offset-DDADR)>>4]
		switch offset & 0xf {
		case 0x0:
			return ch.desc, true
		case 0x4:
			return ch.src, true
		case 0x8:
			return ch.trg, true
		case 0xc:
			return ch.cmd, true
		}
	}
	return 0, false
}

// Write implements the memory.Registers interface.
func (d *DMA) Write(offset uint32, value uint32) bool {
	switch {
	case offset < DCSR+NumChannels*4:
		n := int(offset >> 2)
		ch := &d.channels[n]
		ch.csr &^= value & csrW1C
		ch.csr = (ch.csr &^ csrStored) | (value & csrStored)
		if value&CsrRUN != 0 {
			d.start(n)
		}
	case offset == DINT:
		// read only
	case offset >= DRCMR && offset < DRCMR+NumRequests*4:
		d.requests[(offset-DRCMR)>>2] = value & 0x8f
	case offset >= DDADR && offset < dmaTop:
		ch := &d.channels[(offset-DDADR)>>4]
		switch offset & 0xf {
		case 0x0:
			ch.desc = value &^ 0xe
		case 0x4:
			ch.src = value
		case 0x8:
			ch.trg = value
		case 0xc:
			ch.cmd = value
		}
	default:
		return false
	}

	d.update()
	return true
}
