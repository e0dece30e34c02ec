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

package rtc

import (
	"time"

	"github.com/ElectroBoy404NotFound/uARM/hardware/peripherals/intc"
)

// Register offsets.
const (
	RCNR = 0x00
	RTAR = 0x04
	RTSR = 0x08
	RTTR = 0x0c
)

// RTSR bits.
const (
	StatusAL  = uint32(1 << 0)
	StatusHZ  = uint32(1 << 1)
	StatusALE = uint32(1 << 2)
	StatusHZE = uint32(1 << 3)
)

// Clock returns the current host time. The RTC is the only peripheral that
// reads the host clock.
type Clock func() time.Time

// RTC is the real time clock. The counter holds seconds and advances when
// Update() sees that the host clock has moved on.
type RTC struct {
	lines intc.Lines
	clock Clock

	counter uint32
	alarm   uint32
	status  uint32
	trim    uint32

	// host time in seconds at the most recent update
	lastSeen int64
}

// NewRTC is the preferred method of initialisation for the RTC type. The
// counter starts at the host time in seconds.
func NewRTC(lines intc.Lines, clock Clock) *RTC {
	if clock == nil {
		clock = time.Now
	}
	now := clock().Unix()
	return &RTC{
		lines:    lines,
		clock:    clock,
		counter:  uint32(now),
		lastSeen: now,
	}
}

// Update the counter from the host clock.
func (r *RTC) Update() {
	now := r.clock().Unix()
	if now <= r.lastSeen {
		return
	}

	elapsed := uint32(now - r.lastSeen)
	r.lastSeen = now

	// the alarm fires if the alarm value was passed at any point during the
	// elapsed seconds
	if r.alarm-r.counter-1 < elapsed {
		r.status |= StatusAL
	}
	r.counter += elapsed
	r.status |= StatusHZ

	r.update()
}

func (r *RTC) update() {
	if r.status&StatusHZ != 0 && r.status&StatusHZE != 0 {
		r.lines.Assert(intc.RTCHz)
	} else {
		r.lines.Deassert(intc.RTCHz)
	}
	if r.status&StatusAL != 0 && r.status&StatusALE != 0 {
		r.lines.Assert(intc.RTCAlarm)
	} else {
		r.lines.Deassert(intc.RTCAlarm)
	}
}

// Read implements the memory.Registers interface.
func (r *RTC) Read(offset uint32) (uint32, bool) {
	switch offset {
	case RCNR:
		return r.counter, true
	case RTAR:
		return r.alarm, true
	case RTSR:
		return r.status, true
	case RTTR:
		return r.trim, true
	}
	return 0, false
}

// Write implements the memory.Registers interface.
func (r *RTC) Write(offset uint32, value uint32) bool {
	switch offset {
	case RCNR:
		r.counter = value
	case RTAR:
		r.alarm = value
	case RTSR:
		// AL and HZ are write one to clear. ALE and HZE are stored
		r.status &^= value & (StatusAL | StatusHZ)
		r.status = (r.status &^ (StatusALE | StatusHZE)) | (value & (StatusALE | StatusHZE))
		r.update()
	case RTTR:
		r.trim = value
	default:
		return false
	}
	return true
}
