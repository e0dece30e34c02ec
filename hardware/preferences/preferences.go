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

package preferences

import (
	"fmt"
	"strings"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/prefs"
)

// RAM backing modes.
const (
	RAMAllocated = "allocated"
	RAMCallout   = "callout"
)

// Default values for the machine preferences.
const (
	DefaultRAMSize   = 0x01000000
	DefaultRAMMode   = RAMAllocated
	DefaultTimerMask = 0x007
	DefaultUARTMask  = 0x0ff
	DefaultRTCMask   = 0xfff
)

// Preference keys as used on the command line. For example:
//
//	-prefs "ram.size::0x00800000; sched.timer::0x3"
const (
	KeyRAMSize   = "ram.size"
	KeyRAMMode   = "ram.mode"
	KeySharedRAM = "ram.shared"
	KeyTimerMask = "sched.timer"
	KeyUARTMask  = "sched.uart"
	KeyRTCMask   = "sched.rtc"
	KeyFaultLog  = "faults.log"
)

// Patterns for preference errors.
const (
	InvalidRAMSize  = "preferences: invalid RAM size (%#x)"
	InvalidRAMMode  = "preferences: invalid RAM mode (%s)"
	InvalidTickMask = "preferences: tick mask must be one less than a power of two (%#x)"
)

// Preferences collates all the preference values used by the machine. The
// values are fixed once the machine has been created.
type Preferences struct {
	// size of RAM in bytes. returned to the guest by the RAM size hypercall
	RAMSize prefs.Int

	// how RAM is backed. either RAMAllocated or RAMCallout
	RAMMode prefs.String

	// file used to back callout RAM. an empty string means anonymous memory
	SharedRAM prefs.String

	// scheduler masks. a peripheral is ticked when the cycle count ANDed with
	// the mask is zero
	TimerMask prefs.Int
	UARTMask  prefs.Int
	RTCMask   prefs.Int

	// record distinct faults for the fault log report
	FaultLog prefs.Bool
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s::%#x; ", KeyRAMSize, p.RAMSize.Get().(int)))
	s.WriteString(fmt.Sprintf("%s::%s; ", KeyRAMMode, p.RAMMode.String()))
	if p.SharedRAM.String() != "" {
		s.WriteString(fmt.Sprintf("%s::%s; ", KeySharedRAM, p.SharedRAM.String()))
	}
	s.WriteString(fmt.Sprintf("%s::%#x; ", KeyTimerMask, p.TimerMask.Get().(int)))
	s.WriteString(fmt.Sprintf("%s::%#x; ", KeyUARTMask, p.UARTMask.Get().(int)))
	s.WriteString(fmt.Sprintf("%s::%#x; ", KeyRTCMask, p.RTCMask.Get().(int)))
	s.WriteString(fmt.Sprintf("%s::%v", KeyFaultLog, p.FaultLog.Get().(bool)))
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values on the top of the command line stack override the
// defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.RAMSize.SetHookPre(func(v prefs.Value) error {
		sz := v.(int)
		if sz <= 0 || sz&0x3 != 0 || sz > 0x40000000 {
			return curated.Errorf(InvalidRAMSize, sz)
		}
		return nil
	})

	p.RAMMode.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case RAMAllocated, RAMCallout:
			return nil
		}
		return curated.Errorf(InvalidRAMMode, v)
	})

	mask := func(v prefs.Value) error {
		m := v.(int)
		if m < 0 || m&(m+1) != 0 {
			return curated.Errorf(InvalidTickMask, m)
		}
		return nil
	}
	p.TimerMask.SetHookPre(mask)
	p.UARTMask.SetHookPre(mask)
	p.RTCMask.SetHookPre(mask)

	p.SetDefaults()

	for k, v := range map[string]prefs.Pref{
		KeyRAMSize:   &p.RAMSize,
		KeyRAMMode:   &p.RAMMode,
		KeySharedRAM: &p.SharedRAM,
		KeyTimerMask: &p.TimerMask,
		KeyUARTMask:  &p.UARTMask,
		KeyRTCMask:   &p.RTCMask,
		KeyFaultLog:  &p.FaultLog,
	} {
		if err := prefs.ApplyCommandLine(k, v); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// default values are always valid so hook errors can be ignored
	_ = p.RAMSize.Set(DefaultRAMSize)
	_ = p.RAMMode.Set(DefaultRAMMode)
	_ = p.SharedRAM.Set("")
	_ = p.TimerMask.Set(DefaultTimerMask)
	_ = p.UARTMask.Set(DefaultUARTMask)
	_ = p.RTCMask.Set(DefaultRTCMask)
	_ = p.FaultLog.Set(false)
}
