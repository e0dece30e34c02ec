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
	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/govern"
)

// While the continueCheck() function is cheap compared to a CPU step it is
// still called for every step. The PerformanceBrake is a standard value that
// can be used to filter out expensive code paths within a continueCheck()
// implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 1000

// Step performs one iteration of the scheduler. The cycle counter is
// incremented and the timer, UARTs and RTC are ticked if the counter matches
// their masks. The CPU is stepped last so that an interrupt raised by a tick
// is seen by the instruction.
func (soc *SoC) Step() error {
	soc.cycles++

	if soc.cycles&soc.timerMask == 0 {
		soc.Timer.Tick()
	}
	if soc.cycles&soc.uartMask == 0 {
		soc.FFUART.Process()
		soc.BTUART.Process()
		soc.STUART.Process()
	}
	if soc.cycles&soc.rtcMask == 0 {
		soc.RTC.Update()
	}

	if err := soc.CPU.Step(); err != nil {
		return curated.Errorf(EmulationError, err)
	}

	return nil
}

// Run steps the machine until it is halted by the guest or the continue check
// returns a stopped state. The continueCheck argument can be nil.
func (soc *SoC) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	for soc.state == govern.Running {
		if err := soc.Step(); err != nil {
			return err
		}

		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state.Stopped() {
			soc.state = state
		}
	}

	return nil
}
