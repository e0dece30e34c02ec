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

	"github.com/ElectroBoy404NotFound/uARM/hardware/cpu"
	"github.com/bradleyjkemp/memviz"
)

// DumpState writes the CPU registers to the writer.
func (soc *SoC) DumpState(w io.Writer) {
	for i := 0; i < 16; i++ {
		fmt.Fprintf(w, "R%d\t= 0x%x\n", i, soc.CPU.Reg(i))
	}
	fmt.Fprintf(w, "CPSR\t= 0x%x\n", soc.CPU.Reg(cpu.CPSR))
	fmt.Fprintf(w, "SPSR\t= 0x%x\n", soc.CPU.Reg(cpu.SPSR))
}

// WriteFaultLog writes the distinct faults seen by the machine. Nothing is
// written if the fault log is not enabled.
func (soc *SoC) WriteFaultLog(w io.Writer) {
	if soc.Faults == nil {
		return
	}
	soc.Faults.WriteLog(w)
}

// Visualise writes a graphviz description of the peripherals. Memory is not
// included.
func (soc *SoC) Visualise(w io.Writer) {
	memviz.Map(w, soc.IC, soc.Timer, soc.RTC, soc.FFUART, soc.BTUART, soc.STUART,
		soc.PwrClk, soc.GPIO, soc.DSP)
}
