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

package mmu

// FaultStatus is the value recorded in the fault status register. The low four
// bits are the fault code and the upper four bits are the domain.
type FaultStatus uint8

// Fault codes. The page variants are the section codes with bit 1 set.
const (
	NoFault             FaultStatus = 0x0
	AlignmentFault      FaultStatus = 0x1
	ExternalAbort       FaultStatus = 0x8
	TranslationSection  FaultStatus = 0x5
	TranslationPage     FaultStatus = 0x7
	DomainSection       FaultStatus = 0x9
	DomainPage          FaultStatus = 0xb
	ExternalAbortFirst  FaultStatus = 0xc
	ExternalAbortSecond FaultStatus = 0xe
	PermissionSection   FaultStatus = 0xd
	PermissionPage      FaultStatus = 0xf
)

// Code returns the fault code without the domain.
func (fs FaultStatus) Code() FaultStatus {
	return fs & 0x0f
}

// Domain returns the domain of the fault. Only meaningful for faults found
// after the first level descriptor has been read.
func (fs FaultStatus) Domain() uint8 {
	return uint8(fs >> 4)
}

func withDomain(code FaultStatus, domain uint32) FaultStatus {
	return code | FaultStatus(domain<<4)
}
