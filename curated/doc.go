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

// Package curated is a helper package for the plain go language error type.
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error, so packages export their patterns
// as constants and callers test for them with Is() and Has().
//
// For example, the memory package exports a pattern for region conflicts:
//
//	const RegionConflict = "memory: %s overlaps %s"
//
// and a caller can test for the condition:
//
//	err := space.Install(region)
//	if curated.Is(err, memory.RegionConflict) {
//		...
//	}
//
// Has() checks the whole chain of curated errors, for example when the error
// has been wrapped as the value of another curated error:
//
//	err = curated.Errorf("soc: %v", err)
//	curated.Has(err, memory.RegionConflict) // true
//
// Error messages are normalised by removing adjacent duplicate parts, so
// wrapping an error with the same prefix does not repeat the prefix:
//
//	a := curated.Errorf("soc: %v", curated.Errorf("soc: cannot init RAM"))
//	a.Error() // "soc: cannot init RAM"
package curated
