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

package environment

import (
	"github.com/ElectroBoy404NotFound/uARM/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the emulation started from the command
// line.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Useful when more
// than one machine is created in the same process, for example in tests.
type Environment struct {
	Label Label

	// the machine preferences
	Prefs *preferences.Preferences

	// logging can be suppressed for an environment. the main emulation always
	// logs
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type. The prefs argument can be nil, in which case a new Preferences instance
// is created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation() || !env.Quiet
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
