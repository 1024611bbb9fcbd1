// This file is part of stickvis.
//
// stickvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stickvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stickvis.  If not, see <https://www.gnu.org/licenses/>.

package govern

import (
	"github.com/stickvis/stickvis/prefs"
)

// Preferences for the session.
type Preferences struct {
	dsk *prefs.Disk

	// multiplier applied to samples when the visualizer uses sensitivity
	Sensitivity prefs.Float

	// stick values with a magnitude below the deadzone are reported as zero
	Deadzone prefs.Float

	// the mode the session starts in
	Mode prefs.String
}

// Ranges and defaults for the session preferences.
const (
	MinSensitivity     = 0.1
	MaxSensitivity     = 10.0
	DefaultSensitivity = 1.0
	MinDeadzone        = 0.0
	MaxDeadzone        = 0.9
	DefaultDeadzone    = 0.1
)

// DefaultMode is the mode a new session starts in.
const DefaultMode = ModeFreeplay

func (p *Preferences) String() string {
	return p.dsk.String()
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("session.sensitivity", &p.Sensitivity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("session.deadzone", &p.Deadzone)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("session.mode", &p.Mode)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Sensitivity.Set(DefaultSensitivity); err != nil {
		return err
	}
	if err := p.Deadzone.Set(DefaultDeadzone); err != nil {
		return err
	}
	return p.Mode.Set(DefaultMode.String())
}

// Load disk values into the current preferences.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
