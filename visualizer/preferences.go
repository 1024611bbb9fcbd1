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

package visualizer

import (
	"image/color"
	"sync"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/prefs"
)

// Preferences are the display settings backed by the prefs package. The
// fields can be used directly by a settings panel.
type Preferences struct {
	dsk *prefs.Disk

	Enabled        prefs.Bool
	PointCount     prefs.Int
	Size           prefs.Int
	UseSensitivity prefs.Bool
	Clamp          prefs.Bool
	PointSize      prefs.Float
	CenterX        prefs.Float
	CenterY        prefs.Float
	BoxColor       prefs.Color
	PointColor     prefs.Color
	DeadzoneColor  prefs.Color

	crit             sync.Mutex
	pointCountChange []func(int)
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the file at pth, which is
// created with the default values if it does not exist.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	p.PointCount.SetHookPost(func(v prefs.Value) error {
		p.crit.Lock()
		defer p.crit.Unlock()
		for _, f := range p.pointCountChange {
			f(v.(int))
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		v   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"stickvis.enabled", &p.Enabled},
		{"stickvis.pointCount", &p.PointCount},
		{"stickvis.size", &p.Size},
		{"stickvis.sensitivity", &p.UseSensitivity},
		{"stickvis.clamp", &p.Clamp},
		{"stickvis.pointSize", &p.PointSize},
		{"stickvis.centerX", &p.CenterX},
		{"stickvis.centerY", &p.CenterY},
		{"stickvis.colorBox", &p.BoxColor},
		{"stickvis.colorPoint", &p.PointColor},
		{"stickvis.colorDeadzone", &p.DeadzoneColor},
	} {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	for _, err := range []error{
		p.Enabled.Set(DefaultEnabled),
		p.PointCount.Set(DefaultPointCount),
		p.Size.Set(DefaultSize),
		p.UseSensitivity.Set(DefaultUseSensitivity),
		p.Clamp.Set(DefaultClamp),
		p.PointSize.Set(DefaultPointSize),
		p.CenterX.Set(DefaultCenter),
		p.CenterY.Set(DefaultCenter),
		p.BoxColor.Set(DefaultBoxColor),
		p.PointColor.Set(DefaultPointColor),
		p.DeadzoneColor.Set(DefaultDeadzoneColor),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ResetBoxColor sets the box colour to translucent white.
func (p *Preferences) ResetBoxColor() error {
	return p.BoxColor.Set(color.NRGBA{R: 255, G: 255, B: 255, A: 100})
}

// ResetPointColor sets the point colour to opaque white.
func (p *Preferences) ResetPointColor() error {
	return p.PointColor.Set(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

// ResetDeadzoneColor sets the deadzone colour to the current point colour.
func (p *Preferences) ResetDeadzoneColor() error {
	return p.DeadzoneColor.Set(p.PointColor.Get())
}

// Load disk values into the current preferences.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// OnPointCountChange registers a function to be called whenever the point
// count preference is set.
func (p *Preferences) OnPointCountChange(f func(n int)) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.pointCountChange = append(p.pointCountChange, f)
}

// Snapshot returns the current preference values as a DisplaySettings. Values
// are limited to their valid ranges.
//
// Implements the SettingsSource interface.
func (p *Preferences) Snapshot() (DisplaySettings, error) {
	if p == nil {
		return DisplaySettings{}, curated.Errorf("visualizer: preferences not initialised")
	}

	s := DisplaySettings{
		Enabled:        p.Enabled.Get().(bool),
		PointCount:     p.PointCount.Get().(int),
		Size:           p.Size.Get().(int),
		UseSensitivity: p.UseSensitivity.Get().(bool),
		Clamp:          p.Clamp.Get().(bool),
		PointSize:      float32(p.PointSize.Get().(float64)),
		CenterX:        float32(p.CenterX.Get().(float64)),
		CenterY:        float32(p.CenterY.Get().(float64)),
		BoxColor:       ColorFromNRGBA(p.BoxColor.Get().(color.NRGBA)),
		PointColor:     ColorFromNRGBA(p.PointColor.Get().(color.NRGBA)),
		DeadzoneColor:  ColorFromNRGBA(p.DeadzoneColor.Get().(color.NRGBA)),
	}

	return s.Clamped(), nil
}
