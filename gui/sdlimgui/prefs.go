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

package sdlimgui

import (
	"fmt"

	"github.com/stickvis/stickvis/prefs"
)

// preferences for the window. the values are stored in the same file as the
// other preferences but in their own group.
type preferences struct {
	img *SdlImgui
	dsk *prefs.Disk

	// whether the settings and log windows were open
	settingsOpen prefs.Bool
	logOpen      prefs.Bool
}

func newPreferences(img *SdlImgui, pth string) (*preferences, error) {
	p := &preferences{
		img: img,
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlimgui.windowsize", prefs.NewGeneric(
		func(s string) error {
			var w, h int32
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			if err != nil {
				return err
			}
			img.plt.window.SetSize(w, h)
			return nil
		},
		func() string {
			w, h := img.plt.window.GetSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlimgui.windowpos", prefs.NewGeneric(
		func(s string) error {
			var x, y int32
			_, err := fmt.Sscanf(s, "%d,%d", &x, &y)
			if err != nil {
				return err
			}
			img.plt.window.SetPosition(x, y)
			return nil
		},
		func() string {
			x, y := img.plt.window.GetPosition()
			return fmt.Sprintf("%d,%d", x, y)
		},
	))
	if err != nil {
		return nil, err
	}

	p.settingsOpen.SetHookPost(func(v prefs.Value) error {
		img.settings.open = v.(bool)
		return nil
	})
	err = p.dsk.Add("sdlimgui.settingsOpen", &p.settingsOpen)
	if err != nil {
		return nil, err
	}

	p.logOpen.SetHookPost(func(v prefs.Value) error {
		img.log.open = v.(bool)
		return nil
	})
	err = p.dsk.Add("sdlimgui.logOpen", &p.logOpen)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) load() error {
	return p.dsk.Load(true)
}

// save the window geometry and the state of the windows.
func (p *preferences) save() error {
	if err := p.settingsOpen.Set(p.img.settings.open); err != nil {
		return err
	}
	if err := p.logOpen.Set(p.img.log.open); err != nil {
		return err
	}
	return p.dsk.Save()
}
