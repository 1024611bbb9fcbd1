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
	"strings"

	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/snapshot"
	"github.com/stickvis/stickvis/userinput"
	"github.com/stickvis/stickvis/visualizer"
)

// HandleSample implements the userinput.HandleInput interface.
func (img *SdlImgui) HandleSample(s visualizer.Sample) {
	if img.tap != nil {
		img.tap(s)
	}
	img.vis.OnInput(s)
}

// HandleCommand implements the userinput.HandleInput interface.
func (img *SdlImgui) HandleCommand(cmd userinput.Command) error {
	switch cmd {
	case userinput.CommandTogglePause:
		img.session.TogglePause()
	case userinput.CommandCycleMode:
		img.session.CycleMode()
	case userinput.CommandToggleSettings:
		img.settings.open = !img.settings.open
	case userinput.CommandToggleLog:
		img.log.open = !img.log.open
	case userinput.CommandSnapshot:
		return img.snapshot()
	}

	img.polling.alert()

	return nil
}

// Deadzone implements the userinput.HandleInput interface.
func (img *SdlImgui) Deadzone() float32 {
	return img.session.Deadzone()
}

// save the current visualisation to a PNG file the size of the window.
func (img *SdlImgui) snapshot() error {
	w, h := img.plt.windowSize()
	prims := img.vis.Render(visualizer.Vec2{X: w, Y: h})

	fn, err := snapshot.SaveUnique(strings.ToLower(img.session.Mode().String()), int(w), int(h), prims)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "sdlimgui", "snapshot: %s", fn)

	return nil
}
