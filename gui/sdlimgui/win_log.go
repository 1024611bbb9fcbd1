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
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/stickvis/stickvis/logger"
)

const winLogTitle = "Log"

type winLog struct {
	img  *SdlImgui
	open bool

	// number of entries the last time the window was drawn. the window is
	// scrolled to the end when the number changes
	count int
}

func newWinLog(img *SdlImgui) winLog {
	return winLog{
		img: img,
	}
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 480}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 600, Y: 250}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winLogTitle, &win.open, imgui.WindowFlagsNone) {
		logger.BorrowLog(func(entries []logger.Entry) {
			var clipper imgui.ListClipper
			clipper.Begin(len(entries))
			for clipper.Step() {
				for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
					imgui.Text(entries[i].String())
				}
			}

			if len(entries) != win.count {
				win.count = len(entries)
				imgui.SetScrollHereY(1.0)
			}
		})
	}
	imgui.End()
}
