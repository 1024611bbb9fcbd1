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

	"github.com/stickvis/stickvis/visualizer"
)

// width of lines in the visualisation
const lineThickness = 1.5

// canvas implements the visualizer.Canvas interface for an imgui draw list.
// Coordinates are relative to origin.
type canvas struct {
	dl     imgui.DrawList
	origin imgui.Vec2
	size   visualizer.Vec2
}

func (cv canvas) Size() visualizer.Vec2 {
	return cv.size
}

func (cv canvas) vec(v visualizer.Vec2) imgui.Vec2 {
	return imgui.Vec2{X: cv.origin.X + v.X, Y: cv.origin.Y + v.Y}
}

func packed(col visualizer.Color) imgui.PackedColor {
	return imgui.PackedColorFromVec4(imgui.Vec4{X: col.R, Y: col.G, Z: col.B, W: col.A})
}

func (cv canvas) FilledBox(min, max visualizer.Vec2, col visualizer.Color) {
	if !col.Visible() {
		return
	}
	cv.dl.AddRectFilled(cv.vec(min), cv.vec(max), packed(col))
}

func (cv canvas) Line(a, b visualizer.Vec2, col visualizer.Color) {
	if !col.Visible() {
		return
	}
	cv.dl.AddLineV(cv.vec(a), cv.vec(b), packed(col), lineThickness)
}
