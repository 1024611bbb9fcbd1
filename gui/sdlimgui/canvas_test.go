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
	"testing"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/visualizer"
)

func TestPacked(t *testing.T) {
	test.ExpectEquality(t, packed(visualizer.Color{R: 1, A: 1}), imgui.PackedColor(0xff0000ff))
	test.ExpectEquality(t, packed(visualizer.Color{B: 1, A: 0}), imgui.PackedColor(0x00ff0000))
}

func TestCanvasOrigin(t *testing.T) {
	cv := canvas{
		origin: imgui.Vec2{X: 10, Y: 20},
		size:   visualizer.Vec2{X: 100, Y: 50},
	}
	test.ExpectEquality(t, cv.Size(), visualizer.Vec2{X: 100, Y: 50})
	test.ExpectEquality(t, cv.vec(visualizer.Vec2{X: 1, Y: 2}), imgui.Vec2{X: 11, Y: 22})
}
