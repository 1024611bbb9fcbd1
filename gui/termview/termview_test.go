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

package termview

import (
	"strings"
	"testing"

	tui "github.com/charmbracelet/bubbletea"

	"github.com/stickvis/stickvis/govern"
	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/visualizer"
)

var white = visualizer.Color{R: 1, G: 1, B: 1, A: 1}

func TestCellCanvasSize(t *testing.T) {
	cv := NewCellCanvas(40, 10)
	test.ExpectEquality(t, cv.Size(), visualizer.Vec2{X: 40, Y: 20})

	cv = NewCellCanvas(-1, -1)
	test.ExpectEquality(t, cv.Size(), visualizer.Vec2{})
	test.ExpectEquality(t, cv.String(), "")
}

func TestCellCanvasBox(t *testing.T) {
	cv := NewCellCanvas(10, 5)
	cv.FilledBox(visualizer.Vec2{X: 2, Y: 2}, visualizer.Vec2{X: 4, Y: 6}, white)

	// box covers columns 2 and 3, rows 1 and 2
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			_, set := cv.At(x, y)
			inside := x >= 2 && x < 4 && y >= 1 && y < 3
			test.ExpectEquality(t, set, inside, x, y)
		}
	}

	// boxes outside the canvas are clipped
	cv.FilledBox(visualizer.Vec2{X: -5, Y: -5}, visualizer.Vec2{X: 100, Y: 100}, white)
	_, set := cv.At(9, 4)
	test.ExpectEquality(t, set, true)
}

func TestCellCanvasAlpha(t *testing.T) {
	cv := NewCellCanvas(4, 4)

	// below the threshold nothing is drawn
	cv.FilledBox(visualizer.Vec2{}, visualizer.Vec2{X: 4, Y: 8}, visualizer.Color{R: 1, A: 0.01})
	_, set := cv.At(0, 0)
	test.ExpectEquality(t, set, false)

	// partial alpha is blended over black
	cv.FilledBox(visualizer.Vec2{}, visualizer.Vec2{X: 1, Y: 2}, visualizer.Color{R: 1, G: 1, B: 1, A: 0.5})
	col, set := cv.At(0, 0)
	test.ExpectEquality(t, set, true)
	test.ExpectApproximate(t, col.R, 0.5, 0.001)

	cv.Clear()
	_, set = cv.At(0, 0)
	test.ExpectEquality(t, set, false)
}

func TestCellCanvasLine(t *testing.T) {
	cv := NewCellCanvas(10, 10)

	// diagonal in cell space
	cv.Line(visualizer.Vec2{X: 0, Y: 0}, visualizer.Vec2{X: 5, Y: 10}, white)
	for i := 0; i <= 5; i++ {
		_, set := cv.At(i, i)
		test.ExpectEquality(t, set, true, i)
	}
	_, set := cv.At(5, 0)
	test.ExpectEquality(t, set, false)

	// lines are drawn in either direction
	cv.Clear()
	cv.Line(visualizer.Vec2{X: 9, Y: 4}, visualizer.Vec2{X: 0, Y: 4}, white)
	for x := 0; x < 10; x++ {
		_, set := cv.At(x, 2)
		test.ExpectEquality(t, set, true, x)
	}
}

func TestCellCanvasString(t *testing.T) {
	cv := NewCellCanvas(3, 2)
	test.ExpectEquality(t, cv.String(), "   \n   ")

	cv.FilledBox(visualizer.Vec2{}, visualizer.Vec2{X: 1, Y: 2}, white)
	lines := strings.Split(cv.String(), "\n")
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "   ")
}

func lit(cv *CellCanvas) (n int) {
	for y := 0; y < cv.height; y++ {
		for x := 0; x < cv.width; x++ {
			if _, set := cv.At(x, y); set {
				n++
			}
		}
	}
	return n
}

func TestCellCanvasFit(t *testing.T) {
	s := visualizer.DisplaySettings{
		Enabled:       true,
		PointCount:    visualizer.DefaultPointCount,
		Size:          visualizer.DefaultSize,
		PointSize:     visualizer.DefaultPointSize,
		CenterX:       visualizer.DefaultCenter,
		CenterY:       visualizer.DefaultCenter,
		PointColor:    white,
		DeadzoneColor: white,
	}
	hist := []visualizer.Sample{{Steer: 0.5, Pitch: 0.5}}

	cv := NewCellCanvas(80, 30)

	// without fitting, the box is far larger than the grid and the point
	// lands outside it
	prims := visualizer.Compose(cv.Size(), s, 1, hist)
	visualizer.DrawPrimitives(cv, prims[1:])
	test.ExpectEquality(t, lit(cv), 0)

	cv.Clear()
	cv.Fit(s.Extent())
	size := cv.Size()
	test.ExpectSuccess(t, size.X+0.01 >= s.Extent())
	test.ExpectApproximate(t, size.Y, s.Extent(), 0.01)

	prims = visualizer.Compose(cv.Size(), s, 1, hist)
	visualizer.DrawPrimitives(cv, prims[1:])
	test.ExpectSuccess(t, lit(cv) > 0)

	// the point is below and to the right of the centre of the grid
	for y := 0; y < cv.height; y++ {
		for x := 0; x < cv.width; x++ {
			if _, set := cv.At(x, y); set {
				test.ExpectSuccess(t, x > 40, x)
				test.ExpectSuccess(t, y > 15, y)
			}
		}
	}

	// the whole box also fits
	cv.Clear()
	cv.FilledBox(prims[0].Min, prims[0].Max, white)
	test.ExpectSuccess(t, lit(cv) > 0)

	// an extent smaller than the grid leaves the scale alone
	cv.Fit(10)
	test.ExpectEquality(t, cv.Size(), visualizer.Vec2{X: 80, Y: 60})
}

type settings struct{}

func (settings) Snapshot() (visualizer.DisplaySettings, error) {
	return visualizer.DisplaySettings{
		Enabled:    true,
		PointCount: 10,
		Size:       100,
		PointSize:  0.02,
		CenterX:    0.5,
		CenterY:    0.5,
		BoxColor:   visualizer.Color{R: 1, G: 1, B: 1, A: 0.4},
		PointColor: white,
	}, nil
}

func TestModel(t *testing.T) {
	t.Chdir(t.TempDir())

	session, err := govern.NewSession("preferences")
	test.DemandSuccess(t, err)

	vis, err := visualizer.NewVisualizer(settings{}, session, session)
	test.DemandSuccess(t, err)

	samples := make(chan visualizer.Sample, 10)
	m := NewModel(vis, session, samples)
	m.Init()
	test.ExpectEquality(t, session.State(), govern.Running)

	m.Update(tui.WindowSizeMsg{Width: 60, Height: 30})
	test.ExpectEquality(t, m.canvas.width, 60)

	samples <- visualizer.Sample{Steer: 0.5, Pitch: 0.5}
	samples <- visualizer.Sample{Steer: -0.5, Pitch: 0.5}
	m.Update(frameMsg{})
	test.ExpectEquality(t, vis.Len(), 2)
	test.ExpectInequality(t, m.View(), "")

	m.Update(tui.KeyMsg{Type: tui.KeyRunes, Runes: []rune{'p'}})
	test.ExpectEquality(t, session.State(), govern.Paused)

	// samples are still drained but the visualiser ignores them while paused
	samples <- visualizer.Sample{Steer: 0.1, Pitch: 0.1}
	m.Update(frameMsg{})
	test.ExpectEquality(t, vis.Len(), 2)

	_, cmd := m.Update(tui.KeyMsg{Type: tui.KeyRunes, Runes: []rune{'q'}})
	test.ExpectEquality(t, cmd != nil, true)
	test.ExpectEquality(t, session.State(), govern.Ending)
}
