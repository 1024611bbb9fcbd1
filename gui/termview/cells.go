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
	"fmt"
	"math"
	"strings"

	styles "github.com/charmbracelet/lipgloss"

	"github.com/stickvis/stickvis/visualizer"
)

// colours with an alpha below this value are not drawn
const alphaThreshold = 0.05

// a terminal cell is roughly twice as tall as it is wide. the canvas treats
// every cell as two pixels high so that boxes appear square
const cellAspect = 2

type cell struct {
	set bool
	col visualizer.Color
}

// CellCanvas implements the visualizer.Canvas interface with terminal
// character cells. Colours are blended over a black background.
//
// The pixel space reported by Size() is the cell grid multiplied by a scale
// factor. The scale is one until Fit() is called.
type CellCanvas struct {
	width  int
	height int
	cells  []cell

	// pixels per cell column. a cell row is cellAspect times as many pixels
	scale float32
}

// NewCellCanvas is the preferred method of initialisation for the CellCanvas
// type. Dimensions are in cells.
func NewCellCanvas(width, height int) *CellCanvas {
	width = max(0, width)
	height = max(0, height)
	return &CellCanvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		scale:  1,
	}
}

// Fit chooses a scale so that a square of extent pixels fits inside the
// canvas. The scale is never less than one.
func (cv *CellCanvas) Fit(extent float32) {
	cv.scale = 1
	space := float32(min(cv.width, cv.height*cellAspect))
	if space > 0 && extent > space {
		cv.scale = extent / space
	}
}

// Size implements the visualizer.Canvas interface.
func (cv *CellCanvas) Size() visualizer.Vec2 {
	return visualizer.Vec2{
		X: float32(cv.width) * cv.scale,
		Y: float32(cv.height*cellAspect) * cv.scale,
	}
}

// toCell returns the cell coordinates of a point in pixel space.
func (cv *CellCanvas) toCell(p visualizer.Vec2) (float64, float64) {
	return float64(p.X / cv.scale), float64(p.Y / (cellAspect * cv.scale))
}

// Clear all cells.
func (cv *CellCanvas) Clear() {
	clear(cv.cells)
}

func (cv *CellCanvas) plot(x, y int, col visualizer.Color) {
	if x < 0 || y < 0 || x >= cv.width || y >= cv.height {
		return
	}

	c := &cv.cells[y*cv.width+x]
	a := col.A
	c.col = visualizer.Color{
		R: col.R*a + c.col.R*(1-a),
		G: col.G*a + c.col.G*(1-a),
		B: col.B*a + c.col.B*(1-a),
		A: 1,
	}
	c.set = true
}

// FilledBox implements the visualizer.Canvas interface.
func (cv *CellCanvas) FilledBox(min, max visualizer.Vec2, col visualizer.Color) {
	if col.A < alphaThreshold {
		return
	}

	minX, minY := cv.toCell(min)
	maxX, maxY := cv.toCell(max)
	x0 := int(math.Floor(minX))
	x1 := int(math.Ceil(maxX))
	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))

	// every box covers at least one cell
	x1 = maxInt(x1, x0+1)
	y1 = maxInt(y1, y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cv.plot(x, y, col)
		}
	}
}

// Line implements the visualizer.Canvas interface. Lines are drawn with
// Bresenham's algorithm.
func (cv *CellCanvas) Line(a, b visualizer.Vec2, col visualizer.Color) {
	if col.A < alphaThreshold {
		return
	}

	ax, ay := cv.toCell(a)
	bx, by := cv.toCell(b)
	x0, y0 := int(ax), int(ay)
	x1, y1 := int(bx), int(by)

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		cv.plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// At returns the colour of the cell and whether anything has been drawn
// there.
func (cv *CellCanvas) At(x, y int) (visualizer.Color, bool) {
	if x < 0 || y < 0 || x >= cv.width || y >= cv.height {
		return visualizer.Color{}, false
	}
	c := cv.cells[y*cv.width+x]
	return c.col, c.set
}

func hex(col visualizer.Color) string {
	n := col.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// String renders the canvas. Runs of cells with the same colour share a
// single style.
func (cv *CellCanvas) String() string {
	var s strings.Builder

	for y := 0; y < cv.height; y++ {
		row := cv.cells[y*cv.width : (y+1)*cv.width]

		for x := 0; x < len(row); {
			run := x + 1
			for run < len(row) && row[run] == row[x] {
				run++
			}

			blank := strings.Repeat(" ", run-x)
			if row[x].set {
				st := styles.NewStyle().Background(styles.Color(hex(row[x].col)))
				s.WriteString(st.Render(blank))
			} else {
				s.WriteString(blank)
			}

			x = run
		}

		if y < cv.height-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
