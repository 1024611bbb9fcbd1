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

package snapshot

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/paths"
	"github.com/stickvis/stickvis/visualizer"
)

// SnapshotError is the pattern for all errors returned by the package.
const SnapshotError = "snapshot: %v"

// width of lines drawn on the canvas
const lineWidth = 1.5

// Canvas implements the visualizer.Canvas interface for a gg.Context.
type Canvas struct {
	dc *gg.Context

	// the first error returned by the context while drawing
	err error
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
// The canvas is cleared to opaque black.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(SnapshotError, "canvas must have a positive size")
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.Black)
	dc.SetLineWidth(lineWidth)

	return &Canvas{dc: dc}, nil
}

// Size implements the visualizer.Canvas interface.
func (cv *Canvas) Size() visualizer.Vec2 {
	return visualizer.Vec2{X: float32(cv.dc.Width()), Y: float32(cv.dc.Height())}
}

func (cv *Canvas) setColor(col visualizer.Color) {
	cv.dc.SetRGBA(float64(col.R), float64(col.G), float64(col.B), float64(col.A))
}

func (cv *Canvas) record(err error) {
	if err != nil && cv.err == nil {
		cv.err = err
	}
}

// FilledBox implements the visualizer.Canvas interface.
func (cv *Canvas) FilledBox(min, max visualizer.Vec2, col visualizer.Color) {
	if !col.Visible() {
		return
	}
	cv.setColor(col)
	cv.dc.DrawRectangle(float64(min.X), float64(min.Y), float64(max.X-min.X), float64(max.Y-min.Y))
	cv.record(cv.dc.Fill())
}

// Line implements the visualizer.Canvas interface.
func (cv *Canvas) Line(a, b visualizer.Vec2, col visualizer.Color) {
	if !col.Visible() {
		return
	}
	cv.setColor(col)
	cv.dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	cv.record(cv.dc.Stroke())
}

// Err returns the first error encountered while drawing.
func (cv *Canvas) Err() error {
	if cv.err != nil {
		return curated.Errorf(SnapshotError, cv.err)
	}
	return nil
}

// Image returns the rendered image.
func (cv *Canvas) Image() image.Image {
	return cv.dc.Image()
}

// Encode the canvas as PNG data.
func (cv *Canvas) Encode(w io.Writer) error {
	if err := cv.dc.EncodePNG(w); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	if err := cv.dc.SavePNG(path); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return nil
}

// Close releases the resources used by the canvas.
func (cv *Canvas) Close() error {
	return cv.dc.Close()
}

// Render the primitives onto a new canvas of the given size. The caller
// should Close() the canvas when it is no longer needed.
func Render(width, height int, prims []visualizer.Primitive) (*Canvas, error) {
	cv, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}

	visualizer.DrawPrimitives(cv, prims)
	if err := cv.Err(); err != nil {
		cv.Close()
		return nil, err
	}

	return cv, nil
}

// Save renders the primitives and writes the result to a PNG file.
func Save(path string, width, height int, prims []visualizer.Primitive) error {
	cv, err := Render(width, height, prims)
	if err != nil {
		return err
	}
	defer cv.Close()

	if err := cv.SavePNG(path); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "snapshot", "saved %d primitives to %s", len(prims), path)

	return nil
}

// SaveUnique saves the primitives to a uniquely named PNG file in the
// snapshots resource directory. Returns the name of the file.
func SaveUnique(label string, width, height int, prims []visualizer.Primitive) (string, error) {
	fn, err := paths.ResourcePath("snapshots", paths.UniqueFilename("snapshot", label, "png"))
	if err != nil {
		return "", curated.Errorf(SnapshotError, err)
	}
	return fn, Save(fn, width, height, prims)
}
