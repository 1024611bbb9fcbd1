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

import "fmt"

// PrimitiveKind identifies the shape of a Primitive.
type PrimitiveKind int

// List of valid PrimitiveKind values.
const (
	// FilledBox is an axis aligned rectangle from Min to Max.
	FilledBox PrimitiveKind = iota

	// Line is a line segment from Min to Max.
	Line
)

func (k PrimitiveKind) String() string {
	switch k {
	case FilledBox:
		return "box"
	case Line:
		return "line"
	}
	return "unknown"
}

// Primitive is a single drawing instruction.
type Primitive struct {
	Kind  PrimitiveKind
	Min   Vec2
	Max   Vec2
	Color Color
}

func (p Primitive) String() string {
	return fmt.Sprintf("%s (%.1f,%.1f)-(%.1f,%.1f) %s", p.Kind, p.Min.X, p.Min.Y, p.Max.X, p.Max.Y, p.Color)
}

// Canvas is implemented by anything that can draw primitives. The origin is
// the top-left corner of the canvas.
type Canvas interface {
	// Size of the canvas in pixels.
	Size() Vec2

	// FilledBox draws a rectangle from min to max.
	FilledBox(min, max Vec2, col Color)

	// Line draws a line from a to b.
	Line(a, b Vec2, col Color)
}

// DrawPrimitives sends the list of primitives to the canvas in order.
func DrawPrimitives(c Canvas, prims []Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case FilledBox:
			c.FilledBox(p.Min, p.Max, p.Color)
		case Line:
			c.Line(p.Min, p.Max, p.Color)
		}
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Compose returns the primitives for a single frame. The history should be
// ordered oldest first, as returned by History.Snapshot().
//
// The first primitive is always the container box. That is followed by a box
// for each sample, newest first, and for every sample after the first a line
// joining it to the previous sample.
//
// The hostScale value is only used if UseSensitivity is true.
func Compose(canvas Vec2, s DisplaySettings, hostScale float32, history []Sample) []Primitive {
	size := float32(s.Size)
	pointSize := size * s.PointSize
	padded := s.Extent()

	anchor := Vec2{
		X: lerp(0, canvas.X-padded, s.CenterX),
		Y: lerp(0, canvas.Y-padded, s.CenterY),
	}
	center := anchor.Add(Vec2{X: padded / 2, Y: padded / 2})

	prims := make([]Primitive, 0, 1+len(history)*2)
	prims = append(prims, Primitive{
		Kind:  FilledBox,
		Min:   anchor,
		Max:   anchor.Add(Vec2{X: padded, Y: padded}),
		Color: s.BoxColor,
	})

	scale := float32(1)
	if s.UseSensitivity {
		scale = hostScale
	}

	// the fade divides by the configured number of points and not by the
	// length of the history. a history longer than the point count will
	// therefore produce negative alpha values for the oldest samples
	n := float32(max(s.PointCount, 1))

	half := Vec2{X: pointSize / 2, Y: pointSize / 2}

	var prev Vec2
	for i := range len(history) {
		smp := history[len(history)-1-i]

		input := Vec2{X: smp.Steer * scale, Y: smp.Pitch * scale}
		if s.Clamp {
			input.X = clamp(input.X, -1, 1)
			input.Y = clamp(input.Y, -1, 1)
		}

		pos := center.Add(input.Scale(size / 2))

		col := s.PointColor
		if input.X == 0 || input.Y == 0 {
			col = s.DeadzoneColor
		}
		col.A *= 1 - float32(i)/n

		prims = append(prims, Primitive{
			Kind:  FilledBox,
			Min:   pos.Sub(half),
			Max:   pos.Add(half),
			Color: col,
		})

		if i > 0 {
			prims = append(prims, Primitive{
				Kind:  Line,
				Min:   pos,
				Max:   prev,
				Color: col,
			})
		}

		prev = pos
	}

	return prims
}
