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
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA colour with components in the range 0 to 1.
type Color struct {
	R, G, B, A float32
}

// ColorFromNRGBA converts the 0 to 255 component representation used by the
// preferences into a Color.
func ColorFromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// NRGBA converts the colour to the 0 to 255 component representation.
// Components outside of the range 0 to 1 are clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: component(c.R),
		G: component(c.G),
		B: component(c.B),
		A: component(c.A),
	}
}

// Visible returns true if the alpha channel is greater than zero.
func (c Color) Visible() bool {
	return c.A > 0
}

func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

func component(v float32) uint8 {
	if math.IsNaN(float64(v)) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// DisplaySettings is a snapshot of the values that control the visualizer.
type DisplaySettings struct {
	Enabled bool

	// the capacity of the history and the divisor of the fade calculation
	PointCount int

	// the width and height of the visualisation box in pixels
	Size int

	// whether the host's sensitivity scale is applied to samples
	UseSensitivity bool

	// whether scaled samples are limited to the range -1 to 1
	Clamp bool

	// the size of each point as a fraction of Size
	PointSize float32

	// position of the visualisation box as a fraction of the free space on
	// the canvas
	CenterX float32
	CenterY float32

	BoxColor      Color
	PointColor    Color
	DeadzoneColor Color
}

// Ranges for the display settings.
const (
	MinPointCount = 1
	MaxPointCount = 600
	MinSize       = 100
	MaxSize       = 1000
	MinPointSize  = 0.0
	MaxPointSize  = 0.1
	MinCenter     = 0.0
	MaxCenter     = 1.0
)

// Default display settings.
const (
	DefaultEnabled        = true
	DefaultPointCount     = 120
	DefaultSize           = 400
	DefaultUseSensitivity = true
	DefaultClamp          = true
	DefaultPointSize      = 0.02
	DefaultCenter         = 0.5
	DefaultBoxColor       = "#FFFFFF64"
	DefaultPointColor     = "#FFFFFFFF"
	DefaultDeadzoneColor  = "#FFFFFFFF"
)

// Clamped returns a copy of the settings with every numeric value limited to
// its range.
func (s DisplaySettings) Clamped() DisplaySettings {
	s.PointCount = clamp(s.PointCount, MinPointCount, MaxPointCount)
	s.Size = clamp(s.Size, MinSize, MaxSize)
	s.PointSize = clamp(s.PointSize, MinPointSize, MaxPointSize)
	s.CenterX = clamp(s.CenterX, MinCenter, MaxCenter)
	s.CenterY = clamp(s.CenterY, MinCenter, MaxCenter)
	return s
}

// Extent is the width and height of the visualisation box once it has been
// padded to hold a point at its edge.
func (s DisplaySettings) Extent() float32 {
	size := float32(s.Size)
	return size + size*s.PointSize
}

func clamp[T int | float32](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
