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
	"image/color"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/stickvis/stickvis/govern"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/prefs"
	"github.com/stickvis/stickvis/visualizer"
)

const winSettingsTitle = "Settings"

type winSettings struct {
	img  *SdlImgui
	open bool
}

func newWinSettings(img *SdlImgui) winSettings {
	return winSettings{
		img: img,
	}
}

// set a preference and log any error.
func set(p interface{ Set(prefs.Value) error }, v prefs.Value) {
	if err := p.Set(v); err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
}

func logErr(err error) {
	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
}

func (win *winSettings) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.BeginV(winSettingsTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize) {
		win.drawDisplay()
		imgui.Spacing()
		imgui.Separator()
		imgui.Spacing()
		win.drawSession()
		imgui.Spacing()
		imgui.Separator()
		imgui.Spacing()
		win.drawTips()
	}
	imgui.End()
}

func (win *winSettings) checkbox(label string, p *prefs.Bool) {
	b := p.Get().(bool)
	if imgui.Checkbox(label, &b) {
		set(p, b)
	}
}

func (win *winSettings) color(label string, p *prefs.Color, reset func() error) {
	c := visualizer.ColorFromNRGBA(p.Get().(color.NRGBA))
	v := [4]float32{c.R, c.G, c.B, c.A}
	if imgui.ColorEdit4V(label, &v, imgui.ColorEditFlagsAlphaBar) {
		c = visualizer.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
		set(p, c.NRGBA())
	}
	imgui.SameLine()
	imgui.PushID(label)
	if imgui.Button("Reset") {
		logErr(reset())
	}
	imgui.PopID()
}

// percentage slider for a float preference in the range 0 to 1.
func (win *winSettings) percent(label string, p *prefs.Float, max float32) {
	v := float32(p.Get().(float64)) * 100
	if imgui.SliderFloatV(label, &v, 0, max*100, "%.1f%%", imgui.SliderFlagsNone) {
		set(p, float64(v/100))
	}
}

func (win *winSettings) drawDisplay() {
	vp := win.img.vprefs

	win.checkbox("Enabled", &vp.Enabled)

	n := int32(vp.PointCount.Get().(int))
	if imgui.SliderInt("Point count", &n, visualizer.MinPointCount, visualizer.MaxPointCount) {
		set(&vp.PointCount, int(n))
	}

	win.checkbox("Use sensitivity", &vp.UseSensitivity)
	imgui.SameLine()
	win.checkbox("Clamp", &vp.Clamp)

	imgui.Spacing()
	win.color("Box", &vp.BoxColor, vp.ResetBoxColor)
	win.color("Point", &vp.PointColor, vp.ResetPointColor)
	win.color("Deadzone", &vp.DeadzoneColor, vp.ResetDeadzoneColor)
	imgui.Spacing()

	sz := int32(vp.Size.Get().(int))
	if imgui.SliderInt("Size", &sz, visualizer.MinSize, visualizer.MaxSize) {
		set(&vp.Size, int(sz))
	}

	win.percent("Center X", &vp.CenterX, visualizer.MaxCenter)
	imgui.SameLine()
	imgui.PushID("centerX")
	if imgui.Button("Center") {
		set(&vp.CenterX, visualizer.DefaultCenter)
	}
	imgui.PopID()

	win.percent("Center Y", &vp.CenterY, visualizer.MaxCenter)
	imgui.SameLine()
	imgui.PushID("centerY")
	if imgui.Button("Center") {
		set(&vp.CenterY, visualizer.DefaultCenter)
	}
	imgui.PopID()

	win.percent("Point size", &vp.PointSize, visualizer.MaxPointSize)

	imgui.Spacing()
	if imgui.Button("Defaults") {
		logErr(vp.SetDefaults())
	}
	imgui.SameLine()
	if imgui.Button("Save") {
		logErr(vp.Save())
	}
}

func (win *winSettings) drawSession() {
	s := win.img.session

	imgui.Text(fmt.Sprintf("State: %s", s.State()))

	if imgui.BeginCombo("Mode", s.Mode().String()) {
		for _, m := range govern.Modes() {
			if imgui.Selectable(m.String()) {
				logErr(s.SetMode(m))
			}
		}
		imgui.EndCombo()
	}

	label := "Pause"
	if s.IsPaused() {
		label = "Resume"
	}
	if imgui.Button(label) {
		s.TogglePause()
	}

	sens := float32(s.Prefs.Sensitivity.Get().(float64))
	if imgui.SliderFloatV("Sensitivity", &sens, govern.MinSensitivity, govern.MaxSensitivity, "%.2f", imgui.SliderFlagsNone) {
		set(&s.Prefs.Sensitivity, float64(sens))
	}

	dz := float32(s.Prefs.Deadzone.Get().(float64)) * 100
	if imgui.SliderFloatV("Deadzone", &dz, govern.MinDeadzone*100, govern.MaxDeadzone*100, "%.0f%%", imgui.SliderFlagsNone) {
		set(&s.Prefs.Deadzone, float64(dz/100))
	}

	if imgui.Button("Save session") {
		logErr(s.Prefs.Save())
	}
}

func (win *winSettings) drawTips() {
	imgui.Text("The visualisation is only drawn during Freeplay and Training")
	imgui.Text("and while the session is not paused.")
	imgui.Spacing()
	imgui.Text("Points in the deadzone colour have a zero steer or pitch value.")
	imgui.Spacing()
	imgui.Text("F1 settings  F2 log  F12 snapshot  P pause  M mode  Esc quit")
}
