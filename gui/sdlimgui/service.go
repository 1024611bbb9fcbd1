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
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/userinput"
)

// service is called once per frame by the Run() function.
func (img *SdlImgui) service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.handle(userinput.EventQuit{})

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(strings.TrimRight(string(ev.Text[:]), "\x00"))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				switch ev.Button {
				case sdl.BUTTON_LEFT:
					img.mouseDown[0] = true
				case sdl.BUTTON_RIGHT:
					img.mouseDown[1] = true
				case sdl.BUTTON_MIDDLE:
					img.mouseDown[2] = true
				}
			}

			// without this the result of the click is not seen until the
			// timeout of the next frame has elapsed
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)

		case *sdl.ControllerButtonEvent:
			button := userinput.GamepadButtonNone
			switch sdl.GameControllerButton(ev.Button) {
			case sdl.CONTROLLER_BUTTON_A:
				button = userinput.GamepadButtonA
			case sdl.CONTROLLER_BUTTON_B:
				button = userinput.GamepadButtonB
			case sdl.CONTROLLER_BUTTON_BACK:
				button = userinput.GamepadButtonBack
			case sdl.CONTROLLER_BUTTON_START:
				button = userinput.GamepadButtonStart
			case sdl.CONTROLLER_BUTTON_GUIDE:
				button = userinput.GamepadButtonGuide
			}

			if button != userinput.GamepadButtonNone {
				img.handle(userinput.EventGamepadButton{
					Button: button,
					Down:   ev.State == sdl.PRESSED,
				})
			}

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				img.plt.openGamepad(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				img.plt.closeDetachedGamepads()
			}
		}
	}

	img.pollGamepads()
	img.drainSamples()

	now := time.Now()
	delta := float32(now.Sub(img.lastFrame).Seconds())
	img.lastFrame = now

	img.plt.newFrame(delta)
	imgui.NewFrame()
	img.draw()
	imgui.Render()

	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}

// the position of the left thumbstick of every gamepad is sent once per
// frame. all gamepads feed the same stream of samples.
func (img *SdlImgui) pollGamepads() {
	for _, pad := range img.plt.gamepads {
		img.handle(userinput.EventGamepadThumbstick{
			Thumbstick: userinput.GamepadThumbstickLeft,
			Horiz:      pad.Axis(sdl.CONTROLLER_AXIS_LEFTX),
			Vert:       pad.Axis(sdl.CONTROLLER_AXIS_LEFTY),
		})
	}
}

// drain all pending samples from the sample channel.
func (img *SdlImgui) drainSamples() {
	if img.samples == nil {
		return
	}
	for {
		select {
		case s, ok := <-img.samples:
			if !ok {
				img.samples = nil
				return
			}
			img.HandleSample(s)
		default:
			return
		}
	}
}

// handle a userinput event. errors are logged.
func (img *SdlImgui) handle(ev userinput.Event) {
	err := img.ctrls.HandleUserInput(ev, img)
	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
	if img.ctrls.Quit {
		img.quitting = true
	}
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
	}

	modState := sdl.GetModState()
	img.io.KeyCtrl(int(modState)&sdl.KMOD_LCTRL, int(modState)&sdl.KMOD_RCTRL)
	img.io.KeyAlt(int(modState)&sdl.KMOD_LALT, int(modState)&sdl.KMOD_RALT)
	img.io.KeyShift(int(modState)&sdl.KMOD_LSHIFT, int(modState)&sdl.KMOD_RSHIFT)

	// text entry in an imgui widget takes precedence
	if img.io.WantTextInput() {
		return
	}

	mod := userinput.KeyModNone
	switch {
	case ev.Keysym.Mod&sdl.KMOD_CTRL != 0:
		mod = userinput.KeyModCtrl
	case ev.Keysym.Mod&sdl.KMOD_ALT != 0:
		mod = userinput.KeyModAlt
	case ev.Keysym.Mod&sdl.KMOD_SHIFT != 0:
		mod = userinput.KeyModShift
	}

	img.handle(userinput.EventKeyboard{
		Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
		Mod:    mod,
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Repeat != 0,
	})
}
