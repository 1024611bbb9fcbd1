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
	"io"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/stickvis/stickvis/assert"
	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/govern"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/userinput"
	"github.com/stickvis/stickvis/visualizer"
)

// SdlImgui is an SDL based host for the visualiser using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *gl21
	polling *polling

	// the goroutine that created the window. SDL calls must be made from
	// this goroutine
	thread assert.Goroutine

	vis     *visualizer.Visualizer
	vprefs  *visualizer.Preferences
	session *govern.Session

	// translation of userinput events into samples and commands
	ctrls userinput.Controllers

	// samples from sources other than the gamepads. drained before every
	// frame
	samples <-chan visualizer.Sample

	// called for every sample before it is passed to the visualiser. may be
	// nil
	tap func(visualizer.Sample)

	// window specific preferences
	prefs *preferences

	settings winSettings
	log      winLog

	// mouse buttons pressed since the last frame. see platform.newFrame()
	mouseDown [3]bool

	lastFrame time.Time

	started  bool
	quitting bool
	ended    bool
	done     chan struct{}
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
// The window geometry is stored in the preferences file at pth.
//
// MUST ONLY be called from the main thread.
func NewSdlImgui(vis *visualizer.Visualizer, vprefs *visualizer.Preferences, session *govern.Session, pth string) (*SdlImgui, error) {
	if vis == nil || vprefs == nil || session == nil {
		return nil, curated.Errorf("sdlimgui: %v", "incomplete host")
	}

	img := &SdlImgui{
		thread:  assert.Here(),
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		vis:     vis,
		vprefs:  vprefs,
		session: session,
		done:    make(chan struct{}),
	}

	// window positions are not saved by imgui
	img.io.SetIniFilename("")

	var err error

	img.plt, err = newPlatform(img)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd = newRenderer(img)
	err = img.rnd.start()
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.polling = newPolling(img)
	img.settings = newWinSettings(img)
	img.log = newWinLog(img)

	img.prefs, err = newPreferences(img, pth)
	if err != nil {
		img.Destroy(nil)
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	err = img.prefs.load()
	if err != nil {
		img.Destroy(nil)
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	return img, nil
}

// Destroy releases all resources.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.thread.Check("sdlimgui.Destroy")
	img.rnd.destroy()
	err := img.plt.destroy()
	if err != nil && output != nil {
		output.Write([]byte(err.Error()))
	}
	img.context.Destroy()
}

// SetSource sets the channel on which samples from sources other than the
// gamepads arrive. The samples are passed to the visualiser before every
// frame. The tap function, if not nil, sees every sample passed to the
// visualiser including those from the gamepads.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) SetSource(samples <-chan visualizer.Sample, tap func(visualizer.Sample)) {
	img.samples = samples
	img.tap = tap
}

// Done returns a channel that is closed when the user has quit and the
// preferences have been saved.
func (img *SdlImgui) Done() <-chan struct{} {
	return img.done
}

// Service draws a single frame after handling all pending events.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Service() {
	img.thread.Check("sdlimgui.Service")

	if img.ended {
		return
	}

	if !img.started {
		img.started = true
		img.plt.window.Show()
		img.session.SetState(govern.Running)
		img.lastFrame = time.Now()
	}

	img.service()

	if img.quitting {
		if err := img.end(); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
		img.ended = true
		close(img.done)
	}
}

// end program. window geometry and all preferences are saved.
func (img *SdlImgui) end() error {
	img.session.SetState(govern.Ending)

	if err := img.prefs.save(); err != nil {
		return curated.Errorf("sdlimgui: %v", err)
	}
	if err := img.vprefs.Save(); err != nil {
		return curated.Errorf("sdlimgui: %v", err)
	}
	if err := img.session.Prefs.Save(); err != nil {
		return curated.Errorf("sdlimgui: %v", err)
	}

	logger.Log(logger.Allow, "sdlimgui", "preferences saved")

	return nil
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	w, h := img.plt.windowSize()
	img.vis.Draw(canvas{
		dl:   imgui.BackgroundDrawList(),
		size: visualizer.Vec2{X: w, Y: h},
	})

	img.settings.draw()
	img.log.draw()
}
