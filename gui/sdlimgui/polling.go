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
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an event
// before drawing the next frame.
const (
	runningSleepPeriod = 5
	pausedSleepPeriod  = 50
)

type polling struct {
	img *SdlImgui

	// wake is used to preempt the timeout when we want the next frame to be
	// drawn immediately. for example, closing a window might feel laggy
	// without it
	wake bool
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img: img,
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// wait for an SDL event or until the timeout has elapsed. the timeout is
// longer when the session is not running because samples will not be
// recorded.
func (pol *polling) wait() sdl.Event {
	var timeout int
	if pol.wake {
		pol.wake = false
	} else if pol.img.session.IsPaused() {
		timeout = pausedSleepPeriod
	} else {
		timeout = runningSleepPeriod
	}

	return sdl.WaitEventTimeout(timeout)
}
