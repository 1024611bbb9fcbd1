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

package userinput

import (
	"github.com/stickvis/stickvis/visualizer"
)

// Command is a request from the user that is not stick input.
type Command int

// List of valid Command values.
const (
	CommandTogglePause Command = iota
	CommandCycleMode
	CommandToggleSettings
	CommandToggleLog
	CommandSnapshot
)

func (c Command) String() string {
	switch c {
	case CommandTogglePause:
		return "toggle pause"
	case CommandCycleMode:
		return "cycle mode"
	case CommandToggleSettings:
		return "toggle settings"
	case CommandToggleLog:
		return "toggle log"
	case CommandSnapshot:
		return "snapshot"
	}
	return ""
}

// HandleInput is implemented by the host that receives translated input.
type HandleInput interface {
	// HandleSample forwards a normalised stick reading.
	HandleSample(s visualizer.Sample)

	// HandleCommand forwards a user request.
	HandleCommand(cmd Command) error

	// Deadzone returns the stick deadzone as a fraction of the full range.
	Deadzone() float32
}
