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

import "github.com/stickvis/stickvis/visualizer"

// the largest positive value of an axis.
const axisMax = 32767.0

// Controllers keeps track of the user's input devices.
type Controllers struct {
	// the most recent stick reading forwarded to the handler
	Last visualizer.Sample

	// whether or not the last HandleUserInput() was for an event that was
	// translated into a command or a sample
	LastKeyHandled bool

	// is true if last event was a quit event
	Quit bool
}

// Normalise converts an axis value to the range -1 to 1. Values with a
// magnitude below the deadzone become exactly zero.
func Normalise(v int16, deadzone float32) float32 {
	n := float32(v) / axisMax
	if n < -1 {
		n = -1
	}
	if n < deadzone && n > -deadzone {
		return 0
	}
	return n
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat || !ev.Down || ev.Mod != KeyModNone {
		return nil
	}

	c.LastKeyHandled = true

	switch ev.Key {
	case "Escape":
		c.Quit = true
	case "P":
		return handle.HandleCommand(CommandTogglePause)
	case "M":
		return handle.HandleCommand(CommandCycleMode)
	case "F1":
		return handle.HandleCommand(CommandToggleSettings)
	case "F2":
		return handle.HandleCommand(CommandToggleLog)
	case "F12":
		return handle.HandleCommand(CommandSnapshot)
	default:
		c.LastKeyHandled = false
	}

	return nil
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, handle HandleInput) error {
	if !ev.Down {
		return nil
	}

	c.LastKeyHandled = true

	switch ev.Button {
	case GamepadButtonStart:
		return handle.HandleCommand(CommandTogglePause)
	case GamepadButtonBack:
		return handle.HandleCommand(CommandCycleMode)
	default:
		c.LastKeyHandled = false
	}

	return nil
}

func (c *Controllers) gamepadThumbstick(ev EventGamepadThumbstick, handle HandleInput) error {
	if ev.Thumbstick != GamepadThumbstickLeft {
		return nil
	}

	dz := handle.Deadzone()
	c.Last = visualizer.Sample{
		Steer: Normalise(ev.Horiz, dz),
		Pitch: Normalise(ev.Vert, dz),
	}
	c.LastKeyHandled = true
	handle.HandleSample(c.Last)

	return nil
}

// HandleUserInput deciphers the Event and forwards the input to the handler.
// The Quit field will be true if the event should cause the program to end.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.Quit = false
	c.LastKeyHandled = false

	var err error
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		err = c.keyboard(ev, handle)
	case EventGamepadButton:
		err = c.gamepadButton(ev, handle)
	case EventGamepadThumbstick:
		err = c.gamepadThumbstick(ev, handle)
	default:
	}

	return err
}
