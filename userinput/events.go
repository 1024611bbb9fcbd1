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

// Event is the base type for all events.
type Event interface{}

// EventQuit is sent when the user wants to end the program.
type EventQuit struct{}

// KeyMod identifies the modifier keys held down with a key.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent when a key is pressed or released. Key is the name of
// the key as reported by the GUI. For letters this is the upper case letter.
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// GamepadButton identifies a gamepad button.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonA
	GamepadButtonB
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
)

// EventGamepadButton is sent when a gamepad button is pressed or released.
type EventGamepadButton struct {
	Button GamepadButton
	Down   bool
}

// GamepadThumbstick identifies one of the gamepad thumbsticks.
type GamepadThumbstick int

// List of valid GamepadThumbstick values.
const (
	GamepadThumbstickLeft GamepadThumbstick = iota
	GamepadThumbstickRight
)

// EventGamepadThumbstick is sent with the current position of a thumbstick.
// Values are in the full range of an int16. Positive Horiz is right and
// positive Vert is down.
type EventGamepadThumbstick struct {
	Thumbstick GamepadThumbstick
	Horiz      int16
	Vert       int16
}
