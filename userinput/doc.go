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

// Package userinput handles input from real hardware that the user is
// holding: a gamepad or the keyboard.
//
// It can be thought of as a translation layer between the GUI implementation
// and the visualizer. As such, this package hides the details of the GUI
// implementation from the rest of the program. The GUI translates its own
// events into the Event types defined here and passes them to
// Controllers.HandleUserInput().
//
// Thumbstick events are normalised to the range -1 to 1, the stick deadzone is
// applied and the result is forwarded as a visualizer.Sample. Buttons and keys
// are translated into Commands.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput
