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

// Package sdlimgui is the windowed host for the visualiser. It uses SDL for
// the window and for gamepad input, and Dear Imgui for drawing.
//
// The visualisation is drawn to a draw list covering the whole window. A
// settings window (F1) exposes every display setting and the session
// preferences. A log window (F2) shows the central log.
//
// Input from the keyboard and from gamepads is translated into userinput
// events and handled by the userinput.Controllers type. The position of the
// left thumbstick of every open gamepad is polled once per frame so that a
// steady stick still produces a sample every frame.
//
// All functions in this package MUST be called from the main thread.
package sdlimgui
