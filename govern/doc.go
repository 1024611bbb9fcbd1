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

// Package govern defines the types that describe the current condition of the
// session: the Mode and the State.
//
// The Session type holds the current mode and state and can be shared between
// goroutines. It implements the visualizer.ActivityContext and
// visualizer.Host interfaces so that it can be handed directly to the
// visualizer.
//
// Changes to the mode or state most often come from the user, through the
// GUI or from keyboard and gamepad bindings (see the userinput package).
package govern
