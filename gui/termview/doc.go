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

// Package termview is a terminal host for the visualiser. The visualisation
// is drawn with coloured character cells and a braille plot of the recent
// steer and pitch values is shown underneath.
//
// Samples arrive on a channel and are drained into the visualiser on every
// frame, before the frame is drawn, so recording and rendering never
// interleave.
package termview
