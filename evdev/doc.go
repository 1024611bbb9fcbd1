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

// Package evdev reads stick samples directly from Linux input devices
// (/dev/input/event*).
//
// Only the ABS_X and ABS_Y axes of the devices are used. A sample is emitted
// every time a device reports EV_SYN, using the most recent values of both
// axes. Raw axis values are normalised into the range -1 to 1 according to
// the Range field of the Reader.
//
// On platforms other than Linux the Open() function always fails.
package evdev
