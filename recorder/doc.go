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

// Package recorder writes stick samples to a transcript file and plays them
// back at the speed they were recorded.
//
// A transcript is a plain text file. The header identifies the file and the
// tick rate at which the samples were recorded:
//
//	stickvis transcript
//	version 1
//	tickrate 120
//
// Each following line is a single sample:
//
//	<tick>, <steer>, <pitch>
//
// Ticks are counted from the start of the recording and must not decrease.
// More than one sample may share a tick.
//
// A transcript is an explicit recording made at the user's request. Recording
// has no effect on the visualizer's history, which always starts empty.
package recorder
