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

package evdev

import (
	"os"
)

// Sentinal error patterns.
const (
	NoDevices   = "evdev: no devices"
	DeviceError = "evdev: %v"
	Unsupported = "evdev: not supported on this platform"
)

// Reader reads samples from one or more input devices. The axis values of
// all devices are merged into a single stream of samples.
type Reader struct {
	files []*os.File

	// the raw range of the ABS_X and ABS_Y axes. changing the range while
	// Run() is active has no effect
	Range Range
}

// Devices returns the names of the device files being read.
func (r *Reader) Devices() []string {
	n := make([]string, 0, len(r.files))
	for _, f := range r.files {
		n = append(n, f.Name())
	}
	return n
}

// Close all device files.
func (r *Reader) Close() error {
	var err error
	for _, f := range r.files {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}
	r.files = nil
	return err
}
