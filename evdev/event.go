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
	"bytes"
	"encoding/binary"

	"github.com/stickvis/stickvis/visualizer"
)

// event types and codes from linux/input-event-codes.h
const (
	evSyn = 0x00
	evAbs = 0x03

	absX = 0x00
	absY = 0x01
)

// inputEvent is the struct input_event from linux/input.h on 64 bit
// platforms.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

var eventSize = binary.Size(inputEvent{})

// Range is the minimum and maximum raw value reported by an axis.
type Range struct {
	Min int32
	Max int32
}

// DefaultRange is the range of a typical gamepad thumbstick.
var DefaultRange = Range{Min: -32768, Max: 32767}

// Mid returns the raw value at the centre of the range.
func (r Range) Mid() int32 {
	return int32((int64(r.Min) + int64(r.Max)) / 2)
}

// Normalise a raw axis value into the range -1 to 1. The midpoint of the
// range is always normalised to exactly zero.
func (r Range) Normalise(v int32) float32 {
	if r.Max <= r.Min {
		return 0
	}

	mid := int64(r.Mid())

	var n float64
	if int64(v) >= mid {
		n = float64(int64(v)-mid) / float64(int64(r.Max)-mid)
	} else {
		n = float64(int64(v)-mid) / float64(mid-int64(r.Min))
	}

	return float32(max(-1, min(1, n)))
}

// axes accumulates axis values between EV_SYN events.
type axes struct {
	rng   Range
	x, y  int32
	dirty bool
}

// newAxes returns axes that are centred until the device reports otherwise.
func newAxes(rng Range) *axes {
	mid := rng.Mid()
	return &axes{rng: rng, x: mid, y: mid}
}

// apply an event. Returns a sample and true if the event completes a report
// in which one of the axes changed.
func (a *axes) apply(ev inputEvent) (visualizer.Sample, bool) {
	switch ev.Type {
	case evAbs:
		switch ev.Code {
		case absX:
			a.x = ev.Value
			a.dirty = true
		case absY:
			a.y = ev.Value
			a.dirty = true
		}
	case evSyn:
		if a.dirty {
			a.dirty = false
			return visualizer.Sample{
				Steer: a.rng.Normalise(a.x),
				Pitch: a.rng.Normalise(a.y),
			}, true
		}
	}
	return visualizer.Sample{}, false
}

// decode every complete event in buf and pass resulting samples to the emit
// function.
func (a *axes) decode(buf []byte, emit func(visualizer.Sample)) {
	rdr := bytes.NewReader(buf)
	for {
		var ev inputEvent
		if err := binary.Read(rdr, binary.LittleEndian, &ev); err != nil {
			// io.EOF or a partial event at the end of the buffer
			return
		}
		if s, ok := a.apply(ev); ok {
			emit(s)
		}
	}
}
