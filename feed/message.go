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

package feed

import (
	"bytes"
	"encoding/json"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/visualizer"
)

// BadMessage is the pattern for errors returned when a message cannot be
// decoded.
const BadMessage = "feed: bad message: %v"

type message struct {
	Steer *float32 `json:"steer"`
	Pitch *float32 `json:"pitch"`
}

func (m message) sample() (visualizer.Sample, error) {
	if m.Steer == nil || m.Pitch == nil {
		return visualizer.Sample{}, curated.Errorf(BadMessage, "missing axis")
	}
	return visualizer.Sample{Steer: *m.Steer, Pitch: *m.Pitch}, nil
}

// Decode a message into one or more samples.
func Decode(data []byte) ([]visualizer.Sample, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, curated.Errorf(BadMessage, "empty")
	}

	var msgs []message

	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, curated.Errorf(BadMessage, err)
		}
	case '{':
		var m message
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, curated.Errorf(BadMessage, err)
		}
		msgs = append(msgs, m)
	default:
		return nil, curated.Errorf(BadMessage, "not a sample or an array of samples")
	}

	samples := make([]visualizer.Sample, 0, len(msgs))
	for _, m := range msgs {
		s, err := m.sample()
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	return samples, nil
}

// Encode a single sample as a message.
func Encode(s visualizer.Sample) ([]byte, error) {
	return json.Marshal(message{Steer: &s.Steer, Pitch: &s.Pitch})
}
