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

package visualizer

// History is the ordered record of samples, oldest first. The zero value is
// an empty history ready for use.
//
// History is not safe for concurrent use. The Visualizer type serialises
// access to its history.
type History struct {
	samples []Sample
}

// Record appends a sample to the history. If the history is at or above the
// capacity then enough of the oldest entries are removed that the history
// holds exactly capacity entries after the append.
//
// A capacity of less than one leaves only the new sample in the history.
// Reducing the capacity between calls does nothing until the next call to
// Record(), at which point the history is reduced in one go.
func (h *History) Record(s Sample, capacity int) {
	if len(h.samples) >= capacity {
		n := 1 + len(h.samples) - capacity
		if n > len(h.samples) {
			n = len(h.samples)
		}

		// move the remaining samples to the front of the existing array to
		// avoid reallocating on every call once the history is full
		m := copy(h.samples, h.samples[n:])
		h.samples = h.samples[:m]
	}
	h.samples = append(h.samples, s)
}

// Reserve makes sure there is storage for at least n samples. It does not
// change the contents of the history.
func (h *History) Reserve(n int) {
	if n <= cap(h.samples) {
		return
	}
	s := make([]Sample, len(h.samples), n)
	copy(s, h.samples)
	h.samples = s
}

// Len returns the number of samples in the history.
func (h *History) Len() int {
	return len(h.samples)
}

// Snapshot returns a copy of the samples in the history, oldest first.
func (h *History) Snapshot() []Sample {
	s := make([]Sample, len(h.samples))
	copy(s, h.samples)
	return s
}
