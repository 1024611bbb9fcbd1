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

package recorder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/visualizer"
)

// RecordingError is the pattern for errors returned by the Recorder.
const RecordingError = "recording: %v"

// Recorder writes samples to a transcript file. It is safe to use from
// multiple goroutines.
type Recorder struct {
	crit sync.Mutex

	output io.WriteCloser
	w      *bufio.Writer

	tickRate int
	start    time.Time
	lastTick uint64
	count    int
}

// NewRecorder is the preferred method of implementation for the Recorder
// type. The file is created and the header written immediately. A tick rate of
// zero or less means DefaultTickRate. A tick rate above MaxTickRate is an
// error.
func NewRecorder(filename string, tickRate int) (*Recorder, error) {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if tickRate > MaxTickRate {
		return nil, curated.Errorf(RecordingError, fmt.Sprintf("tick rate too high (%d)", tickRate))
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec := &Recorder{
		output:   f,
		w:        bufio.NewWriter(f),
		tickRate: tickRate,
		start:    time.Now(),
	}

	if err := writeHeader(rec.w, tickRate); err != nil {
		f.Close()
		return nil, curated.Errorf(RecordingError, err)
	}

	return rec, nil
}

// TickRate returns the number of ticks per second in the recording.
func (rec *Recorder) TickRate() int {
	return rec.tickRate
}

// CurrentTick returns the number of ticks that have elapsed since the
// recorder was created, according to the wall clock.
func (rec *Recorder) CurrentTick() uint64 {
	return uint64(time.Since(rec.start) * time.Duration(rec.tickRate) / time.Second)
}

// RecordSample writes the sample to the transcript at the specified tick.
// Ticks must not decrease.
func (rec *Recorder) RecordSample(tick uint64, s visualizer.Sample) error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.output == nil {
		return curated.Errorf(RecordingError, "recording has ended")
	}

	if tick < rec.lastTick {
		return curated.Errorf(RecordingError, "tick is earlier than previous sample")
	}
	rec.lastTick = tick

	if _, err := rec.w.WriteString(formatEntry(tick, s)); err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if err := rec.w.WriteByte('\n'); err != nil {
		return curated.Errorf(RecordingError, err)
	}

	rec.count++

	return nil
}

// Record writes the sample at the current tick.
func (rec *Recorder) Record(s visualizer.Sample) error {
	return rec.RecordSample(rec.CurrentTick(), s)
}

// Count returns the number of samples recorded.
func (rec *Recorder) Count() int {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.count
}

// End flushes and closes the transcript. Calling End() more than once is
// not an error.
func (rec *Recorder) End() error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.output == nil {
		return nil
	}

	err := rec.w.Flush()
	cerr := rec.output.Close()
	rec.output = nil

	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if cerr != nil {
		return curated.Errorf(RecordingError, cerr)
	}

	return nil
}
