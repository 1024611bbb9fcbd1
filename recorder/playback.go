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
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/visualizer"
)

// Sentinal error patterns.
const (
	PlaybackError = "playback: %v"
	PlaybackEnded = "playback: ended"
)

// Entry is a single sample in a transcript.
type Entry struct {
	Tick   uint64
	Sample visualizer.Sample
}

// Playback is used to reperform the samples recorded in a transcript.
type Playback struct {
	Filename string
	TickRate int

	entries []Entry
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%s: %d samples over %d ticks at %dHz", plb.Filename, len(plb.entries), plb.EndTick(), plb.TickRate)
}

// NewPlayback is the preferred method of implementation for the Playback
// type. The transcript is read and validated in its entirety.
func NewPlayback(filename string) (*Playback, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	plb := &Playback{Filename: filename}

	plb.TickRate, err = readHeader(lines)
	if err != nil {
		return nil, err
	}

	var last uint64
	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}

		if e.Tick < last {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("ticks out of order at line %d", i+1))
		}
		last = e.Tick

		plb.entries = append(plb.entries, e)
	}

	return plb, nil
}

// NewPlaybackFromEntries creates a Playback from entries that did not come
// from a transcript file. The name is used only for the String() function.
// Entries must be in tick order.
func NewPlaybackFromEntries(name string, tickRate int, entries []Entry) (*Playback, error) {
	if err := checkTickRate(tickRate); err != nil {
		return nil, err
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Tick < entries[i-1].Tick {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("ticks out of order at entry %d", i))
		}
	}

	return &Playback{
		Filename: name,
		TickRate: tickRate,
		entries:  append([]Entry(nil), entries...),
	}, nil
}

// Entries returns a copy of the transcript entries.
func (plb *Playback) Entries() []Entry {
	return append([]Entry(nil), plb.entries...)
}

// Samples returns the samples in the transcript in order.
func (plb *Playback) Samples() []visualizer.Sample {
	s := make([]visualizer.Sample, len(plb.entries))
	for i, e := range plb.entries {
		s[i] = e.Sample
	}
	return s
}

// EndTick returns the tick of the final sample.
func (plb *Playback) EndTick() uint64 {
	if len(plb.entries) == 0 {
		return 0
	}
	return plb.entries[len(plb.entries)-1].Tick
}

// Run sends the samples to the out channel at the rate they were recorded.
// If loop is true then playback starts again from the beginning once the
// transcript has ended.
//
// Run returns when the context is done or when the transcript has ended (if
// not looping), in which case the error will be a PlaybackEnded error.
func (plb *Playback) Run(ctx context.Context, out chan<- visualizer.Sample, loop bool) error {
	if len(plb.entries) == 0 {
		return curated.Errorf(PlaybackEnded)
	}

	if err := checkTickRate(plb.TickRate); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(plb.TickRate))
	defer ticker.Stop()

	logger.Logf(logger.Allow, "playback", "%s", plb)

	var tick uint64
	var idx int

	for {
		for idx < len(plb.entries) && plb.entries[idx].Tick <= tick {
			select {
			case out <- plb.entries[idx].Sample:
			case <-ctx.Done():
				return ctx.Err()
			}
			idx++
		}

		if idx >= len(plb.entries) {
			if !loop {
				return curated.Errorf(PlaybackEnded)
			}
			idx = 0
			tick = 0
			logger.Log(logger.Allow, "playback", "looping")
		} else {
			tick++
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
