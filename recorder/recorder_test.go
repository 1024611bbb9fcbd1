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

package recorder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/recorder"
	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/visualizer"
)

func writeTranscript(t *testing.T, tickRate int, entries []recorder.Entry) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "transcript")
	rec, err := recorder.NewRecorder(fn, tickRate)
	test.DemandSuccess(t, err)

	for _, e := range entries {
		test.DemandSuccess(t, rec.RecordSample(e.Tick, e.Sample))
	}
	test.DemandSuccess(t, rec.End())

	return fn
}

var testEntries = []recorder.Entry{
	{Tick: 0, Sample: visualizer.Sample{Steer: 0, Pitch: 0}},
	{Tick: 1, Sample: visualizer.Sample{Steer: 0.25, Pitch: -0.5}},
	{Tick: 1, Sample: visualizer.Sample{Steer: 0.3, Pitch: -0.55}},
	{Tick: 5, Sample: visualizer.Sample{Steer: -1, Pitch: 1}},
}

func TestFileFormat(t *testing.T) {
	fn := writeTranscript(t, 120, testEntries)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected := "stickvis transcript\nversion 1\ntickrate 120\n" +
		"0, 0, 0\n" +
		"1, 0.25, -0.5\n" +
		"1, 0.3, -0.55\n" +
		"5, -1, 1\n"
	test.ExpectEquality(t, string(data), expected)
}

func TestRoundTrip(t *testing.T) {
	fn := writeTranscript(t, 60, testEntries)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.TickRate, 60)
	test.ExpectEquality(t, plb.EndTick(), uint64(5))

	entries := plb.Entries()
	test.DemandEquality(t, len(entries), len(testEntries))
	for i := range entries {
		test.ExpectEquality(t, entries[i], testEntries[i])
	}

	samples := plb.Samples()
	test.ExpectEquality(t, samples[3], visualizer.Sample{Steer: -1, Pitch: 1})
}

func TestRecorderErrors(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")
	rec, err := recorder.NewRecorder(fn, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.TickRate(), recorder.DefaultTickRate)

	test.ExpectSuccess(t, rec.RecordSample(10, visualizer.Sample{}))

	// ticks cannot go backwards
	err = rec.RecordSample(9, visualizer.Sample{})
	test.ExpectSuccess(t, curated.Is(err, recorder.RecordingError))
	test.ExpectEquality(t, rec.Count(), 1)

	test.ExpectSuccess(t, rec.End())
	test.ExpectSuccess(t, rec.End())

	// no recording after end
	err = rec.RecordSample(11, visualizer.Sample{})
	test.ExpectFailure(t, err)

	_, err = recorder.NewRecorder(filepath.Join(t.TempDir(), "missing", "transcript"), 0)
	test.ExpectFailure(t, err)

	_, err = recorder.NewRecorder(filepath.Join(t.TempDir(), "transcript"), recorder.MaxTickRate+1)
	test.ExpectSuccess(t, curated.Is(err, recorder.RecordingError))
}

func TestBadTranscripts(t *testing.T) {
	dir := t.TempDir()

	for i, content := range []string{
		"",
		"not a transcript\nversion 1\ntickrate 120\n",
		"stickvis transcript\nversion 2\ntickrate 120\n",
		"stickvis transcript\nversion 1\ntickrate 0\n",
		"stickvis transcript\nversion 1\ntickrate 2000000000\n0, 0, 0\n",
		"stickvis transcript\nversion 1\ntickrate 120\n0, 1\n",
		"stickvis transcript\nversion 1\ntickrate 120\n0, x, 1\n",
		"stickvis transcript\nversion 1\ntickrate 120\n-1, 0, 1\n",
		"stickvis transcript\nversion 1\ntickrate 120\n5, 0, 1\n4, 0, 1\n",
	} {
		fn := filepath.Join(dir, "bad")
		test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))
		_, err := recorder.NewPlayback(fn)
		test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackError), i)
	}

	_, err := recorder.NewPlayback(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)
}

func TestPlaybackRun(t *testing.T) {
	fn := writeTranscript(t, 1000, testEntries)
	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	out := make(chan visualizer.Sample, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = plb.Run(ctx, out, false)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackEnded))

	close(out)
	var got []visualizer.Sample
	for s := range out {
		got = append(got, s)
	}
	test.DemandEquality(t, len(got), len(testEntries))
	for i := range got {
		test.ExpectEquality(t, got[i], testEntries[i].Sample)
	}
}

func TestPlaybackLoopCancel(t *testing.T) {
	fn := writeTranscript(t, 1000, testEntries)
	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	out := make(chan visualizer.Sample)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- plb.Run(ctx, out, true)
	}()

	// read more samples than are in the transcript to prove looping
	for i := range len(testEntries) * 3 {
		s := <-out
		test.ExpectEquality(t, s, testEntries[i%len(testEntries)].Sample)
	}

	cancel()
	test.ExpectEquality(t, <-done, context.Canceled)
}

func TestPlaybackFromEntries(t *testing.T) {
	plb, err := recorder.NewPlaybackFromEntries("test", 60, testEntries)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.TickRate, 60)
	test.ExpectEquality(t, len(plb.Entries()), len(testEntries))
	test.ExpectEquality(t, plb.EndTick(), uint64(5))

	_, err = recorder.NewPlaybackFromEntries("test", 0, testEntries)
	test.ExpectEquality(t, curated.Is(err, recorder.PlaybackError), true)

	_, err = recorder.NewPlaybackFromEntries("test", 60, []recorder.Entry{{Tick: 2}, {Tick: 1}})
	test.ExpectEquality(t, curated.Is(err, recorder.PlaybackError), true)
}

func TestTickRateLimit(t *testing.T) {
	plb, err := recorder.NewPlaybackFromEntries("test", recorder.MaxTickRate, testEntries)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.TickRate, recorder.MaxTickRate)

	// a rate too fast for the ticker is refused rather than panicking in Run
	_, err = recorder.NewPlaybackFromEntries("test", 2000000000, testEntries)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackError))

	plb.TickRate = 2000000000
	err = plb.Run(context.Background(), make(chan visualizer.Sample, len(testEntries)), false)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackError))
}
