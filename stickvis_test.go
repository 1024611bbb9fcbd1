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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stickvis/stickvis/modalflag"
	"github.com/stickvis/stickvis/recorder"
	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/version"
	"github.com/stickvis/stickvis/visualizer"
)

var transcriptSamples = []visualizer.Sample{
	{Steer: 0, Pitch: 0},
	{Steer: 0.5, Pitch: -0.25},
	{Steer: -1, Pitch: 1},
	{Steer: 0.75, Pitch: 0.5},
}

func writeTranscript(t *testing.T, fn string) {
	t.Helper()
	rec, err := recorder.NewRecorder(fn, recorder.DefaultTickRate)
	test.DemandSuccess(t, err)
	for i, s := range transcriptSamples {
		test.DemandSuccess(t, rec.RecordSample(uint64(i*2), s))
	}
	test.DemandSuccess(t, rec.End())
}

func newModes(args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs(args)
	return md
}

func ptr[T any](v T) *T {
	return &v
}

func noSources() *sourceFlags {
	return &sourceFlags{
		feed:     ptr(""),
		playback: ptr(""),
		loop:     ptr(false),
		record:   ptr(""),
		serve:    ptr(""),
	}
}

func TestWavMode(t *testing.T) {
	dir := t.TempDir()
	transcript := filepath.Join(dir, "in.txt")
	trace := filepath.Join(dir, "trace.wav")
	back := filepath.Join(dir, "back.txt")

	writeTranscript(t, transcript)

	test.DemandSuccess(t, wav(newModes(transcript, trace)))
	test.DemandSuccess(t, wav(newModes(trace, back)))

	plb, err := recorder.NewPlayback(back)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.TickRate, recorder.DefaultTickRate)

	orig, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.EndTick(), orig.EndTick())

	// the trace holds one frame per tick so the final sample survives
	samples := plb.Samples()
	test.DemandEquality(t, len(samples) > 0, true)
	last := samples[len(samples)-1]
	test.ExpectApproximate(t, last.Steer, 0.75, 0.001)
	test.ExpectApproximate(t, last.Pitch, 0.5, 0.001)

	test.ExpectFailure(t, wav(newModes(transcript)))
}

func TestSnapshotMode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".stickvis", 0o700))

	transcript := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.png")
	writeTranscript(t, transcript)

	test.DemandSuccess(t, snap(newModes("-width", "320", "-height", "200", transcript, output)))

	f, err := os.Open(output)
	test.DemandSuccess(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 320)
	test.ExpectEquality(t, cfg.Height, 200)

	test.ExpectFailure(t, snap(newModes()))
	test.ExpectFailure(t, snap(newModes(filepath.Join(dir, "missing.txt"), output)))
}

func TestProfileMode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".stickvis", 0o700))

	out := filepath.Join(dir, "profile.yaml")
	test.DemandSuccess(t, profile(newModes("-prefs", "stickvis.size::321", out)))

	data, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(data) > 0)

	// the exported profile can be imported by another mode
	test.DemandSuccess(t, profile(newModes("-profile", out)))
}

func TestOpenPlayback(t *testing.T) {
	dir := t.TempDir()
	transcript := filepath.Join(dir, "in.txt")
	writeTranscript(t, transcript)

	plb, err := openPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(plb.Samples()), len(transcriptSamples))

	_, err = openPlayback(filepath.Join(dir, "missing.wav"))
	test.ExpectFailure(t, err)
}

func TestSourcesPlayback(t *testing.T) {
	dir := t.TempDir()
	transcript := filepath.Join(dir, "in.txt")
	writeTranscript(t, transcript)

	sf := noSources()
	sf.playback = ptr(transcript)

	src, err := sf.start()
	test.DemandSuccess(t, err)

	timeout := time.After(5 * time.Second)
	for i := range transcriptSamples {
		select {
		case s := <-src.samples:
			test.ExpectEquality(t, s, transcriptSamples[i])
		case <-timeout:
			t.Fatalf("playback stalled after %d samples", i)
		}
	}

	test.ExpectSuccess(t, src.end())
}

func TestSourcesRecord(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "rec.txt")

	sf := noSources()
	sf.record = ptr(out)

	src, err := sf.start()
	test.DemandSuccess(t, err)

	for _, s := range transcriptSamples {
		src.tap(s)
	}
	test.DemandSuccess(t, src.end())

	plb, err := recorder.NewPlayback(out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(plb.Samples()), len(transcriptSamples))
}

func TestSourcesBadFeed(t *testing.T) {
	sf := noSources()
	sf.feed = ptr("http://localhost")

	_, err := sf.start()
	test.ExpectFailure(t, err)
}

func TestVersionMode(t *testing.T) {
	md := newModes()
	test.DemandSuccess(t, showVersion(md))
	out := md.Output.(*test.CompareWriter)
	test.ExpectEquality(t, strings.TrimSpace(out.String()), version.Summary())

	md = newModes("-revision")
	test.DemandSuccess(t, showVersion(md))
	out = md.Output.(*test.CompareWriter)
	test.ExpectSuccess(t, strings.Contains(out.String(), "\nrevision: "))
	test.ExpectSuccess(t, strings.Contains(out.String(), "\nplatform: "))
}
