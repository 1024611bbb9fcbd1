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

package wavtrace

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/recorder"
	"github.com/stickvis/stickvis/visualizer"
)

// WavTraceError is the pattern for all errors returned by the package.
const WavTraceError = "wavtrace: %v"

const (
	bitDepth    = 16
	numChannels = 2
	fullScale   = 32767

	// audio format tag for uncompressed PCM
	pcmFormat = 1
)

func toInt(v float32) int {
	return int(math.Round(float64(max(-1, min(1, v)) * fullScale)))
}

func toFloat(v int) float32 {
	return max(-1, min(1, float32(v)/fullScale))
}

// Frames converts transcript entries into one sample per tick, from tick zero
// to the final tick of the transcript. Ticks without an entry repeat the
// previous sample. When a tick has more than one entry the last one is used.
func Frames(entries []recorder.Entry) []visualizer.Sample {
	if len(entries) == 0 {
		return nil
	}

	end := entries[len(entries)-1].Tick
	frames := make([]visualizer.Sample, 0, end+1)

	var cur visualizer.Sample
	e := 0
	for tick := uint64(0); tick <= end; tick++ {
		for e < len(entries) && entries[e].Tick <= tick {
			cur = entries[e].Sample
			e++
		}
		frames = append(frames, cur)
	}

	return frames
}

// Export the transcript file to a WAV file.
func Export(transcript string, wavFile string) (rerr error) {
	plb, err := recorder.NewPlayback(transcript)
	if err != nil {
		return curated.Errorf(WavTraceError, err)
	}

	frames := Frames(plb.Entries())
	if len(frames) == 0 {
		return curated.Errorf(WavTraceError, "transcript is empty")
	}

	f, err := os.Create(wavFile)
	if err != nil {
		return curated.Errorf(WavTraceError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavTraceError, err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  plb.TickRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, 0, len(frames)*numChannels),
	}
	for _, s := range frames {
		buf.Data = append(buf.Data, toInt(s.Steer), toInt(s.Pitch))
	}

	enc := wav.NewEncoder(f, plb.TickRate, bitDepth, numChannels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavTraceError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavTraceError, err)
	}

	logger.Logf(logger.Allow, "wavtrace", "exported %d frames at %dHz to %s", len(frames), plb.TickRate, wavFile)

	return nil
}

// Import a WAV or MP3 file. Returns the transcript entries, one per frame, and
// the tick rate.
func Import(filename string) ([]recorder.Entry, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, curated.Errorf(WavTraceError, err)
	}
	defer f.Close()

	var data []int
	var rate int

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		data, rate, err = decodeMP3(f)
	default:
		data, rate, err = decodeWAV(f)
	}
	if err != nil {
		return nil, 0, err
	}

	entries := make([]recorder.Entry, 0, len(data)/numChannels)
	for i := 0; i+1 < len(data); i += numChannels {
		entries = append(entries, recorder.Entry{
			Tick: uint64(i / numChannels),
			Sample: visualizer.Sample{
				Steer: toFloat(data[i]),
				Pitch: toFloat(data[i+1]),
			},
		})
	}

	logger.Logf(logger.Allow, "wavtrace", "imported %d frames at %dHz from %s", len(entries), rate, filename)

	return entries, rate, nil
}

// NewPlayback imports the file and returns it as a Playback.
func NewPlayback(filename string) (*recorder.Playback, error) {
	entries, rate, err := Import(filename)
	if err != nil {
		return nil, err
	}
	return recorder.NewPlaybackFromEntries(filename, rate, entries)
}

func decodeWAV(r io.ReadSeeker) ([]int, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf(WavTraceError, "not a valid wav file")
	}

	if dec.NumChans != numChannels {
		return nil, 0, curated.Errorf(WavTraceError, fmt.Sprintf("trace must be stereo (file has %d channels)", dec.NumChans))
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf(WavTraceError, err)
	}

	// scale to 16 bit if the file uses another bit depth
	data := buf.Data
	if dec.BitDepth != bitDepth && dec.BitDepth > 0 {
		shift := int(dec.BitDepth) - bitDepth
		for i := range data {
			if shift > 0 {
				data[i] >>= shift
			} else {
				data[i] <<= -shift
			}
		}
	}

	return data, int(dec.SampleRate), nil
}

func decodeMP3(r io.Reader) ([]int, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, curated.Errorf(WavTraceError, err)
	}

	// the decoded stream is always 16 bit little endian stereo
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, curated.Errorf(WavTraceError, err)
	}

	data := make([]int, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		data = append(data, int(int16(uint16(raw[i])|uint16(raw[i+1])<<8)))
	}

	return data, dec.SampleRate(), nil
}
