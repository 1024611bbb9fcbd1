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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/visualizer"
)

// transcript file header format
// -----------------------------
//
// stickvis transcript
// version <n>
// tickrate <n>

const magicString = "stickvis transcript"

const formatVersion = 1

const (
	lineMagic int = iota
	lineVersion
	lineTickRate
	numHeaderLines
)

// DefaultTickRate is the tick rate used when none is specified. It is the
// physics rate of the game the visualizer was designed for.
const DefaultTickRate = 120

// MaxTickRate is the highest tick rate a transcript can have. Anything higher
// cannot be timed by the playback ticker.
const MaxTickRate = 1_000_000

func checkTickRate(tickRate int) error {
	if tickRate <= 0 || tickRate > MaxTickRate {
		return curated.Errorf(PlaybackError, fmt.Sprintf("invalid tick rate (%d)", tickRate))
	}
	return nil
}

// transcript entry format
// -----------------------
const (
	fieldTick int = iota
	fieldSteer
	fieldPitch
	numFields
)

const fieldSep = ", "

func writeHeader(w io.Writer, tickRate int) error {
	_, err := fmt.Fprintf(w, "%s\nversion %d\ntickrate %d\n", magicString, formatVersion, tickRate)
	return err
}

func readHeader(lines []string) (int, error) {
	if len(lines) < numHeaderLines {
		return 0, curated.Errorf(PlaybackError, "transcript header is too short")
	}

	if lines[lineMagic] != magicString {
		return 0, curated.Errorf(PlaybackError, "not a transcript file")
	}

	var version int
	if _, err := fmt.Sscanf(lines[lineVersion], "version %d", &version); err != nil {
		return 0, curated.Errorf(PlaybackError, "missing version")
	}
	if version != formatVersion {
		return 0, curated.Errorf(PlaybackError, fmt.Sprintf("unsupported version (%d)", version))
	}

	var tickRate int
	if _, err := fmt.Sscanf(lines[lineTickRate], "tickrate %d", &tickRate); err != nil {
		return 0, curated.Errorf(PlaybackError, "missing tick rate")
	}
	if err := checkTickRate(tickRate); err != nil {
		return 0, err
	}

	return tickRate, nil
}

func formatEntry(tick uint64, s visualizer.Sample) string {
	return strings.Join([]string{
		strconv.FormatUint(tick, 10),
		strconv.FormatFloat(float64(s.Steer), 'f', -1, 32),
		strconv.FormatFloat(float64(s.Pitch), 'f', -1, 32),
	}, fieldSep)
}

func parseEntry(line string, lineNum int) (Entry, error) {
	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return Entry{}, curated.Errorf(PlaybackError, fmt.Sprintf("expected %d fields at line %d", numFields, lineNum))
	}

	var e Entry
	var err error

	e.Tick, err = strconv.ParseUint(toks[fieldTick], 10, 64)
	if err != nil {
		return Entry{}, curated.Errorf(PlaybackError, fmt.Sprintf("bad tick at line %d", lineNum))
	}

	steer, err := strconv.ParseFloat(toks[fieldSteer], 32)
	if err != nil {
		return Entry{}, curated.Errorf(PlaybackError, fmt.Sprintf("bad steer value at line %d", lineNum))
	}

	pitch, err := strconv.ParseFloat(toks[fieldPitch], 32)
	if err != nil {
		return Entry{}, curated.Errorf(PlaybackError, fmt.Sprintf("bad pitch value at line %d", lineNum))
	}

	e.Sample = visualizer.Sample{Steer: float32(steer), Pitch: float32(pitch)}
	return e, nil
}
