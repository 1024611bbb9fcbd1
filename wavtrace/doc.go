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

// Package wavtrace converts transcripts to and from audio files. Steer is
// stored in the left channel and pitch in the right channel, one audio frame
// per tick, so the sample rate of the audio file is the tick rate of the
// transcript.
//
// Traces are exported as 16 bit stereo WAV files. Both WAV and MP3 files can
// be imported. MP3 is a lossy format and the imported samples will only
// approximate the original trace.
package wavtrace
