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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "SNAPSHOT")
//	p, err := md.Parse()
//
// After parsing, the selected mode is returned by Mode(). The first sub-mode
// in the list is the default mode, selected when the first argument does not
// name a sub-mode. Sub-mode comparisons are case insensitive.
//
// Each mode can then define its own flags with a call to NewMode() followed by
// the AddBool(), AddString(), etc. functions and another call to Parse().
//
//	md.NewMode()
//	size := md.AddInt("size", 200, "size of the visualisation box")
//	p, err = md.Parse()
//
// The flag functions return a pointer to a variable of the specified type.
// The Parse() function sets these values according to what the user has
// requested.
//
// Path() returns all the modes that have been encountered, separated by a
// forward slash. For example, "SNAPSHOT".
//
// Help messages are printed to the Output writer when the -help flag is seen.
// The help message lists the flags and sub-modes for the current mode.
package modalflag
