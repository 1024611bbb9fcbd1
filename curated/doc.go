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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns used in this way should be stored as a const
// string, suitably named. For example:
//
//	const UnknownKey = "prefs: unknown key: %s"
//
//	e := curated.Errorf(UnknownKey, "stickvis.size")
//
//	if curated.Is(e, UnknownKey) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("visualizer: %v", e)
//
//	if curated.Has(f, UnknownKey) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference as being 'expected'
// and 'unexpected' errors.
//
// The Error() function ensures that the error chain does not contain duplicate
// adjacent parts. Chains are composed of parts separated by the sub-string
// ": ". So the chain
//
//	prefs: prefs: file not found
//
// is normalised to
//
//	prefs: file not found
//
// Curated errors also support Unwrap() so that errors.Is() and errors.As()
// from the standard library will find errors wrapped with the %v or %w verbs.
package curated
