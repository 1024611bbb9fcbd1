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

package govern

import (
	"strings"

	"github.com/stickvis/stickvis/curated"
)

// Mode indicates the kind of play the session is in.
type Mode int

// List of defined modes.
const (
	ModeNone Mode = iota
	ModeMenu
	ModeFreeplay
	ModeTraining
	ModeMatch
)

// the order of modes when cycling.
var cycle = []Mode{ModeMenu, ModeFreeplay, ModeTraining, ModeMatch}

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeFreeplay:
		return "Freeplay"
	case ModeTraining:
		return "Training"
	case ModeMatch:
		return "Match"
	}

	return ""
}

// Eligible returns true if the mode allows the visualisation to be active.
func (m Mode) Eligible() bool {
	return m == ModeFreeplay || m == ModeTraining
}

// Modes returns the list of modes that can be selected by the user.
func Modes() []Mode {
	return append([]Mode(nil), cycle...)
}

// UnknownMode is the error pattern returned by ParseMode().
const UnknownMode = "govern: unknown mode: %s"

// ParseMode converts a string to a Mode. The comparison is case insensitive.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for _, m := range cycle {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return ModeNone, curated.Errorf(UnknownMode, s)
}
