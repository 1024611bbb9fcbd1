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
	"sync/atomic"

	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/prefs"
)

// Session is the current condition of the program. It is safe to use from
// multiple goroutines.
type Session struct {
	mode  atomic.Value // Mode
	state atomic.Value // State

	Prefs *Preferences
}

// NewSession is the preferred method of initialisation for the Session type.
// The preferences are loaded from the file at pth, which is created if it
// does not exist. The session starts in the Initialising state.
func NewSession(pth string) (*Session, error) {
	s := &Session{}
	s.state.Store(Initialising)
	s.mode.Store(DefaultMode)

	var err error
	s.Prefs, err = newPreferences(pth)
	if err != nil {
		return nil, err
	}

	s.Prefs.Mode.SetHookPre(func(v prefs.Value) error {
		_, err := ParseMode(v.(string))
		return err
	})
	s.Prefs.Mode.SetHookPost(func(v prefs.Value) error {
		m, _ := ParseMode(v.(string))
		s.mode.Store(m)
		return nil
	})

	if err := s.Prefs.dsk.Load(true); err != nil {
		return nil, err
	}

	return s, nil
}

// SetMode changes the mode of the session. The mode preference is updated
// too so that the mode is restored the next time the program runs.
func (s *Session) SetMode(m Mode) error {
	if err := s.Prefs.Mode.Set(m.String()); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "govern", "mode: %s", m)
	return nil
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode.Load().(Mode)
}

// CycleMode changes to the next mode in the list returned by Modes(). The new
// mode is returned.
func (s *Session) CycleMode() Mode {
	cur := s.Mode()
	next := cycle[0]
	for i, m := range cycle {
		if m == cur {
			next = cycle[(i+1)%len(cycle)]
			break // for loop
		}
	}

	// next is always a valid mode so there is no error to handle
	_ = s.SetMode(next)

	return next
}

// SetState changes the state of the session.
func (s *Session) SetState(state State) {
	if s.State() == state {
		return
	}
	s.state.Store(state)
	logger.Logf(logger.Allow, "govern", "state: %s", state)
}

// State returns the current state.
func (s *Session) State() State {
	return s.state.Load().(State)
}

// TogglePause switches between the Running and Paused states. Other states
// are not affected. The new state is returned.
func (s *Session) TogglePause() State {
	switch s.State() {
	case Running:
		s.SetState(Paused)
	case Paused:
		s.SetState(Running)
	}
	return s.State()
}

// IsEligiblePlayMode implements the visualizer.ActivityContext interface.
func (s *Session) IsEligiblePlayMode() bool {
	return s.Mode().Eligible()
}

// IsPaused implements the visualizer.ActivityContext interface. Only the
// Running state counts as unpaused.
func (s *Session) IsPaused() bool {
	return s.State() != Running
}

// SensitivityScale implements the visualizer.Host interface.
func (s *Session) SensitivityScale() float32 {
	v := s.Prefs.Sensitivity.Get().(float64)
	return float32(min(max(v, MinSensitivity), MaxSensitivity))
}

// Deadzone returns the stick deadzone preference limited to its range.
func (s *Session) Deadzone() float32 {
	v := s.Prefs.Deadzone.Get().(float64)
	return float32(min(max(v, MinDeadzone), MaxDeadzone))
}
