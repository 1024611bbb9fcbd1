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

package visualizer

// ActivityContext is implemented by the host and describes the state of the
// session.
type ActivityContext interface {
	// IsEligiblePlayMode returns true if the session is in a mode where the
	// visualisation is allowed. For example, free play or training.
	IsEligiblePlayMode() bool

	// IsPaused returns true if the session is paused.
	IsPaused() bool
}

// Host is implemented by the host and supplies values that are outside the
// visualizer's own settings.
type Host interface {
	// SensitivityScale is the factor applied to samples when the
	// UseSensitivity setting is true.
	SensitivityScale() float32
}

// Active returns true if the visualizer should record input and draw.
func Active(ctx ActivityContext, enabled bool) bool {
	return ctx.IsEligiblePlayMode() && !ctx.IsPaused() && enabled
}
