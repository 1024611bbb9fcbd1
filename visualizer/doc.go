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

// Package visualizer records analog stick samples into a bounded history and
// composes the history into drawing primitives once per frame.
//
// A Visualizer is fed samples by the host with OnInput(), usually at tick
// rate, and is asked for primitives with Render() or Draw() at display rate.
// Both operations are gated by Active(), which requires an eligible play
// mode, an unpaused session and the enabled setting.
//
// Display settings are read from a SettingsSource at the start of every
// operation. The Preferences type is the SettingsSource used by the
// application and is backed by the prefs package.
//
// The geometry of a frame is decided by Compose(). The visualisation box is
// positioned on the canvas by the CenterX and CenterY fractions and every
// sample in the history is drawn as a small box, newest first, joined to the
// previous (newer) sample by a line. Older samples fade out. Samples with
// either axis exactly zero are drawn in the deadzone colour.
package visualizer
