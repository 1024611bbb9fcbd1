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

import (
	"sync"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/logger"
)

// SettingsSource supplies a snapshot of the display settings.
type SettingsSource interface {
	Snapshot() (DisplaySettings, error)
}

// pointCountNotifier is implemented by settings sources that can report a
// change to the point count setting.
type pointCountNotifier interface {
	OnPointCountChange(func(n int))
}

// Visualizer ties together the history, the settings and the host. It is safe
// to call OnInput() and Render() from different goroutines.
type Visualizer struct {
	crit    sync.Mutex
	history History

	settings SettingsSource
	ctx      ActivityContext
	host     Host
}

// NewVisualizer is the preferred method of initialisation for the Visualizer
// type. The history is empty.
//
// If the settings source can report changes to the point count then the
// history storage is resized whenever that happens.
func NewVisualizer(settings SettingsSource, ctx ActivityContext, host Host) (*Visualizer, error) {
	if settings == nil || ctx == nil || host == nil {
		return nil, curated.Errorf("visualizer: incomplete host")
	}

	vis := &Visualizer{
		settings: settings,
		ctx:      ctx,
		host:     host,
	}

	if n, ok := settings.(pointCountNotifier); ok {
		n.OnPointCountChange(vis.Reserve)
	}

	if s, err := settings.Snapshot(); err == nil {
		vis.Reserve(s.PointCount)
	}

	return vis, nil
}

// snapshot returns the current settings and whether the visualizer is
// active. Errors are logged.
func (vis *Visualizer) snapshot() (DisplaySettings, bool) {
	s, err := vis.settings.Snapshot()
	if err != nil {
		logger.Logf(logger.Allow, "visualizer", "settings unavailable: %v", err)
		return DisplaySettings{}, false
	}
	return s, Active(vis.ctx, s.Enabled)
}

// OnInput records a sample in the history if the visualizer is active.
func (vis *Visualizer) OnInput(smp Sample) {
	s, ok := vis.snapshot()
	if !ok {
		return
	}

	vis.crit.Lock()
	defer vis.crit.Unlock()
	vis.history.Record(smp, s.PointCount)
}

// Render returns the primitives for a canvas of the specified size. The
// result is nil if the visualizer is not active.
func (vis *Visualizer) Render(canvas Vec2) []Primitive {
	s, ok := vis.snapshot()
	if !ok {
		return nil
	}

	scale := float32(1)
	if s.UseSensitivity {
		scale = vis.host.SensitivityScale()
	}

	vis.crit.Lock()
	defer vis.crit.Unlock()
	return Compose(canvas, s, scale, vis.history.samples)
}

// Draw renders the visualisation onto the canvas.
func (vis *Visualizer) Draw(c Canvas) {
	DrawPrimitives(c, vis.Render(c.Size()))
}

// Settings returns the current display settings.
func (vis *Visualizer) Settings() (DisplaySettings, error) {
	return vis.settings.Snapshot()
}

// Reserve storage for n samples in the history.
func (vis *Visualizer) Reserve(n int) {
	vis.crit.Lock()
	defer vis.crit.Unlock()
	vis.history.Reserve(n)
}

// History returns a copy of the samples in the history, oldest first.
func (vis *Visualizer) History() []Sample {
	vis.crit.Lock()
	defer vis.crit.Unlock()
	return vis.history.Snapshot()
}

// Len returns the number of samples in the history.
func (vis *Visualizer) Len() int {
	vis.crit.Lock()
	defer vis.crit.Unlock()
	return vis.history.Len()
}
