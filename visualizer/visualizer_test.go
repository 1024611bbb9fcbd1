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

package visualizer_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/visualizer"
)

type fakeContext struct {
	eligible bool
	paused   bool
}

func (ctx *fakeContext) IsEligiblePlayMode() bool {
	return ctx.eligible
}

func (ctx *fakeContext) IsPaused() bool {
	return ctx.paused
}

type fakeHost struct {
	scale float32
}

func (h *fakeHost) SensitivityScale() float32 {
	return h.scale
}

type fakeSettings struct {
	s   visualizer.DisplaySettings
	err error

	reserve func(int)
}

func (f *fakeSettings) Snapshot() (visualizer.DisplaySettings, error) {
	return f.s, f.err
}

func (f *fakeSettings) OnPointCountChange(fn func(int)) {
	f.reserve = fn
}

func newTestVisualizer(t *testing.T) (*visualizer.Visualizer, *fakeSettings, *fakeContext, *fakeHost) {
	t.Helper()
	settings := &fakeSettings{s: testSettings()}
	ctx := &fakeContext{eligible: true}
	host := &fakeHost{scale: 1}
	vis, err := visualizer.NewVisualizer(settings, ctx, host)
	test.DemandSuccess(t, err)
	return vis, settings, ctx, host
}

func TestActive(t *testing.T) {
	for _, c := range []struct {
		eligible, paused, enabled, expected bool
	}{
		{true, false, true, true},
		{false, false, true, false},
		{true, true, true, false},
		{true, false, false, false},
		{false, true, false, false},
	} {
		ctx := &fakeContext{eligible: c.eligible, paused: c.paused}
		test.ExpectEquality(t, visualizer.Active(ctx, c.enabled), c.expected, c)
	}
}

func TestIncompleteHost(t *testing.T) {
	_, err := visualizer.NewVisualizer(nil, &fakeContext{}, &fakeHost{})
	test.ExpectFailure(t, err)
	_, err = visualizer.NewVisualizer(&fakeSettings{}, nil, &fakeHost{})
	test.ExpectFailure(t, err)
	_, err = visualizer.NewVisualizer(&fakeSettings{}, &fakeContext{}, nil)
	test.ExpectFailure(t, err)
}

func TestGateBlocksInput(t *testing.T) {
	vis, settings, ctx, _ := newTestVisualizer(t)

	vis.OnInput(visualizer.Sample{Steer: 0.1, Pitch: 0.1})
	test.ExpectEquality(t, vis.Len(), 1)

	ctx.paused = true
	vis.OnInput(visualizer.Sample{Steer: 0.2, Pitch: 0.2})
	test.ExpectEquality(t, vis.Len(), 1)

	ctx.paused = false
	ctx.eligible = false
	vis.OnInput(visualizer.Sample{Steer: 0.3, Pitch: 0.3})
	test.ExpectEquality(t, vis.Len(), 1)

	ctx.eligible = true
	settings.s.Enabled = false
	vis.OnInput(visualizer.Sample{Steer: 0.4, Pitch: 0.4})
	test.ExpectEquality(t, vis.Len(), 1)

	settings.s.Enabled = true
	vis.OnInput(visualizer.Sample{Steer: 0.5, Pitch: 0.5})
	test.ExpectEquality(t, vis.Len(), 2)
}

func TestGateBlocksRender(t *testing.T) {
	vis, settings, ctx, _ := newTestVisualizer(t)
	canvas := visualizer.Vec2{X: 500, Y: 500}

	for i := range 5 {
		vis.OnInput(visualizer.Sample{Steer: float32(i) / 10, Pitch: 0.5})
	}
	test.ExpectEquality(t, len(vis.Render(canvas)), 1+5+4)

	ctx.paused = true
	test.ExpectEquality(t, len(vis.Render(canvas)), 0)

	ctx.paused = false
	ctx.eligible = false
	test.ExpectEquality(t, len(vis.Render(canvas)), 0)

	ctx.eligible = true
	settings.s.Enabled = false
	test.ExpectEquality(t, len(vis.Render(canvas)), 0)

	// the history is untouched by the closed gate
	test.ExpectEquality(t, vis.Len(), 5)

	c := &recordingCanvas{size: canvas}
	vis.Draw(c)
	test.ExpectEquality(t, c.boxes, 0)
	test.ExpectEquality(t, c.lines, 0)

	settings.s.Enabled = true
	vis.Draw(c)
	test.ExpectEquality(t, c.boxes, 6)
	test.ExpectEquality(t, c.lines, 4)
}

func TestSettingsError(t *testing.T) {
	vis, settings, _, _ := newTestVisualizer(t)

	vis.OnInput(visualizer.Sample{Steer: 0.1, Pitch: 0.1})

	settings.err = errors.New("settings store unavailable")
	vis.OnInput(visualizer.Sample{Steer: 0.2, Pitch: 0.2})
	test.ExpectEquality(t, vis.Len(), 1)
	test.ExpectEquality(t, len(vis.Render(visualizer.Vec2{X: 100, Y: 100})), 0)

	// the failure only affects the operations that needed the settings
	settings.err = nil
	vis.OnInput(visualizer.Sample{Steer: 0.3, Pitch: 0.3})
	test.ExpectEquality(t, vis.Len(), 2)
	test.ExpectInequality(t, len(vis.Render(visualizer.Vec2{X: 100, Y: 100})), 0)
}

func TestHostScale(t *testing.T) {
	vis, settings, _, host := newTestVisualizer(t)
	canvas := visualizer.Vec2{X: 110, Y: 110}

	vis.OnInput(visualizer.Sample{Steer: 0.5, Pitch: 0.5})

	host.scale = 2
	prims := vis.Render(canvas)
	expectVec(t, centre(prims[1]), 105, 105)

	settings.s.UseSensitivity = false
	prims = vis.Render(canvas)
	expectVec(t, centre(prims[1]), 80, 80)
}

func TestPointCountChange(t *testing.T) {
	vis, settings, _, _ := newTestVisualizer(t)
	test.DemandSuccess(t, settings.reserve != nil)

	for i := range 10 {
		vis.OnInput(sampleN(i))
	}

	// reserve does not change the history
	settings.reserve(600)
	test.ExpectEquality(t, vis.Len(), 10)

	// lazy shrink on next input
	settings.s.PointCount = 3
	test.ExpectEquality(t, vis.Len(), 10)
	vis.OnInput(sampleN(10))
	h := vis.History()
	test.DemandEquality(t, len(h), 3)
	test.ExpectEquality(t, h[0], sampleN(8))
	test.ExpectEquality(t, h[2], sampleN(10))
}

func TestEndToEnd(t *testing.T) {
	settings := &fakeSettings{s: visualizer.DisplaySettings{
		Enabled:        true,
		PointCount:     3,
		Size:           100,
		UseSensitivity: true,
		Clamp:          true,
		PointSize:      0.1,
		CenterX:        0.5,
		CenterY:        0.5,
		BoxColor:       box,
		PointColor:     white,
		DeadzoneColor:  red,
	}}
	vis, err := visualizer.NewVisualizer(settings, &fakeContext{eligible: true}, &fakeHost{scale: 1})
	test.DemandSuccess(t, err)

	a := visualizer.Sample{Steer: -0.5, Pitch: -0.5}
	b := visualizer.Sample{Steer: 0.2, Pitch: 0.4}
	c := visualizer.Sample{Steer: 0.6, Pitch: -0.2}
	d := visualizer.Sample{Steer: 1.5, Pitch: 0.8}

	for _, s := range []visualizer.Sample{a, b, c, d} {
		vis.OnInput(s)
	}

	h := vis.History()
	test.DemandEquality(t, len(h), 3)
	test.ExpectEquality(t, h[0], b)
	test.ExpectEquality(t, h[1], c)
	test.ExpectEquality(t, h[2], d)

	prims := vis.Render(visualizer.Vec2{X: 100, Y: 100})

	// container, D, C, line C-D, B, line B-C
	test.DemandEquality(t, len(prims), 6)

	// 110x110 container centered on 50,50
	test.ExpectEquality(t, prims[0].Kind, visualizer.FilledBox)
	expectVec(t, prims[0].Min, -5, -5)
	expectVec(t, prims[0].Max, 105, 105)
	expectVec(t, centre(prims[0]), 50, 50)

	// D is clamped on the steer axis
	test.ExpectEquality(t, prims[1].Kind, visualizer.FilledBox)
	expectVec(t, centre(prims[1]), 100, 90)
	test.ExpectApproximate(t, prims[1].Color.A, 1.0, tolerance)

	test.ExpectEquality(t, prims[2].Kind, visualizer.FilledBox)
	expectVec(t, centre(prims[2]), 80, 40)
	test.ExpectApproximate(t, prims[2].Color.A, 1-1.0/3, tolerance)

	test.ExpectEquality(t, prims[3].Kind, visualizer.Line)
	expectVec(t, prims[3].Min, 80, 40)
	expectVec(t, prims[3].Max, 100, 90)

	test.ExpectEquality(t, prims[4].Kind, visualizer.FilledBox)
	expectVec(t, centre(prims[4]), 60, 70)
	test.ExpectApproximate(t, prims[4].Color.A, 1-2.0/3, tolerance)

	test.ExpectEquality(t, prims[5].Kind, visualizer.Line)
	expectVec(t, prims[5].Min, 60, 70)
	expectVec(t, prims[5].Max, 80, 40)
}

func TestConcurrentInputAndRender(t *testing.T) {
	vis, _, _, _ := newTestVisualizer(t)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range 1000 {
			vis.OnInput(visualizer.Sample{Steer: float32(i%10) / 10, Pitch: 0.5})
		}
	}()

	go func() {
		defer wg.Done()
		for range 200 {
			// container + n boxes + (n-1) lines is always an even number
			// unless the history is empty
			n := len(vis.Render(visualizer.Vec2{X: 500, Y: 500}))
			test.ExpectSuccess(t, n == 1 || n%2 == 0)
		}
	}()

	wg.Wait()
	test.ExpectEquality(t, vis.Len(), 10)
}
