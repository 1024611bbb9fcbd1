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
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/prefs"
	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/visualizer"
)

func newTestPreferences(t *testing.T) (*visualizer.Preferences, string) {
	t.Helper()
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	p, err := visualizer.NewPreferences(pth)
	test.DemandSuccess(t, err)
	return p, pth
}

func TestPreferencesDefaults(t *testing.T) {
	p, pth := newTestPreferences(t)

	s, err := p.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.Enabled)
	test.ExpectEquality(t, s.PointCount, 120)
	test.ExpectEquality(t, s.Size, 400)
	test.ExpectSuccess(t, s.UseSensitivity)
	test.ExpectSuccess(t, s.Clamp)
	test.ExpectApproximate(t, s.PointSize, 0.02, tolerance)
	test.ExpectApproximate(t, s.CenterX, 0.5, tolerance)
	test.ExpectApproximate(t, s.CenterY, 0.5, tolerance)
	test.ExpectEquality(t, s.BoxColor.NRGBA(), color.NRGBA{R: 255, G: 255, B: 255, A: 100})
	test.ExpectEquality(t, s.PointColor, visualizer.Color{R: 1, G: 1, B: 1, A: 1})
	test.ExpectEquality(t, s.DeadzoneColor, visualizer.Color{R: 1, G: 1, B: 1, A: 1})

	// the file is created on first use
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "stickvis.pointCount :: 120\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "stickvis.colorBox :: #FFFFFF64\n"))
}

func TestPreferencesSnapshotClamps(t *testing.T) {
	p, _ := newTestPreferences(t)

	test.ExpectSuccess(t, p.PointCount.Set(0))
	test.ExpectSuccess(t, p.Size.Set(5))
	test.ExpectSuccess(t, p.PointSize.Set(1.5))
	test.ExpectSuccess(t, p.CenterX.Set(-0.5))
	test.ExpectSuccess(t, p.CenterY.Set(7))

	s, err := p.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.PointCount, 1)
	test.ExpectEquality(t, s.Size, 100)
	test.ExpectApproximate(t, s.PointSize, 0.1, tolerance)
	test.ExpectApproximate(t, s.CenterX, 0, tolerance)
	test.ExpectApproximate(t, s.CenterY, 1, tolerance)

	// the stored value is not changed by the snapshot
	test.ExpectEquality(t, p.PointCount.Get().(int), 0)
}

func TestPreferencesNil(t *testing.T) {
	var p *visualizer.Preferences
	_, err := p.Snapshot()
	test.ExpectFailure(t, err)
}

func TestPreferencesSaveAndLoad(t *testing.T) {
	p, pth := newTestPreferences(t)

	test.ExpectSuccess(t, p.Size.Set(250))
	test.ExpectSuccess(t, p.PointColor.Set("#FF0000"))
	test.DemandSuccess(t, p.Save())

	q, err := visualizer.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Size.Get().(int), 250)
	test.ExpectEquality(t, q.PointColor.String(), "#FF0000FF")

	test.ExpectSuccess(t, q.Size.Set(300))
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Size.Get().(int), 250)
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("stickvis.size::600; stickvis.clamp::false")
	p, _ := newTestPreferences(t)
	prefs.PopCommandLineStack()

	s, err := p.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Size, 600)
	test.ExpectFailure(t, s.Clamp)
}

func TestColorResets(t *testing.T) {
	p, _ := newTestPreferences(t)

	test.ExpectSuccess(t, p.BoxColor.Set("#00000000"))
	test.ExpectSuccess(t, p.PointColor.Set("#10203040"))
	test.ExpectSuccess(t, p.DeadzoneColor.Set("#00000000"))

	// deadzone reset copies the point colour
	test.ExpectSuccess(t, p.ResetDeadzoneColor())
	test.ExpectEquality(t, p.DeadzoneColor.String(), "#10203040")

	test.ExpectSuccess(t, p.ResetBoxColor())
	test.ExpectEquality(t, p.BoxColor.String(), "#FFFFFF64")

	test.ExpectSuccess(t, p.ResetPointColor())
	test.ExpectEquality(t, p.PointColor.String(), "#FFFFFFFF")

	// deadzone is not affected by the point reset
	test.ExpectEquality(t, p.DeadzoneColor.String(), "#10203040")
}

func TestPreferencesPointCountHook(t *testing.T) {
	p, _ := newTestPreferences(t)

	var got []int
	p.OnPointCountChange(func(n int) {
		got = append(got, n)
	})

	test.ExpectSuccess(t, p.PointCount.Set(50))
	test.ExpectSuccess(t, p.PointCount.Set("60"))
	test.DemandEquality(t, len(got), 2)
	test.ExpectEquality(t, got[0], 50)
	test.ExpectEquality(t, got[1], 60)

	// the visualizer registers itself with the preferences
	vis, err := visualizer.NewVisualizer(p, &fakeContext{eligible: true}, &fakeHost{scale: 1})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.PointCount.Set(2))

	for i := range 5 {
		vis.OnInput(sampleN(i + 1))
	}
	test.ExpectEquality(t, vis.Len(), 2)
}

func TestProfileRoundTrip(t *testing.T) {
	p, _ := newTestPreferences(t)

	test.ExpectSuccess(t, p.Size.Set(321))
	test.ExpectSuccess(t, p.Clamp.Set(false))
	test.ExpectSuccess(t, p.CenterX.Set(0.25))
	test.ExpectSuccess(t, p.DeadzoneColor.Set("#FF000080"))

	var b bytes.Buffer
	test.DemandSuccess(t, p.ExportProfile(&b))
	test.ExpectSuccess(t, strings.Contains(b.String(), "size: 321\n"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "#FF000080"))

	q, _ := newTestPreferences(t)
	test.DemandSuccess(t, q.ImportProfile(&b))
	test.ExpectEquality(t, q.Size.Get().(int), 321)
	test.ExpectFailure(t, q.Clamp.Get().(bool))
	test.ExpectApproximate(t, q.CenterX.Get().(float64), 0.25, tolerance)
	test.ExpectEquality(t, q.DeadzoneColor.String(), "#FF000080")
}

func TestProfilePartial(t *testing.T) {
	p, _ := newTestPreferences(t)

	profile := "point_count: 42\ncolors:\n  point: '#00FF00'\n"
	test.DemandSuccess(t, p.ImportProfile(strings.NewReader(profile)))
	test.ExpectEquality(t, p.PointCount.Get().(int), 42)
	test.ExpectEquality(t, p.PointColor.String(), "#00FF00FF")

	// other values are unchanged
	test.ExpectEquality(t, p.Size.Get().(int), 400)
	test.ExpectEquality(t, p.BoxColor.String(), "#FFFFFF64")
}

func TestProfileErrors(t *testing.T) {
	p, _ := newTestPreferences(t)

	// unknown field
	err := p.ImportProfile(strings.NewReader("line_width: 3\n"))
	test.ExpectSuccess(t, curated.Is(err, visualizer.ProfileError))

	// bad colour. nothing is changed
	err = p.ImportProfile(strings.NewReader("size: 200\ncolors:\n  box: 'purple'\n"))
	test.ExpectSuccess(t, curated.Is(err, visualizer.ProfileError))
	test.ExpectEquality(t, p.Size.Get().(int), 400)

	// values outside their range are refused. nothing is changed
	for _, bad := range []string{
		"size: 200\npoint_count: 5000\n",
		"size: 200\npoint_count: 0\n",
		"size: 50\n",
		"size: 200\npoint_size: 0.5\n",
		"size: 200\ncenter_x: -0.1\n",
		"size: 200\ncenter_y: 1.5\n",
	} {
		err = p.ImportProfile(strings.NewReader(bad))
		test.ExpectSuccess(t, curated.Is(err, visualizer.ProfileError), bad)
		test.ExpectEquality(t, p.Size.Get().(int), 400, bad)
		test.ExpectEquality(t, p.PointCount.Get().(int), visualizer.DefaultPointCount, bad)
	}

	// the limits themselves are allowed
	test.ExpectSuccess(t, p.ImportProfile(strings.NewReader("point_count: 600\npoint_size: 0.1\ncenter_x: 0\n")))
	test.ExpectEquality(t, p.PointCount.Get().(int), visualizer.MaxPointCount)

	// empty
	err = p.ImportProfile(strings.NewReader(""))
	test.ExpectFailure(t, err)
}
