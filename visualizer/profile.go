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
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/prefs"
)

// Profile is the YAML representation of the display settings. It is used to
// share settings between installations. Fields that are missing from an
// imported profile leave the current value unchanged.
type Profile struct {
	Enabled        *bool    `yaml:"enabled,omitempty"`
	PointCount     *int     `yaml:"point_count,omitempty"`
	Size           *int     `yaml:"size,omitempty"`
	UseSensitivity *bool    `yaml:"sensitivity,omitempty"`
	Clamp          *bool    `yaml:"clamp,omitempty"`
	PointSize      *float64 `yaml:"point_size,omitempty"`
	CenterX        *float64 `yaml:"center_x,omitempty"`
	CenterY        *float64 `yaml:"center_y,omitempty"`

	Colors struct {
		Box      string `yaml:"box,omitempty"`
		Point    string `yaml:"point,omitempty"`
		Deadzone string `yaml:"deadzone,omitempty"`
	} `yaml:"colors,omitempty"`
}

// ProfileError is the pattern for errors returned by ImportProfile() and
// ExportProfile().
const ProfileError = "profile: %v"

// ExportProfile writes the current preference values as YAML.
func (p *Preferences) ExportProfile(w io.Writer) error {
	enabled := p.Enabled.Get().(bool)
	pointCount := p.PointCount.Get().(int)
	size := p.Size.Get().(int)
	sensitivity := p.UseSensitivity.Get().(bool)
	clmp := p.Clamp.Get().(bool)
	pointSize := p.PointSize.Get().(float64)
	centerX := p.CenterX.Get().(float64)
	centerY := p.CenterY.Get().(float64)

	pr := Profile{
		Enabled:        &enabled,
		PointCount:     &pointCount,
		Size:           &size,
		UseSensitivity: &sensitivity,
		Clamp:          &clmp,
		PointSize:      &pointSize,
		CenterX:        &centerX,
		CenterY:        &centerY,
	}
	pr.Colors.Box = p.BoxColor.String()
	pr.Colors.Point = p.PointColor.String()
	pr.Colors.Deadzone = p.DeadzoneColor.String()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&pr); err != nil {
		return curated.Errorf(ProfileError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(ProfileError, err)
	}
	return nil
}

// inRange returns an error if the value is present and outside the range.
func inRange[T int | float64](name string, v *T, lo, hi T) error {
	if v == nil || (*v >= lo && *v <= hi) {
		return nil
	}
	return curated.Errorf("%s must be between %v and %v (got %v)", name, lo, hi, *v)
}

// ImportProfile reads YAML from r and applies the values to the preferences.
// Unknown fields are an error. The profile is validated, including the range
// of every numeric value, before any value is changed.
func (p *Preferences) ImportProfile(r io.Reader) error {
	var pr Profile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pr); err != nil {
		if errors.Is(err, io.EOF) {
			return curated.Errorf(ProfileError, "empty profile")
		}
		return curated.Errorf(ProfileError, err)
	}

	for _, err := range []error{
		inRange("point_count", pr.PointCount, MinPointCount, MaxPointCount),
		inRange("size", pr.Size, MinSize, MaxSize),
		inRange("point_size", pr.PointSize, MinPointSize, MaxPointSize),
		inRange("center_x", pr.CenterX, MinCenter, MaxCenter),
		inRange("center_y", pr.CenterY, MinCenter, MaxCenter),
	} {
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	for _, c := range []string{pr.Colors.Box, pr.Colors.Point, pr.Colors.Deadzone} {
		if c == "" {
			continue
		}
		if _, err := prefs.ParseHexColor(c); err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	var errs []error
	set := func(v prefs.Value, dst interface{ Set(prefs.Value) error }) {
		errs = append(errs, dst.Set(v))
	}

	if pr.Enabled != nil {
		set(*pr.Enabled, &p.Enabled)
	}
	if pr.PointCount != nil {
		set(*pr.PointCount, &p.PointCount)
	}
	if pr.Size != nil {
		set(*pr.Size, &p.Size)
	}
	if pr.UseSensitivity != nil {
		set(*pr.UseSensitivity, &p.UseSensitivity)
	}
	if pr.Clamp != nil {
		set(*pr.Clamp, &p.Clamp)
	}
	if pr.PointSize != nil {
		set(*pr.PointSize, &p.PointSize)
	}
	if pr.CenterX != nil {
		set(*pr.CenterX, &p.CenterX)
	}
	if pr.CenterY != nil {
		set(*pr.CenterY, &p.CenterY)
	}
	if pr.Colors.Box != "" {
		set(pr.Colors.Box, &p.BoxColor)
	}
	if pr.Colors.Point != "" {
		set(pr.Colors.Point, &p.PointColor)
	}
	if pr.Colors.Deadzone != "" {
		set(pr.Colors.Deadzone, &p.DeadzoneColor)
	}

	if err := errors.Join(errs...); err != nil {
		return curated.Errorf(ProfileError, err)
	}
	return nil
}
