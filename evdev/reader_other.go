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

//go:build !linux

package evdev

import (
	"context"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/visualizer"
)

// Open always fails on this platform.
func Open(_ ...string) (*Reader, error) {
	return nil, curated.Errorf(Unsupported)
}

// Run always fails on this platform.
func (r *Reader) Run(_ context.Context, _ chan<- visualizer.Sample) error {
	return curated.Errorf(Unsupported)
}
