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

package assert_test

import (
	"testing"

	"github.com/stickvis/stickvis/assert"
	"github.com/stickvis/stickvis/test"
)

func TestGoroutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestGoroutineCheck(t *testing.T) {
	g := assert.Here()
	g.Check("same goroutine")

	var zero assert.Goroutine
	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		zero.Check("zero value")
		g.Check("other goroutine")
	}()
	test.ExpectSuccess(t, <-panicked)
}
