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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the goroutine that must be used for a group of function
// calls. The zero value accepts any goroutine.
type Goroutine struct {
	id uint64
}

// Here returns a Goroutine for the calling goroutine.
func Here() Goroutine {
	return Goroutine{id: GetGoRoutineID()}
}

// Check panics if the calling goroutine is not the recorded goroutine.
func (g Goroutine) Check(fn string) {
	if g.id == 0 {
		return
	}
	if id := GetGoRoutineID(); id != g.id {
		panic(fmt.Sprintf("%s called from goroutine %d, expected %d", fn, id, g.id))
	}
}
