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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stickvis/stickvis/paths"
	"github.com/stickvis/stickvis/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".stickvis", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".stickvis", "foo", "bar", "baz"))

	// directory has been created but the file has not
	fi, err := os.Stat(filepath.Join(".stickvis", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".stickvis", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".stickvis", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".stickvis")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", "freeplay", "png")
	test.ExpectSuccess(t, regexp.MustCompile(`^snapshot_freeplay_\d{8}_\d{6}\.png$`).MatchString(fn))

	fn = paths.UniqueFilename("recording", " ", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^recording_\d{8}_\d{6}$`).MatchString(fn))
}
