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

package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "stickvis"

// set by the linker for numbered releases. eg.
//
//	-ldflags "-X github.com/stickvis/stickvis/version.number=v0.2.0"
var number string

// Build describes the binary that is running.
type Build struct {
	// the release number, "unreleased" for a build from a vcs checkout or
	// "local" when there is no vcs information (eg. "go run .")
	Version string

	// vcs revision, suffixed with "+dirty" if the working tree had
	// uncommitted changes
	Revision string

	// Release is true if Version is a release number
	Release bool

	GoVersion string
	Platform  string
}

var current Build

func init() {
	info, _ := debug.ReadBuildInfo()
	current = parse(info, number)
}

// parse the build information. info may be nil.
func parse(info *debug.BuildInfo, number string) Build {
	b := Build{
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	var vcs bool
	var modified bool

	if info != nil {
		if info.GoVersion != "" {
			b.GoVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case b.Revision == "":
		b.Revision = "no revision information"
	case modified:
		b.Revision += "+dirty"
	}

	switch {
	case number != "":
		b.Version = number
		b.Release = true
	case vcs:
		b.Version = "unreleased"
	default:
		b.Version = "local"
	}

	return b
}

// Current returns the build information for the running binary.
func Current() Build {
	return current
}

// Version returns the version string, the revision string and whether this is a
// numbered release. The revision is of little interest for a release.
func Version() (string, string, bool) {
	return current.Version, current.Revision, current.Release
}

// Summary returns a single line describing the application and version. The
// revision is included for non-release builds.
func Summary() string {
	return current.summary()
}

func (b Build) summary() string {
	if b.Release {
		return fmt.Sprintf("%s %s", ApplicationName, b.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, b.Version, b.Revision)
}

// Write the full build description, one item per line.
func (b Build) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nrevision: %s\ngo: %s\nplatform: %s\n",
		b.summary(), b.Revision, b.GoVersion, b.Platform)
	return err
}
