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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/stickvis/stickvis/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file.
const separator = " :: "

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key: %s"
	InvalidKey   = "prefs: invalid key: %s"
	DiskError    = "prefs: %v"
	NoPrefsFile  = "prefs: no prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// keys returns the registered keys in sorted order. Must be called from
// within the critical section.
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add preference value to list of values to store/load from Disk. The key
// argument must be unique to this Disk instance and must not contain the key
// and value separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if key == "" || strings.ContainsAny(key, " \n") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero values. Hooks will be triggered.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved, except for defunct keys.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	// load the existing file so that we don't clobber the values of other
	// disk instances
	entries, err := readFile(dsk.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf(DiskError, err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	for k, v := range dsk.entries {
		entries[k] = v.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		if isDefunct(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, entries[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFirstUse is true then the current values are saved to a new file.
// Otherwise a missing file results in a NoPrefsFile error, after any command
// line values have been applied.
//
// Values on the top of the command line stack take precedence over the values
// in the file. A command line value is consumed when it is applied.
func (dsk *Disk) Load(saveOnFirstUse bool) (loadErr error) {
	entries, err := readFile(dsk.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(DiskError, err)
		}
		if saveOnFirstUse {
			if err := dsk.Save(); err != nil {
				return err
			}
		} else {
			defer func() {
				if loadErr == nil {
					loadErr = curated.Errorf(NoPrefsFile, dsk.path)
				}
			}()
		}
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			continue
		}

		if v, ok := entries[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// readFile returns the key/value pairs in the named file. Lines that do not
// contain the separator are ignored. This includes the boilerplate line.
func readFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = v
	}

	return entries, scanner.Err()
}
