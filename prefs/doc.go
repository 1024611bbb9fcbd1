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

// Package prefs facilitates the storage of preferential values in the
// stickvis system. It is intended to be used by packages that need to store
// settings between sessions.
//
// A preference value is one of the types defined in this package: Bool,
// String, Int, Float, Color or Generic. The values are registered with a Disk
// instance under a key.
//
//	var size prefs.Float
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("stickvis.size", &size)
//	err = dsk.Load(true)
//
// Keys are plain strings but by convention are of the form "group.name".
// Multiple Disk instances can point to the same file. Saving a Disk does not
// remove entries in the file that belong to another Disk instance.
//
// Every type can be given a pre and post hook function with SetHookPre() and
// SetHookPost(). The pre hook can reject the new value by returning an error.
// The post hook is called after the new value has been stored.
//
// Values can be overridden from the command line with the commandline stack
// functions. See PushCommandLineStack() for the format of the string.
package prefs
