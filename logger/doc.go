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

// Package logger is the central log repository for stickvis. Log entries are
// tagged with a short string identifying the part of the program that
// produced them, and repeated entries are collapsed into a single entry with
// a repeat count.
//
// The package level functions write to the central logger. Additional
// instances can be created with NewLogger(), which is useful for testing.
//
// Whether an entry is logged at all is decided by the Permission argument.
// Callers that always want to log can use the Allow value.
package logger
