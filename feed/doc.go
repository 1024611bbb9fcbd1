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

// Package feed receives stick samples over a websocket and serves them to
// other instances of the program.
//
// Messages are JSON text frames. A message is either a single sample or an
// array of samples:
//
//	{"steer": 0.25, "pitch": -0.5}
//	[{"steer": 0.25, "pitch": -0.5}, {"steer": 0.3, "pitch": -0.55}]
//
// The Client connects to a feed and reconnects if the connection fails. The
// Broadcaster is an http.Handler that sends every published sample to all
// connected clients.
package feed
