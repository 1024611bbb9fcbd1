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


package statsview

import "strings"

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

func address(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return DefaultAddress
	}
	// a bare port means the loopback interface
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

// URL returns the page at which the stats for the server at addr can be
// viewed.
func URL(addr string) string {
	return "http://" + address(addr) + path
}
