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


//go:build statsview

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/stickvis/stickvis/logger"
)

// Launch the stats server in a new goroutine. An empty address means
// DefaultAddress. A server that fails to start is noted in the log.
func Launch(output io.Writer, addr string) {
	addr = address(addr)

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		err := mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, "statsview", "server failed: %v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
