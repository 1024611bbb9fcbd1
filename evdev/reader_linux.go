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

//go:build linux

package evdev

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/visualizer"
)

// the number of milliseconds epoll waits before checking the context
const pollTimeout = 100

// Open the named device files. The files are read only.
func Open(paths ...string) (*Reader, error) {
	if len(paths) == 0 {
		return nil, curated.Errorf(NoDevices)
	}

	r := &Reader{
		Range: DefaultRange,
	}

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			_ = r.Close()
			return nil, curated.Errorf(DeviceError, err)
		}
		r.files = append(r.files, f)
	}

	return r, nil
}

// Run reads events from the devices until the context is done or a device
// fails. Samples are sent to the out channel.
func (r *Reader) Run(ctx context.Context, out chan<- visualizer.Sample) error {
	if len(r.files) == 0 {
		return curated.Errorf(NoDevices)
	}

	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return curated.Errorf(DeviceError, err)
	}
	defer unix.Close(epfd)

	// every device has its own axis state
	devices := make(map[int32]*os.File)
	state := make(map[int32]*axes)

	for _, f := range r.files {
		fd := int32(f.Fd())
		devices[fd] = f
		state[fd] = newAxes(r.Range)

		ev := unix.EpollEvent{
			Events: unix.EPOLLIN,
			Fd:     fd,
		}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, int(fd), &ev); err != nil {
			return curated.Errorf(DeviceError, err)
		}
	}

	logger.Logf(logger.Allow, "evdev", "reading from %d devices", len(devices))

	events := make([]unix.EpollEvent, len(devices))
	buf := make([]byte, eventSize*64)

	var sendErr error
	emit := func(s visualizer.Sample) {
		if sendErr != nil {
			return
		}
		select {
		case out <- s:
		case <-ctx.Done():
			sendErr = ctx.Err()
		}
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n, err := unix.EpollWait(epfd, events, pollTimeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return curated.Errorf(DeviceError, err)
		}

		for _, ev := range events[:n] {
			f := devices[ev.Fd]

			if ev.Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
				return curated.Errorf(DeviceError, f.Name()+" hung up")
			}

			m, err := unix.Read(int(ev.Fd), buf)
			if err != nil {
				if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
					continue
				}
				return curated.Errorf(DeviceError, err)
			}

			state[ev.Fd].decode(buf[:m-m%eventSize], emit)
			if sendErr != nil {
				return sendErr
			}
		}
	}
}
