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

package main

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/stickvis/stickvis/evdev"
	"github.com/stickvis/stickvis/feed"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/modalflag"
	"github.com/stickvis/stickvis/recorder"
	"github.com/stickvis/stickvis/visualizer"
	"github.com/stickvis/stickvis/wavtrace"
)

// the number of samples that can be queued before a source blocks.
const sampleQueue = 256

// command line flags shared by the RUN and TERM modes.
type sourceFlags struct {
	feed     *string
	playback *string
	loop     *bool
	record   *string
	serve    *string
	evdev    *string
}

func addSourceFlags(md *modalflag.Modes, feedDefault string, withEvdev bool) *sourceFlags {
	sf := &sourceFlags{
		feed:     md.AddString("feed", feedDefault, "websocket url of a sample feed"),
		playback: md.AddString("playback", "", "transcript, wav or mp3 file to play back"),
		loop:     md.AddBool("loop", false, "loop playback"),
		record:   md.AddString("record", "", "record samples to transcript file"),
		serve:    md.AddString("serve", "", "address on which to broadcast samples over websocket"),
	}
	if withEvdev {
		sf.evdev = md.AddString("evdev", "", "comma separated list of input devices")
	}
	return sf
}

// sources is the running set of sample producers and consumers for a
// session.
type sources struct {
	samples chan visualizer.Sample
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	rec *recorder.Recorder
	bc  *feed.Broadcaster
	srv *http.Server
}

// start all sources named by the flags. the returned sources must be ended
// with a call to end().
func (sf *sourceFlags) start() (*sources, error) {
	ctx, cancel := context.WithCancel(context.Background())

	src := &sources{
		samples: make(chan visualizer.Sample, sampleQueue),
		cancel:  cancel,
	}

	if err := src.open(ctx, sf); err != nil {
		_ = src.end()
		return nil, err
	}

	return src, nil
}

func (src *sources) open(ctx context.Context, sf *sourceFlags) error {
	if *sf.playback != "" {
		plb, err := openPlayback(*sf.playback)
		if err != nil {
			return err
		}

		loop := *sf.loop
		src.goRun("playback", func() error {
			return plb.Run(ctx, src.samples, loop)
		})
	}

	if *sf.feed != "" {
		client, err := feed.NewClient(*sf.feed)
		if err != nil {
			return err
		}
		src.goRun("feed", func() error {
			defer client.Close()
			return client.Run(ctx, src.samples)
		})
	}

	if sf.evdev != nil && *sf.evdev != "" {
		rdr, err := evdev.Open(strings.Split(*sf.evdev, ",")...)
		if err != nil {
			return err
		}
		src.goRun("evdev", func() error {
			defer rdr.Close()
			return rdr.Run(ctx, src.samples)
		})
	}

	if *sf.record != "" {
		var err error
		src.rec, err = recorder.NewRecorder(*sf.record, recorder.DefaultTickRate)
		if err != nil {
			return err
		}
	}

	if *sf.serve != "" {
		src.bc = feed.NewBroadcaster()
		src.srv = &http.Server{
			Addr:              *sf.serve,
			Handler:           src.bc,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			err := src.srv.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log(logger.Allow, "feed", err)
			}
		}()
		logger.Logf(logger.Allow, "feed", "broadcasting on %s", *sf.serve)
	}

	return nil
}

func (src *sources) goRun(tag string, run func() error) {
	src.wg.Add(1)
	go func() {
		defer src.wg.Done()
		if err := run(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log(logger.Allow, tag, err)
		}
	}()
}

// tap is called by the host with every sample given to the visualiser.
func (src *sources) tap(s visualizer.Sample) {
	if src.rec != nil {
		if err := src.rec.Record(s); err != nil {
			logger.Log(logger.Allow, "recorder", err)
		}
	}
	if src.bc != nil {
		src.bc.Publish(s)
	}
}

// end stops every source and flushes any recording.
func (src *sources) end() error {
	src.cancel()
	src.wg.Wait()

	if src.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = src.srv.Shutdown(ctx)
		_ = src.bc.Close()
	}

	if src.rec != nil {
		n := src.rec.Count()
		if err := src.rec.End(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "recorder", "%d samples recorded", n)
	}

	return nil
}

// openPlayback chooses between a transcript and a wav trace by the file
// extension.
func openPlayback(filename string) (*recorder.Playback, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		return wavtrace.NewPlayback(filename)
	}
	return recorder.NewPlayback(filename)
}
