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

package feed

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/visualizer"
)

// the number of messages that can be queued for a client before messages to
// that client are dropped.
const clientQueue = 256

const writeTimeout = 2 * time.Second

type subscriber struct {
	conn  *websocket.Conn
	queue chan []byte
	addr  string

	// samples dropped since the queue last had room. guarded by the
	// Broadcaster mutex
	dropped int
}

// Broadcaster sends published samples to every connected websocket client.
// It implements the http.Handler interface.
type Broadcaster struct {
	upgrader websocket.Upgrader

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool

	// running ServeHTTP calls
	active sync.WaitGroup
}

// NewBroadcaster is the preferred method of initialisation for the
// Broadcaster type.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		subs: make(map[*subscriber]struct{}),
	}
}

// Clients returns the number of connected clients.
func (b *Broadcaster) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// ServeHTTP upgrades the connection to a websocket and sends samples until
// the client disconnects.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "feed", "upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		conn:  conn,
		queue: make(chan []byte, clientQueue),
		addr:  r.RemoteAddr,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.subs[sub] = struct{}{}
	b.active.Add(1)
	b.mu.Unlock()
	defer b.active.Done()

	logger.Logf(logger.Allow, "feed", "client connected: %s", r.RemoteAddr)

	// the reader exists only to notice the client going away
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		b.mu.Lock()
		delete(b.subs, sub)
		b.mu.Unlock()
		conn.Close()
		logger.Logf(logger.Allow, "feed", "client disconnected: %s", r.RemoteAddr)
	}()

	for {
		select {
		case msg := <-sub.queue:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// Publish a sample to all connected clients. Publish never blocks. Clients
// that are not keeping up lose samples.
func (b *Broadcaster) Publish(s visualizer.Sample) {
	msg, err := Encode(s)
	if err != nil {
		logger.Log(logger.Allow, "feed", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		select {
		case sub.queue <- msg:
			if sub.dropped > 0 {
				logger.Logf(logger.Allow, "feed", "client %s recovered: %d samples dropped", sub.addr, sub.dropped)
				sub.dropped = 0
			}
		default:
			if sub.dropped == 0 {
				logger.Logf(logger.Allow, "feed", "client %s queue full: dropping samples", sub.addr)
			}
			sub.dropped++
		}
	}
}

// Close disconnects every client and waits for their handlers to return.
// Connections made after Close are refused. Closing the http.Server is not
// enough because it does not track upgraded connections.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	b.closed = true
	for sub := range b.subs {
		sub.conn.Close()
	}
	b.mu.Unlock()

	b.active.Wait()
	return nil
}
