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
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/visualizer"
)

// Sentinal error patterns.
const (
	NotConnected = "feed: not connected"
	BadURL       = "feed: bad url: %v"
)

// Client connects to a websocket feed of samples.
type Client struct {
	url string

	// time to wait before reconnecting after a failure
	RetryDelay time.Duration

	// time allowed for the websocket handshake
	HandshakeTimeout time.Duration

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewClient is the preferred method of initialisation for the Client type.
// The URL must have the ws or wss scheme.
func NewClient(wsURL string) (*Client, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, curated.Errorf(BadURL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, curated.Errorf(BadURL, "scheme must be ws or wss")
	}

	return &Client{
		url:              u.String(),
		RetryDelay:       500 * time.Millisecond,
		HandshakeTimeout: 2 * time.Second,
	}, nil
}

func (c *Client) String() string {
	return c.url
}

// Connected returns true if the client currently has a connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *Client) connect(ctx context.Context) (*websocket.Conn, error) {
	d := websocket.Dialer{
		HandshakeTimeout: c.HandshakeTimeout,
	}

	conn, _, err := d.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	return conn, nil
}

// Close the current connection. The Run() function will reconnect unless its
// context has been cancelled.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return curated.Errorf(NotConnected)
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}

// Run connects to the feed and sends decoded samples to the out channel. If
// the connection fails or is lost then Run() waits for RetryDelay and tries
// again. Messages that cannot be decoded are logged and skipped.
//
// Run only returns when the context is done.
func (c *Client) Run(ctx context.Context, out chan<- visualizer.Sample) error {
	for {
		conn, err := c.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Logf(logger.Allow, "feed", "connect failed: %v; retrying", err)
		} else {
			logger.Logf(logger.Allow, "feed", "connected: %s", c.url)
			err = c.read(ctx, conn, out)
			_ = c.Close()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Logf(logger.Allow, "feed", "connection lost: %v; reconnecting", err)
		}

		select {
		case <-time.After(c.RetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// read messages from the connection until there is an error or the context
// is done.
func (c *Client) read(ctx context.Context, conn *websocket.Conn, out chan<- visualizer.Sample) error {
	// closing the connection unblocks ReadMessage()
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		if mt != websocket.TextMessage {
			logger.Log(logger.Allow, "feed", "ignoring binary message")
			continue
		}

		samples, err := Decode(data)
		if err != nil {
			logger.Log(logger.Allow, "feed", err)
			continue
		}

		for _, s := range samples {
			select {
			case out <- s:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
