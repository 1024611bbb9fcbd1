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

package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stickvis/stickvis/curated"
	"github.com/stickvis/stickvis/feed"
	"github.com/stickvis/stickvis/test"
	"github.com/stickvis/stickvis/visualizer"
)

func TestDecode(t *testing.T) {
	s, err := feed.Decode([]byte(`{"steer": 0.25, "pitch": -0.5}`))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), 1)
	test.ExpectEquality(t, s[0], visualizer.Sample{Steer: 0.25, Pitch: -0.5})

	s, err = feed.Decode([]byte(` [{"steer": 1, "pitch": 0}, {"steer": 0, "pitch": -1}] `))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), 2)
	test.ExpectEquality(t, s[1], visualizer.Sample{Steer: 0, Pitch: -1})

	for _, bad := range []string{"", "  ", "12", `{"steer": 1}`, `{"steer": "x", "pitch": 0}`, `[{"pitch": 1}]`, `{`} {
		_, err = feed.Decode([]byte(bad))
		test.ExpectFailure(t, err, bad)
		test.ExpectEquality(t, curated.Is(err, feed.BadMessage), true, bad)
	}
}

func TestEncode(t *testing.T) {
	b, err := feed.Encode(visualizer.Sample{Steer: 0.5, Pitch: -1})
	test.DemandSuccess(t, err)

	s, err := feed.Decode(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s[0], visualizer.Sample{Steer: 0.5, Pitch: -1})
}

func TestNewClient(t *testing.T) {
	_, err := feed.NewClient("http://localhost:8080")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, feed.BadURL), true)

	c, err := feed.NewClient("ws://localhost:8080/feed")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Connected(), false)

	err = c.Close()
	test.ExpectEquality(t, curated.Is(err, feed.NotConnected), true)
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func receive(t *testing.T, ch <-chan visualizer.Sample) visualizer.Sample {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for sample")
	}
	return visualizer.Sample{}
}

func TestClient(t *testing.T) {
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.TextMessage, []byte(`{"steer": 0.1, "pitch": 0.2}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
		conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3})
		conn.WriteMessage(websocket.TextMessage, []byte(`[{"steer": 0.3, "pitch": 0.4}, {"steer": 0.5, "pitch": 0.6}]`))

		// wait for the client to go away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	c, err := feed.NewClient(wsURL(srv))
	test.DemandSuccess(t, err)
	c.RetryDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan visualizer.Sample, 10)
	done := make(chan error)
	go func() {
		done <- c.Run(ctx, out)
	}()

	test.ExpectEquality(t, receive(t, out), visualizer.Sample{Steer: 0.1, Pitch: 0.2})
	test.ExpectEquality(t, receive(t, out), visualizer.Sample{Steer: 0.3, Pitch: 0.4})
	test.ExpectEquality(t, receive(t, out), visualizer.Sample{Steer: 0.5, Pitch: 0.6})

	cancel()
	select {
	case err := <-done:
		test.ExpectEquality(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatalf("Run() did not return after cancel")
	}
}

func TestClientRetry(t *testing.T) {
	// nothing is listening on this server once it has been closed
	srv := httptest.NewServer(http.NotFoundHandler())
	url := wsURL(srv)
	srv.Close()

	c, err := feed.NewClient(url)
	test.DemandSuccess(t, err)
	c.RetryDelay = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = c.Run(ctx, make(chan visualizer.Sample))
	test.ExpectEquality(t, err, context.DeadlineExceeded)
}

func TestBroadcaster(t *testing.T) {
	b := feed.NewBroadcaster()
	srv := httptest.NewServer(b)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	// the subscriber is registered by the server goroutine
	deadline := time.Now().Add(5 * time.Second)
	for b.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	b.Publish(visualizer.Sample{Steer: -0.5, Pitch: 0.75})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	mt, data, err := conn.ReadMessage()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mt, websocket.TextMessage)

	s, err := feed.Decode(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s[0], visualizer.Sample{Steer: -0.5, Pitch: 0.75})
}

func TestBroadcasterClose(t *testing.T) {
	b := feed.NewBroadcaster()
	srv := httptest.NewServer(b)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for b.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	// Close returns only once the client handler has finished
	test.ExpectSuccess(t, b.Close())
	test.ExpectEquality(t, b.Clients(), 0)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err = conn.ReadMessage()
	test.ExpectFailure(t, err)

	// new clients are refused
	late, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	test.DemandSuccess(t, err)
	defer late.Close()
	late.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err = late.ReadMessage()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, b.Clients(), 0)
}
