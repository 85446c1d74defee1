package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// EventOrdersChanged is broadcast by the service whenever an order is
// created, updated or deleted by any client.
const EventOrdersChanged = "orders_changed"

// Event is a message from the order event feed.
type Event struct {
	Type string `json:"type"`
}

// Watcher subscribes to the service's websocket order feed. It is a
// best-effort freshness hint on top of refresh-after-write, never a
// replacement for it: the caller re-fetches when an event arrives and
// simply stops watching when the connection drops.
type Watcher struct {
	url string
	log zerolog.Logger
}

// NewWatcher creates a watcher for the feed at the given service base URL.
func NewWatcher(baseURL string, log zerolog.Logger) *Watcher {
	url := strings.TrimSuffix(baseURL, "/") + "/ws/orders"
	switch {
	case strings.HasPrefix(url, "https://"):
		url = "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		url = "ws://" + strings.TrimPrefix(url, "http://")
	}
	return &Watcher{url: url, log: log}
}

// Run connects and delivers events on the channel until the context is
// cancelled or the connection fails. The channel is closed on return.
func (w *Watcher) Run(ctx context.Context, events chan<- Event) error {
	defer close(events)

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, resp, err := dialer.DialContext(ctx, w.url, nil)
	if err != nil {
		w.log.Debug().Err(err).Str("url", w.url).Msg("watch dial failed")
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Unblock the read loop when the context is cancelled.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				w.log.Debug().Err(err).Msg("watch connection lost")
			}
			return err
		}

		var ev Event
		if err := json.Unmarshal(message, &ev); err != nil {
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
