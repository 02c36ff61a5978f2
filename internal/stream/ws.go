package stream

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 20 * time.Second
)

var upgrader = websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }}

// Handler upgrades the request to a websocket and writes every snapshot
// published on b as one JSON text message, starting with the latest one.
// The stream ends when the client goes away or the broker is closed.
//
// Frames shared between subscribers must be treated as read-only.
func Handler(b *Broker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client.
			return
		}
		defer func() { _ = conn.Close() }()

		ch := b.Subscribe()
		defer b.Unsubscribe(ch)

		// Renderers never send frames; the read loop only services control
		// messages and notices the client going away.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			conn.SetReadLimit(512)
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(pongWait))
			})
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-gone:
				return
			case <-r.Context().Done():
				return
			case snap, ok := <-ch:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream closed"))
					return
				}
				if err := conn.WriteJSON(snap); err != nil {
					slog.Debug("stream write failed", "error", err)
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	})
}
