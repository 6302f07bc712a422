// Package ws implements the admin order feed: a one-way WebSocket hub that
// pushes each committed order to every connected admin dashboard. Clients
// never send application messages; their read side only services pings.
//
//	feed := ws.NewFeed()
//	go feed.Run()
//	...
//	feed.Publish(orderJSON)
package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins by default — restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SetCheckOrigin replaces the default (allow-all) origin checker.
func SetCheckOrigin(fn func(r *http.Request) bool) {
	upgrader.CheckOrigin = fn
}

// ─── Client ───────────────────────────────────────────────────────────────────

type client struct {
	feed *Feed
	conn *websocket.Conn
	send chan []byte
}

// readPump discards inbound frames; it exists to service control messages
// and to detect the peer going away.
func (c *client) readPump() {
	defer func() {
		c.feed.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: unexpected close", "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ─── Feed ─────────────────────────────────────────────────────────────────────

// Feed fans published payloads out to every connected client.
type Feed struct {
	clients    map[*client]bool
	publish    chan []byte
	register   chan *client
	unregister chan *client
}

// NewFeed creates a Feed. Call feed.Run() in a goroutine at startup.
func NewFeed() *Feed {
	return &Feed{
		clients:    make(map[*client]bool),
		publish:    make(chan []byte, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Publish queues payload for delivery to all connected clients. Never
// blocks; when the feed is saturated the payload is dropped.
func (f *Feed) Publish(payload []byte) {
	select {
	case f.publish <- payload:
	default:
	}
}

// Run starts the feed event loop. Must be run in its own goroutine.
func (f *Feed) Run() {
	for {
		select {
		case c := <-f.register:
			f.clients[c] = true
			logger.Info("ws: admin connected", "total", len(f.clients))

		case c := <-f.unregister:
			if _, ok := f.clients[c]; ok {
				delete(f.clients, c)
				close(c.send)
				logger.Info("ws: admin disconnected", "total", len(f.clients))
			}

		case msg := <-f.publish:
			for c := range f.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(f.clients, c)
				}
			}
		}
	}
}

// Serve upgrades an HTTP connection and attaches it to the feed.
func (f *Feed) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("ws: upgrade failed", "error", err)
		return
	}
	c := &client{feed: f, conn: conn, send: make(chan []byte, 256)}
	f.register <- c
	go c.writePump()
	go c.readPump()
}
