package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/coordinator"
)

var (
	writeWait      = 10 * time.Second
	maxMessageSize = int64(1024)
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
)

// Client pairs one websocket connection with its coordinator session. The
// read pump decodes inbound envelopes and dispatches them; the write pump
// drains the send buffer onto the wire.
type Client struct {
	ID       string
	Username string

	conn      *websocket.Conn
	send      chan coordinator.Event
	done      chan struct{}
	closeOnce sync.Once
	hub       *Hub
	log       *slog.Logger
}

func NewClient(id, username string, conn *websocket.Conn, hub *Hub, log *slog.Logger) *Client {
	return &Client{
		ID:       id,
		Username: username,
		conn:     conn,
		send:     make(chan coordinator.Event, 256),
		done:     make(chan struct{}),
		hub:      hub,
		log:      log,
	}
}

// Send queues an outbound event without blocking. It reports false when the
// connection is closing or its buffer is full; the caller logs and moves on.
func (c *Client) Send(ev coordinator.Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// ReadPump consumes inbound frames until the connection drops, dispatching
// each event to the coordinator. It runs as the connection's single event
// loop: one event is handled to completion before the next is read.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregistered <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("read failed", "conn", c.ID, "error", err)
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.log.Warn("malformed event", "conn", c.ID, "error", err)
			continue
		}
		c.dispatch(&env)
	}
}

func (c *Client) dispatch(env *envelope) {
	ctx := context.Background()

	switch env.Event {
	case eventJoinRoom:
		var p roomUserPayload
		if !c.decode(env, &p) {
			return
		}
		c.hub.coord.JoinRoom(c.ID, p.Room, p.Username)

	case eventLeaveRoom:
		var p roomUserPayload
		if !c.decode(env, &p) {
			return
		}
		c.hub.coord.LeaveRoom(c.ID, p.Room, p.Username)

	case eventChatMessage:
		var p chatMessagePayload
		if !c.decode(env, &p) {
			return
		}
		c.hub.coord.GroupMessage(ctx, p.Room, p.Username, p.Message)

	case eventPrivateMessage:
		var p privateMessagePayload
		if !c.decode(env, &p) {
			return
		}
		c.hub.coord.PrivateMessage(ctx, p.FromUser, p.ToUser, p.Message)

	case eventUserTyping:
		var p roomUserPayload
		if !c.decode(env, &p) {
			return
		}
		c.hub.coord.Typing(c.ID, p.Room, p.Username)

	case eventStopTyping:
		var room string
		if !c.decode(env, &room) {
			return
		}
		c.hub.coord.StopTyping(c.ID, room)

	default:
		c.log.Warn("unknown event", "conn", c.ID, "event", env.Event)
	}
}

func (c *Client) decode(env *envelope, dest any) bool {
	if err := json.Unmarshal(env.Data, dest); err != nil {
		c.log.Warn("malformed payload", "conn", c.ID, "event", env.Event, "error", err)
		return false
	}
	return true
}

// WritePump serializes queued events onto the connection and keeps it alive
// with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				c.log.Warn("write failed", "conn", c.ID, "error", err)
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
