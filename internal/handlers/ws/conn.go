package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

// connection is one browser bound to one room
type connection struct {
	id   string
	conn *websocket.Conn
	sess *session.Session
	lang entities.Language

	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
}

func newConnection(id string, conn *websocket.Conn, sess *session.Session, lang entities.Language) *connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &connection{
		id:     id,
		conn:   conn,
		sess:   sess,
		lang:   lang,
		send:   make(chan []byte, sendBuffer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// run blocks until the client goes away
func (c *connection) run(router *intent.Router, bus events.EventBus) {
	defer c.close()

	res := c.sess.Resolution()
	c.queue(&RoomFrame{
		Type:      FrameRoom,
		RoomID:    res.RoomID,
		ShareURL:  c.sess.ShareURL(),
		URL:       res.URL.String(),
		Generated: res.Generated,
		Lang:      string(c.lang),
	})

	// Subscribe before the first state frame so no update falls in between
	updates, stopUpdates := c.sess.Observe()
	defer stopUpdates()
	c.queue(&StateFrame{Type: FrameState, View: intent.NewView(res.RoomID, c.sess.State())})

	stopEffects := cues.Subscribe(bus, res.RoomID, func(effect cues.Effect) {
		c.queue(&EffectFrame{Type: FrameEffect, Effect: effect})
	})
	defer stopEffects()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.writePump()
	}()
	go func() {
		defer wg.Done()
		c.forward(updates)
	}()

	c.readPump(router)
	c.close()
	wg.Wait()
}

// forward turns room updates into state frames
func (c *connection) forward(updates <-chan session.Update) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				c.close()
				return
			}
			c.queue(&StateFrame{Type: FrameState, View: intent.NewView(update.RoomID, update.State)})
		}
	}
}

// readPump dispatches intents until the socket fails
func (c *connection) readPump(router *intent.Router) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("WebSocket read failed", "conn_id", c.id, "error", err)
			}
			return
		}

		req, err := intent.Decode(raw)
		if err != nil {
			c.queueError(err, "")
			continue
		}

		result, err := router.Dispatch(c.ctx, c.sess, c.lang, req)
		if err != nil {
			c.queueError(err, req.Type)
			continue
		}
		c.queue(&ResultFrame{Type: FrameResult, Result: result})
	}
}

// writePump owns every write to the socket
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Debug("WebSocket write failed", "conn_id", c.id, "error", err)
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}

// queue hands a frame to the writer. A client that cannot keep up is
// disconnected; it reloads the whole room on reconnect.
func (c *connection) queue(frame any) {
	msg, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to encode frame", "conn_id", c.id, "error", err)
		return
	}

	select {
	case <-c.ctx.Done():
	case c.send <- msg:
	default:
		slog.Warn("Dropping slow client", "conn_id", c.id, "room_id", c.sess.RoomID())
		c.close()
	}
}

func (c *connection) queueError(err error, intentType string) {
	c.queue(&ErrorFrame{Type: FrameError, Payload: errors.ToPayload(err), Intent: intentType})
}

// close stops the pumps; writePump then closes the socket, which unblocks
// readPump
func (c *connection) close() {
	c.cancel()
}
