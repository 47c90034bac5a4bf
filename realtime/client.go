package realtime

import (
	"time"

	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// MessageHandler consumes inbound frames from a connection.
type MessageHandler interface {
	Handle(conn Connection, data []byte)
}

// Client adapts a gorilla websocket connection to the hub's Connection
// interface. Writes go through a buffered channel drained by writePump.
type Client struct {
	id      string
	role    string
	ws      *websocket.Conn
	send    chan []byte
	hub     *Hub
	handler MessageHandler
}

func NewClient(id, role string, ws *websocket.Conn, hub *Hub, handler MessageHandler) *Client {
	return &Client{
		id:      id,
		role:    role,
		ws:      ws,
		send:    make(chan []byte, 256),
		hub:     hub,
		handler: handler,
	}
}

func (c *Client) ID() string   { return c.id }
func (c *Client) Role() string { return c.role }

// Send queues a frame for delivery. A full buffer counts as a dead
// connection; the frame is dropped.
func (c *Client) Send(data []byte) error {
	select {
	case c.send <- data:
		return nil
	default:
		return websocket.ErrCloseSent
	}
}

func (c *Client) Close() error {
	return c.ws.Close()
}

// Start registers the client with the hub and launches its pumps.
func (c *Client) Start() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.GetLogger().Warn("read error", zap.String("connId", c.id), zap.Error(err))
			}
			return
		}
		c.handler.Handle(c, data)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
