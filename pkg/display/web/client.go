package web

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// cacheSize is the number of frames each client keeps.
const cacheSize = 16

const writeWait = 5 * time.Second

// Client is a websocket connection receiving frames.
type Client struct {
	hub   *hub
	conn  *websocket.Conn
	send  chan message
	cache *cache

	ID         uint8
	RemoteAddr string
	UserAgent  string

	latency atomic.Uint32 // average round trip time in milliseconds
}

// ReadPump reads messages from the client until the connection closes.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		c.unregister()
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(msg) == 0 {
			continue
		}

		switch msg[0] {
		case Closing: // websocket client request close
			c.hub.Log.Infof("client %d requested close", c.ID)
			c.hub.requestClose()
			return
		case KeepAlive:
		default:
			c.hub.Log.Debugf("client %d: unknown message 0x%02x", c.ID, msg[0])
		}
	}
}

// WritePump writes queued messages to the client until the hub closes the
// send channel.
func (c *Client) WritePump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		c.unregister()
		c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
		c.conn.Close()
	}()

	for m := range c.send {
		out := m.data
		if m.frame {
			out = c.encodeFrame(m)
		}

		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, out); err != nil {
			return
		}

		// update average latency
		if conn, ok := c.conn.UnderlyingConn().(*net.TCPConn); ok {
			if rtt, err := roundTrip(conn); err == nil {
				c.latency.Store((c.latency.Load()*9 + uint32(rtt/time.Millisecond)) / 10)
			}
		}
	}
}

// encodeFrame returns a reference to the client's cache when it has
// already received the frame, and the full frame otherwise. The payload
// of m is prefixed with its compression byte.
func (c *Client) encodeFrame(m message) []byte {
	if idx := c.cache.index(m.hash); idx != -1 {
		return []byte{FrameCache, uint8(idx)}
	}
	c.cache.add(m.hash, m.data)

	return append([]byte{Frame}, m.data...)
}

func (c *Client) unregister() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}
