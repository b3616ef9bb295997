package web

import (
	"encoding/binary"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gblite/pkg/log"
)

// message is queued for a client. Frames are resolved against the
// client's cache before they are written.
type message struct {
	frame bool
	hash  uint64
	data  []byte
}

type hub struct {
	Log log.Logger

	clients   map[*Client]bool
	currentID uint8
	last      *message

	broadcast            chan message
	register, unregister chan *Client
	closing              chan struct{} // a client asked to close the display
	done                 chan struct{} // the surface has been closed

	info []byte // sent to each client when it connects
}

func newHub(logger log.Logger, info []byte) *hub {
	return &hub{
		Log:        logger,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan message, 1),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		closing:    make(chan struct{}, 1),
		done:       make(chan struct{}),
		info:       info,
	}
}

func (h *hub) run() {
	// periodic latency updates
	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case c := <-h.register:
			h.currentID++
			c.ID = h.currentID
			h.clients[c] = true
			h.Log.Infof("client %d connected from %s", c.ID, c.RemoteAddr)

			h.send(c, message{data: append(append([]byte{}, h.info...), c.ID)})
			if h.last != nil {
				h.send(c, *h.last)
			}
		case c := <-h.unregister:
			// is this client still registered
			if _, ok := h.clients[c]; !ok {
				continue
			}
			h.remove(c)
			h.Log.Infof("client %d disconnected", c.ID)

			// notify connected clients that this client has disconnected
			for cl := range h.clients {
				h.send(cl, message{data: []byte{ClientClosing, c.ID}})
			}
		case m := <-h.broadcast:
			h.last = &m
			for c := range h.clients {
				h.send(c, m)
			}
		case <-t.C:
			if len(h.clients) == 0 {
				continue
			}
			data := []byte{ServerInfo}
			for c := range h.clients {
				data = append(data, c.ID)
				data = binary.LittleEndian.AppendUint16(data, uint16(c.latency.Load()))
			}
			for c := range h.clients {
				h.send(c, message{data: data})
			}
		case <-h.done:
			for c := range h.clients {
				h.remove(c)
			}
			return
		}
	}
}

// send queues m for c, dropping the client if it is not keeping up.
func (h *hub) send(c *Client, m message) {
	select {
	case c.send <- m:
	default:
		h.Log.Warnf("client %d is not keeping up, dropping", c.ID)
		h.remove(c)
	}
}

func (h *hub) remove(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// requestClose signals that a client asked for the display to close.
func (h *hub) requestClose() {
	select {
	case h.closing <- struct{}{}:
	default:
	}
}

// serveWS upgrades the connection to a websocket and registers a new client.
func (h *hub) serveWS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warnf("upgrading connection from %s: %v", r.RemoteAddr, err)
		return
	}

	c := h.newClient(conn, r)
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// newClient creates a new client. Its ID is assigned when the hub
// registers it.
func (h *hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	return &Client{
		hub:        h,
		conn:       conn,
		send:       make(chan message, 256),
		cache:      newCache(cacheSize),
		RemoteAddr: r.RemoteAddr,
		UserAgent:  r.Header.Get("User-Agent"),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
