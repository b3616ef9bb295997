// Package web serves finished frames to browser clients over websockets.
package web

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/thelolagemann/gblite/pkg/display"
	"github.com/thelolagemann/gblite/pkg/log"
)

// quality is the brotli quality used for frame compression.
const quality = 7

func init() {
	display.Install("web", 1, driver, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &driver.Addr,
			Type:        "string",
			Description: "Address to serve frames on",
		},
		{
			Name:        "compression",
			Default:     false,
			Value:       &driver.Compression,
			Type:        "bool",
			Description: "Compress frames with brotli",
		},
	})
}

var driver = New(":8090")

// Surface implements display.Surface by broadcasting frames to the
// connected websocket clients. Frames identical to the previous one are
// not sent, and frames a client has recently received are sent as a
// reference to its cache. The surface closes when a client sends the
// Closing event or the server stops.
type Surface struct {
	Log         log.Logger
	Addr        string
	Compression bool

	hub      *hub
	server   *http.Server
	listener net.Listener
	once     *sync.Once

	lastHash uint64
	drawn    bool
	open     atomic.Bool
}

// New returns a Surface that will listen on addr once opened.
func New(addr string) *Surface {
	return &Surface{
		Log:  log.New(),
		Addr: addr,
	}
}

func (s *Surface) Open(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("web: invalid size %dx%d", width, height)
	}

	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}

	info := []byte{ClientInfo}
	info = binary.LittleEndian.AppendUint16(info, uint16(width))
	info = binary.LittleEndian.AppendUint16(info, uint16(height))
	info = append(info, boolByte(s.Compression))

	s.hub = newHub(s.Log, info)
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.hub.serveWS)
	s.server = &http.Server{Handler: mux}
	s.listener = l
	s.once = new(sync.Once)
	s.drawn = false
	s.open.Store(true)

	go s.hub.run()
	go func() {
		if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Errorf("web: %v", err)
		}
		s.open.Store(false)
	}()

	s.Log.Infof("serving frames on ws://%s", l.Addr())
	return nil
}

// ListenAddr returns the address the surface is listening on.
func (s *Surface) ListenAddr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Surface) Draw(pixels []byte) error {
	if !s.open.Load() {
		return display.ErrClosed
	}

	// skip frames that haven't changed
	hash := xxhash.Sum64(pixels)
	if s.drawn && hash == s.lastHash {
		return nil
	}
	s.lastHash, s.drawn = hash, true

	data := []byte{boolByte(s.Compression)}
	if s.Compression {
		output, err := cbrotli.Encode(pixels, cbrotli.WriterOptions{Quality: quality})
		if err != nil {
			return fmt.Errorf("web: compressing frame: %w", err)
		}
		data = append(data, output...)
	} else {
		data = append(data, pixels...)
	}

	select {
	case s.hub.broadcast <- message{frame: true, hash: hash, data: data}:
	case <-s.hub.done:
		return display.ErrClosed
	}
	return nil
}

func (s *Surface) PollEvents() {
	if s.hub == nil {
		return
	}
	select {
	case <-s.hub.closing:
		s.open.Store(false)
	default:
	}
}

func (s *Surface) IsOpen() bool {
	return s.open.Load()
}

func (s *Surface) Close() error {
	s.open.Store(false)
	if s.server == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		close(s.hub.done)
		err = s.server.Close()
	})
	return err
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
