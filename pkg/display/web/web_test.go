package web

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
)

const (
	testWidth  = 4
	testHeight = 2
)

func newTestSurface(t *testing.T, compression bool) (*Surface, *websocket.Conn) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	s := New("127.0.0.1:0")
	s.Log = logger
	s.Compression = compression
	if err := s.Open(testWidth, testHeight); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.ListenAddr()+"/", nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	info := readMessage(t, conn)
	if info[0] != ClientInfo {
		t.Fatalf("expected client info, got type %d", info[0])
	}
	if w, h := binary.LittleEndian.Uint16(info[1:]), binary.LittleEndian.Uint16(info[3:]); w != testWidth || h != testHeight {
		t.Errorf("expected %dx%d, got %dx%d", testWidth, testHeight, w, h)
	}
	if info[5] != boolByte(compression) {
		t.Errorf("expected compression byte %d, got %d", boolByte(compression), info[5])
	}
	if info[6] == 0 {
		t.Errorf("expected a client id")
	}

	return s, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		// latency updates may arrive at any time
		if msg[0] == ServerInfo {
			continue
		}
		return msg
	}
}

func frame(v byte) []byte {
	return bytes.Repeat([]byte{v}, testWidth*testHeight*3)
}

func TestSurface_Frames(t *testing.T) {
	s, conn := newTestSurface(t, false)

	a, b := frame(0x11), frame(0x22)
	for _, f := range [][]byte{a, a, b, a} {
		if err := s.Draw(f); err != nil {
			t.Fatal(err)
		}
	}

	msg := readMessage(t, conn)
	if msg[0] != Frame || msg[1] != 0 || !bytes.Equal(msg[2:], a) {
		t.Fatalf("expected frame a, got %v", msg)
	}
	// the repeated frame is skipped, so b arrives next
	msg = readMessage(t, conn)
	if msg[0] != Frame || !bytes.Equal(msg[2:], b) {
		t.Fatalf("expected frame b, got %v", msg)
	}
	msg = readMessage(t, conn)
	if !bytes.Equal(msg, []byte{FrameCache, 0}) {
		t.Fatalf("expected a cache reference to frame a, got %v", msg)
	}
}

func TestSurface_Compression(t *testing.T) {
	s, conn := newTestSurface(t, true)

	f := frame(0x7F)
	if err := s.Draw(f); err != nil {
		t.Fatal(err)
	}

	msg := readMessage(t, conn)
	if msg[0] != Frame || msg[1] != 1 {
		t.Fatalf("expected a compressed frame, got %v", msg[:2])
	}
	decoded, err := cbrotli.Decode(msg[2:])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, f) {
		t.Errorf("decoded frame does not match")
	}
}

func TestSurface_ClientClose(t *testing.T) {
	s, conn := newTestSurface(t, false)

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{Closing}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.IsOpen() && time.Now().Before(deadline) {
		s.PollEvents()
		time.Sleep(10 * time.Millisecond)
	}
	if s.IsOpen() {
		t.Fatal("expected the surface to close")
	}
}

func TestSurface_Close(t *testing.T) {
	s, _ := newTestSurface(t, false)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if s.IsOpen() {
		t.Error("expected the surface to be closed")
	}
	if err := s.Draw(frame(0)); err == nil {
		t.Error("expected drawing to a closed surface to fail")
	}
	// closing twice is a no-op
	if err := s.Close(); err != nil {
		t.Error(err)
	}
}

func TestCache(t *testing.T) {
	c := newCache(2)
	if c.index(0) != -1 {
		t.Error("expected an empty cache to miss the zero hash")
	}
	if i := c.add(1, []byte{1}); i != 0 {
		t.Errorf("expected index 0, got %d", i)
	}
	c.add(2, []byte{2})
	if c.index(1) != 0 || c.index(2) != 1 {
		t.Errorf("expected hits at 0 and 1")
	}
	// the oldest entry is evicted
	c.add(3, []byte{3})
	if c.index(1) != -1 || c.index(3) != 0 {
		t.Errorf("expected hash 1 to be evicted by hash 3")
	}
}
