package web

// Type is the first byte of a message sent to clients.
type Type = uint8

const (
	// Frame carries a full frame: [Frame, compressed, pixels...].
	Frame Type = iota
	// FrameCache refers to a frame the client has already received:
	// [FrameCache, index].
	FrameCache
	// ClientInfo is sent once when a client connects:
	// [ClientInfo, width (LE uint16), height (LE uint16), compressed, id].
	ClientInfo
	// ServerInfo carries the latency of each client:
	// [ServerInfo, (id, latency in ms (LE uint16))...].
	ServerInfo
	// ClientClosing notifies clients that another client disconnected:
	// [ClientClosing, id].
	ClientClosing
)

// Event is the first byte of a message received from a client.
type Event = uint8

const (
	// KeepAlive is ignored.
	KeepAlive Event = 254
	// Closing asks the server to close the display.
	Closing Event = 255
)
