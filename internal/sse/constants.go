package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often an idle stream receives a ping
const KeepaliveInterval = 30 * time.Second

// Stream event types that are not domain events
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters accepted by the stream endpoint
const (
	QueryParamTypes       = "types"
	QueryParamCharacterID = "character_id"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgStreamUnsupported  = "Streaming unsupported by response writer"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgPayloadNoCharacter = "Event payload has no character id, skipping"
)

// ErrMsgStreamingUnsupported is returned when the connection cannot be flushed
const ErrMsgStreamingUnsupported = "Streaming not supported"
