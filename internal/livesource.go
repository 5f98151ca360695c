package internal

import (
	"encoding/json"
	"sync"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
)

// subscribeFrame is the frame sent to a relay to start receiving a
// thread's events
type subscribeFrame struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Thread string `json:"thread"`
}

// LiveSource follows a relay websocket and decodes one event per text
// frame. There is no automatic reconnection: when the connection drops
// the event channel closes and the caller decides what happens next.
type LiveSource struct {
	SubID string

	conn      *websocket.Conn
	events    chan *Event
	closeOnce sync.Once
}

// DialLiveSource connects to a relay and subscribes to a thread. The
// subscription id is a fresh random uuid chosen by this client.
func DialLiveSource(url, threadID string) (*LiveSource, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, &SourceError{Op: "dial", Path: url, Err: err}
	}

	s := &LiveSource{
		SubID:  uuid.NewString(),
		conn:   conn,
		events: make(chan *Event, 100),
	}

	frame, err := json.Marshal(subscribeFrame{Type: "subscribe", ID: s.SubID, Thread: threadID})
	if err != nil {
		_ = conn.Close()
		return nil, &SourceError{Op: "subscribe", Path: url, Err: err}
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		_ = conn.Close()
		return nil, &SourceError{Op: "subscribe", Path: url, Err: err}
	}

	go s.readLoop()
	return s, nil
}

// Events returns the channel of decoded events. It closes when the
// connection ends.
func (s *LiveSource) Events() <-chan *Event {
	return s.events
}

// readLoop decodes incoming frames until the connection errors. Frames
// that are not valid events are logged and skipped.
func (s *LiveSource) readLoop() {
	defer close(s.events)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			LogDebug("Relay connection closed: %v", err)
			return
		}

		ev, err := decodeEventFrame(data)
		if err != nil {
			LogWarn("Skipping bad relay frame: %v", err)
			continue
		}
		s.events <- ev
	}
}

// Close shuts the connection down. The read loop then closes the event
// channel.
func (s *LiveSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.conn.Close()
	})
	return err
}

// decodeEventFrame parses one relay text frame into an event
func decodeEventFrame(data []byte) (*Event, error) {
	return ParseEvent(data)
}
