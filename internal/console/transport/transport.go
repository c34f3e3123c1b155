package transport

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	ws "marketadmin/internal/infrastructure/websocket"
	"marketadmin/pkg/logger"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	eventBuffer  = 64
)

// Transport is the console's live push channel. It dials the server's
// websocket endpoint, decodes message events onto Events, and accepts
// send commands. Reconnection is the caller's concern: when the read
// loop dies the Events channel closes and Connected turns false.
type Transport struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	events chan *ws.MessageEvent
	closed bool
}

// Dial connects to the push endpoint, authenticating with the bearer
// token as a query parameter.
func Dial(ctx context.Context, endpoint, token string) (*Transport, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}

	t := &Transport{
		conn:   conn,
		events: make(chan *ws.MessageEvent, eventBuffer),
	}
	go t.readLoop()
	go t.pingLoop()
	return t, nil
}

// Events delivers decoded new-message events. The channel closes when
// the connection dies.
func (t *Transport) Events() <-chan *ws.MessageEvent {
	return t.events
}

func (t *Transport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed
}

// Send issues a send_message command over the live channel.
func (t *Transport) Send(chatID, content string) error {
	frame, err := ws.NewEnvelope(ws.EventTypeSendMessage, ws.SendCommand{
		ChatID:  chatID,
		Content: content,
	})
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return t.conn.WriteMessage(websocket.TextMessage, frame)
}

func (t *Transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	conn := t.conn
	t.mu.Unlock()
	return conn.Close()
}

func (t *Transport) readLoop() {
	defer func() {
		t.Close()
		close(t.events)
	}()

	for {
		_, raw, err := t.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Push channel closed unexpectedly: %v", err)
			}
			return
		}

		var env ws.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			logger.Debug("Dropping malformed frame: %v", err)
			continue
		}

		switch env.Type {
		case ws.EventTypeMessage:
			var event ws.MessageEvent
			if err := json.Unmarshal(env.Data, &event); err != nil {
				logger.Debug("Dropping malformed message event: %v", err)
				continue
			}
			select {
			case t.events <- &event:
			default:
				// Consumer fell behind; dropping is preferable to
				// stalling the read loop. A roster refresh recovers.
				logger.Warn("Event buffer full, dropping message event for chat %s", event.ChatID)
			}
		case ws.EventTypePong:
			// keepalive reply, nothing to do
		}
	}
}

func (t *Transport) pingLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !t.Connected() {
			return
		}
		frame, err := ws.NewEnvelope(ws.EventTypePing, map[string]string{})
		if err != nil {
			return
		}
		t.mu.Lock()
		t.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err = t.conn.WriteMessage(websocket.TextMessage, frame)
		t.mu.Unlock()
		if err != nil {
			return
		}
	}
}
