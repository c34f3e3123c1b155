package websocket

import (
	"encoding/json"
	"time"

	"marketadmin/internal/domain/entity"
)

// Wire event types shared by the server hub and the console transport.
const (
	EventTypePing        = "ping"
	EventTypePong        = "pong"
	EventTypeMessage     = "message"      // server -> client: new message in a chat
	EventTypeSendMessage = "send_message" // client -> server: send command
)

// Envelope is the frame exchanged over the websocket.
type Envelope struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// MessageEvent announces a new message to a chat participant.
type MessageEvent struct {
	Message *entity.Message `json:"message"`
	ChatID  string          `json:"chat_id"`
}

// SendCommand asks the server to deliver a message to a chat.
type SendCommand struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
}

func NewEnvelope(eventType string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		Type:      eventType,
		Data:      raw,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
