package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"marketadmin/pkg/logger"
)

// CommandHandler processes a send command arriving over a client's socket.
type CommandHandler func(ctx context.Context, senderID string, cmd SendCommand)

// Client represents one connected websocket session.
type Client struct {
	AccountID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Manager tracks active websocket connections by account ID.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex

	commandHandler CommandHandler
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// SetCommandHandler wires the chat layer in after construction; the chat
// usecase needs the manager to push, so the dependency is circular at
// construction time.
func (m *Manager) SetCommandHandler(h CommandHandler) {
	m.commandHandler = h
}

// Start runs the manager's register/unregister loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.AccountID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: %s", client.AccountID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.AccountID]; ok {
					delete(m.clients, client.AccountID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Client unregistered: %s", client.AccountID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToAccount delivers a frame to one account if it is connected.
func (m *Manager) SendToAccount(accountID string, frame []byte) {
	m.mutex.RLock()
	client, ok := m.clients[accountID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- frame:
	default:
		logger.Warn("Dropping frame for %s: send buffer full", accountID)
	}
}

// IsConnected reports whether an account has an active socket.
func (m *Manager) IsConnected(accountID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[accountID]
	return ok
}

// ReadPump reads frames from the socket until it closes, dispatching send
// commands to the command handler.
func (c *Client) ReadPump(ctx context.Context, m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("websocket read error for %s: %v", c.AccountID, err)
			}
			break
		}

		var envelope Envelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			logger.Warn("Discarding malformed frame from %s: %v", c.AccountID, err)
			continue
		}

		switch envelope.Type {
		case EventTypePing:
			if frame, err := NewEnvelope(EventTypePong, nil); err == nil {
				c.Send <- frame
			}
		case EventTypeSendMessage:
			var cmd SendCommand
			if err := json.Unmarshal(envelope.Data, &cmd); err != nil {
				logger.Warn("Discarding malformed send command from %s: %v", c.AccountID, err)
				continue
			}
			if m.commandHandler != nil {
				m.commandHandler(ctx, c.AccountID, cmd)
			}
		default:
			logger.Debug("Ignoring frame type %q from %s", envelope.Type, c.AccountID)
		}
	}
}

// WritePump drains the send channel onto the socket.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		frame, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			logger.Error("websocket write error for %s: %v", c.AccountID, err)
			return
		}
	}
}
