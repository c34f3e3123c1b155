package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadmin/internal/domain/entity"
	ws "marketadmin/internal/infrastructure/websocket"
	apperrors "marketadmin/pkg/errors"
)

type fakeChatRepo struct {
	chats    map[string]*entity.Chat
	messages []*entity.Message
	readBy   []string
}

func newFakeChatRepo(chats ...*entity.Chat) *fakeChatRepo {
	repo := &fakeChatRepo{chats: map[string]*entity.Chat{}}
	for _, chat := range chats {
		repo.chats[chat.ID] = chat
	}
	return repo
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	chat, ok := r.chats[id]
	if !ok {
		return nil, apperrors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (r *fakeChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) ListByParticipant(ctx context.Context, participantID string, limit, offset int) ([]*entity.Chat, int64, error) {
	var out []*entity.Chat
	for _, chat := range r.chats {
		for _, p := range chat.Participants {
			if p == participantID {
				out = append(out, chat)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	message.ID = "msg-" + message.ChatID
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	var out []*entity.Message
	for _, msg := range r.messages {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeChatRepo) MarkMessagesRead(ctx context.Context, chatID, readerID string) error {
	r.readBy = append(r.readBy, readerID)
	return nil
}

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Notification, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return nil
}

type fakePusher struct {
	frames map[string][][]byte
}

func newFakePusher() *fakePusher {
	return &fakePusher{frames: map[string][][]byte{}}
}

func (p *fakePusher) SendToAccount(accountID string, frame []byte) {
	p.frames[accountID] = append(p.frames[accountID], frame)
}

func (p *fakePusher) IsConnected(accountID string) bool {
	return true
}

func supportChat() *entity.Chat {
	return &entity.Chat{
		ID:               "chat-1",
		Participants:     []string{"op-1", "buyer-1"},
		CounterpartyID:   "buyer-1",
		CounterpartyName: "Ayu",
		UnreadCount:      map[string]int{},
	}
}

func TestSendMessageUpdatesSummaryAndUnread(t *testing.T) {
	chatRepo := newFakeChatRepo(supportChat())
	pusher := newFakePusher()
	uc := NewChatUseCase(chatRepo, nil, &fakeNotificationRepo{}, pusher)

	message, err := uc.SendMessage(context.Background(), "op-1", SendMessageInput{
		ChatID:  "chat-1",
		Content: "hello there",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)

	chat := chatRepo.chats["chat-1"]
	assert.Equal(t, "hello there", chat.LastMessage)
	assert.Equal(t, 1, chat.UnreadCount["buyer-1"], "recipient's unread counter incremented")
	assert.Equal(t, 0, chat.UnreadCount["op-1"], "sender's counter untouched")
}

func TestSendMessagePushesToAllParticipants(t *testing.T) {
	chatRepo := newFakeChatRepo(supportChat())
	pusher := newFakePusher()
	uc := NewChatUseCase(chatRepo, nil, &fakeNotificationRepo{}, pusher)

	message, err := uc.SendMessage(context.Background(), "op-1", SendMessageInput{
		ChatID:  "chat-1",
		Content: "hello",
	})
	require.NoError(t, err)

	// Both participants get the frame; the sender relies on the echo.
	require.Len(t, pusher.frames["op-1"], 1)
	require.Len(t, pusher.frames["buyer-1"], 1)

	var env ws.Envelope
	require.NoError(t, json.Unmarshal(pusher.frames["op-1"][0], &env))
	assert.Equal(t, ws.EventTypeMessage, env.Type)

	var event ws.MessageEvent
	require.NoError(t, json.Unmarshal(env.Data, &event))
	assert.Equal(t, message.ID, event.Message.ID)
	assert.Equal(t, "chat-1", event.ChatID)
}

func TestCounterpartyMessageCreatesNotification(t *testing.T) {
	chatRepo := newFakeChatRepo(supportChat())
	notifications := &fakeNotificationRepo{}
	uc := NewChatUseCase(chatRepo, nil, notifications, newFakePusher())

	_, err := uc.SendMessage(context.Background(), "buyer-1", SendMessageInput{
		ChatID:  "chat-1",
		Content: "where is my order?",
	})
	require.NoError(t, err)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, entity.NotificationTypeNewMessage, notifications.created[0].Type)
	assert.Equal(t, "chat-1", notifications.created[0].RefID)

	// Operator replies do not notify.
	_, err = uc.SendMessage(context.Background(), "op-1", SendMessageInput{
		ChatID:  "chat-1",
		Content: "on its way",
	})
	require.NoError(t, err)
	assert.Len(t, notifications.created, 1)
}

func TestSendMessageRejectsNonParticipants(t *testing.T) {
	uc := NewChatUseCase(newFakeChatRepo(supportChat()), nil, &fakeNotificationRepo{}, newFakePusher())

	_, err := uc.SendMessage(context.Background(), "intruder", SendMessageInput{
		ChatID:  "chat-1",
		Content: "hi",
	})
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))

	_, _, err = uc.GetChatMessages(context.Background(), "intruder", "chat-1", 50, 0)
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))
}

func TestSendMessageRequiresContent(t *testing.T) {
	uc := NewChatUseCase(newFakeChatRepo(supportChat()), nil, &fakeNotificationRepo{}, newFakePusher())

	_, err := uc.SendMessage(context.Background(), "op-1", SendMessageInput{ChatID: "chat-1"})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestMarkChatAsRead(t *testing.T) {
	chat := supportChat()
	chat.UnreadCount["op-1"] = 3
	chatRepo := newFakeChatRepo(chat)
	uc := NewChatUseCase(chatRepo, nil, &fakeNotificationRepo{}, newFakePusher())

	require.NoError(t, uc.MarkChatAsRead(context.Background(), "op-1", "chat-1"))
	assert.Equal(t, 0, chatRepo.chats["chat-1"].UnreadCount["op-1"])
	assert.Equal(t, []string{"op-1"}, chatRepo.readBy)

	// Already at zero: nothing written.
	require.NoError(t, uc.MarkChatAsRead(context.Background(), "op-1", "chat-1"))
	assert.Len(t, chatRepo.readBy, 1)
}
