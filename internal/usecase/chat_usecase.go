package usecase

import (
	"context"
	"time"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	ws "marketadmin/internal/infrastructure/websocket"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/logger"
)

type ChatUseCase struct {
	chatRepo         repository.ChatRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	pusher           MessagePusher
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	pusher MessagePusher,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:         chatRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

type SendMessageInput struct {
	ChatID  string
	Content string
}

// GetOperatorChats returns the operator's roster, newest activity first.
func (uc *ChatUseCase) GetOperatorChats(ctx context.Context, operatorID string, limit, offset int) ([]*entity.Chat, int64, error) {
	return uc.chatRepo.ListByParticipant(ctx, operatorID, limit, offset)
}

// GetChatMessages returns a thread's history, oldest first.
func (uc *ChatUseCase) GetChatMessages(ctx context.Context, accountID, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, 0, err
	}

	if !isParticipant(chat, accountID) {
		return nil, 0, errors.Forbidden("Not a participant of this chat", nil)
	}

	return uc.chatRepo.ListMessages(ctx, chatID, limit, offset)
}

// SendMessage persists a message, updates the chat summary and unread
// counters, and pushes the message to every connected participant.
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if input.Content == "" {
		return nil, errors.BadRequest("Message content is required", nil)
	}

	chat, err := uc.chatRepo.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(chat, senderID) {
		return nil, errors.Forbidden("Not a participant of this chat", nil)
	}

	message := &entity.Message{
		ChatID:    chat.ID,
		SenderID:  senderID,
		Content:   input.Content,
		Type:      "text",
		CreatedAt: time.Now(),
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	chat.LastMessage = message.Content
	chat.LastMessageAt = message.CreatedAt
	if chat.UnreadCount == nil {
		chat.UnreadCount = make(map[string]int)
	}
	for _, participantID := range chat.Participants {
		if participantID != senderID {
			chat.UnreadCount[participantID]++
		}
	}

	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		logger.Warn("Failed to update chat %s summary: %v", chat.ID, err)
	}

	uc.pushMessage(chat, message)

	if senderID == chat.CounterpartyID {
		uc.notifyOperators(ctx, chat, message)
	}

	return message, nil
}

// MarkChatAsRead zeroes the reader's unread counter and records read
// receipts on the counterparty's messages.
func (uc *ChatUseCase) MarkChatAsRead(ctx context.Context, readerID, chatID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}

	if !isParticipant(chat, readerID) {
		return errors.Forbidden("Not a participant of this chat", nil)
	}

	if chat.UnreadCount == nil || chat.UnreadCount[readerID] == 0 {
		return nil
	}

	chat.UnreadCount[readerID] = 0
	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		return err
	}

	if err := uc.chatRepo.MarkMessagesRead(ctx, chatID, readerID); err != nil {
		logger.Warn("Failed to mark messages read in chat %s: %v", chatID, err)
	}

	return nil
}

// HandleSendCommand is the websocket hub's entry point for send commands.
// Errors are logged, not returned: there is no response path on a fire-
// and-forget frame, and the sender sees the result via the echo.
func (uc *ChatUseCase) HandleSendCommand(ctx context.Context, senderID string, cmd ws.SendCommand) {
	_, err := uc.SendMessage(ctx, senderID, SendMessageInput{
		ChatID:  cmd.ChatID,
		Content: cmd.Content,
	})
	if err != nil {
		logger.Warn("Send command from %s for chat %s failed: %v", senderID, cmd.ChatID, err)
	}
}

func (uc *ChatUseCase) pushMessage(chat *entity.Chat, message *entity.Message) {
	frame, err := ws.NewEnvelope(ws.EventTypeMessage, ws.MessageEvent{
		Message: message,
		ChatID:  chat.ID,
	})
	if err != nil {
		logger.Error("Failed to encode message event: %v", err)
		return
	}

	// The sender gets the echo too; clients deduplicate by message id.
	for _, participantID := range chat.Participants {
		uc.pusher.SendToAccount(participantID, frame)
	}
}

func (uc *ChatUseCase) notifyOperators(ctx context.Context, chat *entity.Chat, message *entity.Message) {
	n := &entity.Notification{
		Type:  entity.NotificationTypeNewMessage,
		Title: "New message from " + chat.CounterpartyName,
		Body:  message.Content,
		RefID: chat.ID,
	}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		logger.Warn("Failed to create message notification: %v", err)
	}
}

func isParticipant(chat *entity.Chat, accountID string) bool {
	for _, participantID := range chat.Participants {
		if participantID == accountID {
			return true
		}
	}
	return false
}
