package repository

import (
	"context"

	"marketadmin/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	// ListByParticipant returns chats ordered by last activity, newest first.
	ListByParticipant(ctx context.Context, participantID string, limit, offset int) ([]*entity.Chat, int64, error)

	CreateMessage(ctx context.Context, message *entity.Message) error
	// ListMessages returns a chat's messages ordered by creation time,
	// oldest first, so the history can be appended to directly.
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error)
	MarkMessagesRead(ctx context.Context, chatID, readerID string) error
}
