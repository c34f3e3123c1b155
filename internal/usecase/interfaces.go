package usecase

import "context"

// AuthProvider abstracts the identity provider so usecases can be tested
// against a fake.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
	SignInWithPassword(ctx context.Context, email, password string) (string, string, error)
}

// MessagePusher abstracts the websocket hub for the chat usecase.
type MessagePusher interface {
	SendToAccount(accountID string, frame []byte)
	IsConnected(accountID string) bool
}
