package entity

import "time"

type Message struct {
	ID       string `json:"id" firestore:"id"`
	ChatID   string `json:"chat_id" firestore:"chatId"`
	SenderID string `json:"sender_id" firestore:"senderId"`

	Content string `json:"content" firestore:"content"`
	Type    string `json:"type" firestore:"type"` // "text", "system"

	// ReadBy tracks which participants have read this message; meaningful
	// for operator-sent messages to show counterparty read state.
	ReadBy []string `json:"read_by" firestore:"readBy"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
