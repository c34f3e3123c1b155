package entity

import "time"

// Chat is a conversation between the admin operator side and one
// counterparty (a buyer or a vendor).
type Chat struct {
	ID           string `json:"id" firestore:"id"`
	Participants []string `json:"participants" firestore:"participants"`

	CounterpartyID   string `json:"counterparty_id" firestore:"counterpartyId"`
	CounterpartyName string `json:"counterparty_name" firestore:"counterpartyName"`
	CounterpartyRole string `json:"counterparty_role" firestore:"counterpartyRole"` // "buyer", "vendor"
	CounterpartyAvatar string `json:"counterparty_avatar,omitempty" firestore:"counterpartyAvatar,omitempty"`

	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`

	// Per-participant unread counters, keyed by account ID.
	UnreadCount map[string]int `json:"unread_count" firestore:"unreadCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
