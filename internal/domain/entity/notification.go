package entity

import "time"

const (
	NotificationTypeNewOrder        = "new_order"
	NotificationTypeNewVerification = "new_verification"
	NotificationTypeNewMessage      = "new_message"
)

// Notification is an item in the admin notification feed.
type Notification struct {
	ID      string `json:"id" firestore:"id"`
	Type    string `json:"type" firestore:"type"`
	Title   string `json:"title" firestore:"title"`
	Body    string `json:"body,omitempty" firestore:"body,omitempty"`
	RefID   string `json:"ref_id,omitempty" firestore:"refId,omitempty"` // order/document/chat id
	Read    bool   `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
