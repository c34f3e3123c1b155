package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Escrow transaction states. Funds are held until an operator releases them
// to the vendor or refunds the buyer.
const (
	TransactionStatusHeld     = "held"
	TransactionStatusReleased = "released"
	TransactionStatusRefunded = "refunded"
	TransactionStatusDisputed = "disputed"
)

type Transaction struct {
	ID      string `json:"id" firestore:"id"`
	OrderID string `json:"order_id" firestore:"orderId"`

	BuyerID  string `json:"buyer_id" firestore:"buyerId"`
	VendorID string `json:"vendor_id" firestore:"vendorId"`

	Amount       decimal.Decimal `json:"amount" firestore:"amount"`
	PlatformFee  decimal.Decimal `json:"platform_fee" firestore:"platformFee"`
	VendorPayout decimal.Decimal `json:"vendor_payout" firestore:"vendorPayout"`

	Status string `json:"status" firestore:"status"`

	// Set when an operator releases or refunds the escrow.
	ResolvedBy string    `json:"resolved_by,omitempty" firestore:"resolvedBy,omitempty"`
	ResolvedAt time.Time `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
	Note       string    `json:"note,omitempty" firestore:"note,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
