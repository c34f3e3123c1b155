package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	ProductName string          `json:"product_name" firestore:"productName"`
	Quantity    int             `json:"quantity" firestore:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" firestore:"unitPrice"`
}

type Order struct {
	ID       string `json:"id" firestore:"id"`
	BuyerID  string `json:"buyer_id" firestore:"buyerId"`
	VendorID string `json:"vendor_id" firestore:"vendorId"`

	Items  []OrderItem     `json:"items" firestore:"items"`
	Total  decimal.Decimal `json:"total" firestore:"total"`
	Status string          `json:"status" firestore:"status"`

	TransactionID string `json:"transaction_id,omitempty" firestore:"transactionId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
