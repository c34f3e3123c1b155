package entity

import "time"

// User is a marketplace account: a buyer or a vendor, distinguished by Role.
type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role     string `json:"role" firestore:"role"`     // "buyer", "vendor"
	Status   string `json:"status" firestore:"status"` // "active", "suspended"

	FullName  string `json:"full_name,omitempty" firestore:"fullName,omitempty"`
	Address   string `json:"address,omitempty" firestore:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	// Vendor storefront fields, empty for buyers.
	StoreName   string  `json:"store_name,omitempty" firestore:"storeName,omitempty"`
	StoreRating float64 `json:"store_rating,omitempty" firestore:"storeRating,omitempty"`
	SalesCount  int     `json:"sales_count,omitempty" firestore:"salesCount,omitempty"`

	VerificationStatus string `json:"verification_status" firestore:"verificationStatus"` // "unverified", "pending", "verified", "rejected"

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
