package entity

import "time"

const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

// VerificationDocument is a KYC submission awaiting operator review. The
// document file itself lives in cloud storage; ObjectPath points at it.
type VerificationDocument struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`

	DocumentType string `json:"document_type" firestore:"documentType"` // "id_card", "business_license", "tax_certificate"
	ObjectPath   string `json:"object_path" firestore:"objectPath"`

	Status     string `json:"status" firestore:"status"`
	ReviewedBy string `json:"reviewed_by,omitempty" firestore:"reviewedBy,omitempty"`
	ReviewNote string `json:"review_note,omitempty" firestore:"reviewNote,omitempty"`

	SubmittedAt time.Time `json:"submitted_at" firestore:"submittedAt"`
	ReviewedAt  time.Time `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`
}
