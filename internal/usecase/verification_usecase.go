package usecase

import (
	"context"
	"time"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/logger"
)

// DocumentSigner produces short-lived read URLs for stored KYC documents.
type DocumentSigner interface {
	SignedURL(objectPath string, expiry time.Duration) (string, error)
}

type VerificationUseCase struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
	signer           DocumentSigner
}

func NewVerificationUseCase(verificationRepo repository.VerificationRepository, userRepo repository.UserRepository, signer DocumentSigner) *VerificationUseCase {
	return &VerificationUseCase{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		signer:           signer,
	}
}

type VerificationDetail struct {
	*entity.VerificationDocument
	User        *entity.User `json:"user,omitempty"`
	DocumentURL string       `json:"document_url,omitempty"`
}

func (uc *VerificationUseCase) ListQueue(ctx context.Context, status string, limit, offset int) ([]*entity.VerificationDocument, int64, error) {
	return uc.verificationRepo.ListByStatus(ctx, status, limit, offset)
}

func (uc *VerificationUseCase) GetDetail(ctx context.Context, id string) (*VerificationDetail, error) {
	doc, err := uc.verificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &VerificationDetail{VerificationDocument: doc}

	if user, err := uc.userRepo.GetByID(ctx, doc.UserID); err == nil {
		detail.User = user
	}

	if uc.signer != nil && doc.ObjectPath != "" {
		url, err := uc.signer.SignedURL(doc.ObjectPath, 15*time.Minute)
		if err != nil {
			logger.Warn("Failed to sign document URL for %s: %v", doc.ID, err)
		} else {
			detail.DocumentURL = url
		}
	}

	return detail, nil
}

func (uc *VerificationUseCase) Approve(ctx context.Context, operatorID, docID, note string) (*entity.VerificationDocument, error) {
	return uc.review(ctx, operatorID, docID, note, entity.VerificationStatusApproved)
}

func (uc *VerificationUseCase) Reject(ctx context.Context, operatorID, docID, note string) (*entity.VerificationDocument, error) {
	if note == "" {
		return nil, errors.BadRequest("A rejection requires a review note", nil)
	}
	return uc.review(ctx, operatorID, docID, note, entity.VerificationStatusRejected)
}

func (uc *VerificationUseCase) review(ctx context.Context, operatorID, docID, note, target string) (*entity.VerificationDocument, error) {
	doc, err := uc.verificationRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.Status != entity.VerificationStatusPending {
		return nil, errors.Conflict("Document has already been reviewed")
	}

	doc.Status = target
	doc.ReviewedBy = operatorID
	doc.ReviewNote = note
	doc.ReviewedAt = time.Now()

	if err := uc.verificationRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	// The review outcome flips the account's verification status.
	user, err := uc.userRepo.GetByID(ctx, doc.UserID)
	if err != nil {
		logger.Warn("Reviewed document %s but user %s not found: %v", doc.ID, doc.UserID, err)
		return doc, nil
	}

	if target == entity.VerificationStatusApproved {
		user.VerificationStatus = "verified"
	} else {
		user.VerificationStatus = "rejected"
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to update verification status for user %s: %v", user.ID, err)
	}

	logger.Info("Verification document %s %s by %s", docID, target, operatorID)
	return doc, nil
}
