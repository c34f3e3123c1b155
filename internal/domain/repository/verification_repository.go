package repository

import (
	"context"

	"marketadmin/internal/domain/entity"
)

type VerificationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.VerificationDocument, error)
	Update(ctx context.Context, doc *entity.VerificationDocument) error
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.VerificationDocument, int64, error)
}
