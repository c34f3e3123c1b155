package repository

import (
	"context"

	"marketadmin/internal/domain/entity"
)

type TransactionFilter struct {
	Status   string
	VendorID string
}

type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, txn *entity.Transaction) error
	List(ctx context.Context, filter TransactionFilter, limit, offset int) ([]*entity.Transaction, int64, error)
}
