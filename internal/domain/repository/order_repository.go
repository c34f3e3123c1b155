package repository

import (
	"context"
	"time"

	"marketadmin/internal/domain/entity"
)

type OrderFilter struct {
	Status   string
	VendorID string
	BuyerID  string
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
