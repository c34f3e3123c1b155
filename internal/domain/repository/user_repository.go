package repository

import (
	"context"

	"marketadmin/internal/domain/entity"
)

type UserFilter struct {
	Role   string // "buyer", "vendor" or empty for all
	Status string
	Search string // matched against username/email
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, int64, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
}
