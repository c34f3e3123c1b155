package usecase

import (
	"context"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, filter, limit, offset)
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) Suspend(ctx context.Context, id string) (*entity.User, error) {
	return uc.setStatus(ctx, id, "suspended")
}

func (uc *UserUseCase) Reactivate(ctx context.Context, id string) (*entity.User, error) {
	return uc.setStatus(ctx, id, "active")
}

func (uc *UserUseCase) setStatus(ctx context.Context, id, newStatus string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Status == newStatus {
		return nil, errors.Conflict("User is already " + newStatus)
	}

	user.Status = newStatus
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User %s status set to %s", id, newStatus)
	return user, nil
}
