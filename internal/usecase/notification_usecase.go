package usecase

import (
	"context"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.List(ctx, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.notificationRepo.MarkRead(ctx, id)
}
