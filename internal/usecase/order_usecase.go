package usecase

import (
	"context"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

type OrderDetail struct {
	*entity.Order
	Buyer  *entity.User `json:"buyer,omitempty"`
	Vendor *entity.User `json:"vendor,omitempty"`
}

func (uc *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, filter, limit, offset)
}

func (uc *OrderUseCase) GetDetail(ctx context.Context, id string) (*OrderDetail, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{Order: order}

	// Party lookups are best-effort: a deleted account must not hide the
	// order itself from the operator.
	if buyer, err := uc.userRepo.GetByID(ctx, order.BuyerID); err == nil {
		detail.Buyer = buyer
	}
	if vendor, err := uc.userRepo.GetByID(ctx, order.VendorID); err == nil {
		detail.Vendor = vendor
	}

	return detail, nil
}

func (uc *OrderUseCase) StatusSummary(ctx context.Context) (map[string]int64, error) {
	return uc.orderRepo.CountByStatus(ctx)
}
