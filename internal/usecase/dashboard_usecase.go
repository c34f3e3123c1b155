package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
)

type DashboardUseCase struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	txnRepo   repository.TransactionRepository
}

func NewDashboardUseCase(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	txnRepo repository.TransactionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		txnRepo:   txnRepo,
	}
}

type DashboardSummary struct {
	TotalBuyers  int64 `json:"total_buyers"`
	TotalVendors int64 `json:"total_vendors"`

	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	OrdersLastWeek int64            `json:"orders_last_week"`

	EscrowHeld      decimal.Decimal `json:"escrow_held"`
	RevenueReleased decimal.Decimal `json:"revenue_released"`
}

func (uc *DashboardUseCase) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{
		EscrowHeld:      decimal.Zero,
		RevenueReleased: decimal.Zero,
	}

	buyers, err := uc.userRepo.Count(ctx, repository.UserFilter{Role: "buyer"})
	if err != nil {
		return nil, err
	}
	summary.TotalBuyers = buyers

	vendors, err := uc.userRepo.Count(ctx, repository.UserFilter{Role: "vendor"})
	if err != nil {
		return nil, err
	}
	summary.TotalVendors = vendors

	byStatus, err := uc.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	summary.OrdersByStatus = byStatus

	lastWeek, err := uc.orderRepo.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	summary.OrdersLastWeek = lastWeek

	held, _, err := uc.txnRepo.List(ctx, repository.TransactionFilter{Status: entity.TransactionStatusHeld}, 0, 0)
	if err != nil {
		return nil, err
	}
	for _, txn := range held {
		summary.EscrowHeld = summary.EscrowHeld.Add(txn.Amount)
	}

	released, _, err := uc.txnRepo.List(ctx, repository.TransactionFilter{Status: entity.TransactionStatusReleased}, 0, 0)
	if err != nil {
		return nil, err
	}
	for _, txn := range released {
		summary.RevenueReleased = summary.RevenueReleased.Add(txn.PlatformFee)
	}

	return summary, nil
}
