package usecase

import (
	"context"
	"time"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/logger"
)

// TransactionUseCase covers escrow review: held funds are either released
// to the vendor or refunded to the buyer by an operator.
type TransactionUseCase struct {
	txnRepo   repository.TransactionRepository
	orderRepo repository.OrderRepository
}

func NewTransactionUseCase(txnRepo repository.TransactionRepository, orderRepo repository.OrderRepository) *TransactionUseCase {
	return &TransactionUseCase{
		txnRepo:   txnRepo,
		orderRepo: orderRepo,
	}
}

func (uc *TransactionUseCase) List(ctx context.Context, filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, int64, error) {
	return uc.txnRepo.List(ctx, filter, limit, offset)
}

func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id)
}

// Release pays out held escrow to the vendor.
func (uc *TransactionUseCase) Release(ctx context.Context, operatorID, txnID, note string) (*entity.Transaction, error) {
	return uc.resolve(ctx, operatorID, txnID, note, entity.TransactionStatusReleased)
}

// Refund returns held escrow to the buyer.
func (uc *TransactionUseCase) Refund(ctx context.Context, operatorID, txnID, note string) (*entity.Transaction, error) {
	return uc.resolve(ctx, operatorID, txnID, note, entity.TransactionStatusRefunded)
}

func (uc *TransactionUseCase) resolve(ctx context.Context, operatorID, txnID, note, target string) (*entity.Transaction, error) {
	txn, err := uc.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}

	// Only held or disputed escrow can be resolved; released/refunded are
	// terminal states.
	if txn.Status != entity.TransactionStatusHeld && txn.Status != entity.TransactionStatusDisputed {
		return nil, errors.Conflict("Transaction is already " + txn.Status)
	}

	// Payout must reconcile: amount = fee + vendor payout.
	if !txn.Amount.Equal(txn.PlatformFee.Add(txn.VendorPayout)) {
		return nil, errors.Internal("Transaction amounts do not reconcile", nil)
	}

	txn.Status = target
	txn.ResolvedBy = operatorID
	txn.ResolvedAt = time.Now()
	txn.Note = note

	if err := uc.txnRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	// Keep the order in step with its escrow outcome.
	if order, err := uc.orderRepo.GetByID(ctx, txn.OrderID); err == nil {
		switch target {
		case entity.TransactionStatusReleased:
			order.Status = entity.OrderStatusCompleted
		case entity.TransactionStatusRefunded:
			order.Status = entity.OrderStatusCancelled
		}
		if err := uc.orderRepo.Update(ctx, order); err != nil {
			logger.Warn("Failed to sync order %s after escrow resolution: %v", order.ID, err)
		}
	}

	logger.Info("Transaction %s %s by %s", txnID, target, operatorID)
	return txn, nil
}
