package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	apperrors "marketadmin/pkg/errors"
)

type fakeTxnRepo struct {
	txns map[string]*entity.Transaction
}

func newFakeTxnRepo(txns ...*entity.Transaction) *fakeTxnRepo {
	repo := &fakeTxnRepo{txns: map[string]*entity.Transaction{}}
	for _, txn := range txns {
		repo.txns[txn.ID] = txn
	}
	return repo
}

func (r *fakeTxnRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	txn, ok := r.txns[id]
	if !ok {
		return nil, apperrors.NotFound("Transaction", nil)
	}
	return txn, nil
}

func (r *fakeTxnRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTxnRepo) List(ctx context.Context, filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, int64, error) {
	var out []*entity.Transaction
	for _, txn := range r.txns {
		out = append(out, txn)
	}
	return out, int64(len(out)), nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (r *fakeOrderRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func heldEscrow() *entity.Transaction {
	return &entity.Transaction{
		ID:           "txn-1",
		OrderID:      "order-1",
		BuyerID:      "buyer-1",
		VendorID:     "vendor-1",
		Amount:       decimal.NewFromInt(100),
		PlatformFee:  decimal.NewFromInt(10),
		VendorPayout: decimal.NewFromInt(90),
		Status:       entity.TransactionStatusHeld,
	}
}

func TestReleaseCompletesOrder(t *testing.T) {
	txnRepo := newFakeTxnRepo(heldEscrow())
	orderRepo := newFakeOrderRepo(&entity.Order{ID: "order-1", Status: entity.OrderStatusShipped})
	uc := NewTransactionUseCase(txnRepo, orderRepo)

	txn, err := uc.Release(context.Background(), "op-1", "txn-1", "all good")
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionStatusReleased, txn.Status)
	assert.Equal(t, "op-1", txn.ResolvedBy)
	assert.False(t, txn.ResolvedAt.IsZero())
	assert.Equal(t, entity.OrderStatusCompleted, orderRepo.orders["order-1"].Status)
}

func TestRefundCancelsOrder(t *testing.T) {
	txn := heldEscrow()
	txn.Status = entity.TransactionStatusDisputed
	txnRepo := newFakeTxnRepo(txn)
	orderRepo := newFakeOrderRepo(&entity.Order{ID: "order-1", Status: entity.OrderStatusPaid})
	uc := NewTransactionUseCase(txnRepo, orderRepo)

	resolved, err := uc.Refund(context.Background(), "op-1", "txn-1", "item never shipped")
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionStatusRefunded, resolved.Status)
	assert.Equal(t, entity.OrderStatusCancelled, orderRepo.orders["order-1"].Status)
}

func TestResolvedEscrowIsTerminal(t *testing.T) {
	txn := heldEscrow()
	txn.Status = entity.TransactionStatusReleased
	uc := NewTransactionUseCase(newFakeTxnRepo(txn), newFakeOrderRepo())

	_, err := uc.Release(context.Background(), "op-1", "txn-1", "")
	assert.True(t, apperrors.Is(err, "CONFLICT"))

	_, err = uc.Refund(context.Background(), "op-1", "txn-1", "")
	assert.True(t, apperrors.Is(err, "CONFLICT"))
}

func TestMismatchedAmountsBlockResolution(t *testing.T) {
	txn := heldEscrow()
	txn.VendorPayout = decimal.NewFromInt(80) // 10 + 80 != 100
	uc := NewTransactionUseCase(newFakeTxnRepo(txn), newFakeOrderRepo())

	_, err := uc.Release(context.Background(), "op-1", "txn-1", "")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
	assert.Equal(t, entity.TransactionStatusHeld, txn.Status, "state untouched when amounts do not reconcile")
}
