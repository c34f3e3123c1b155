package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
)

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	doc, err := r.client.Collection("transactions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Transaction", err)
		}
		return nil, errors.Internal("Failed to get transaction", err)
	}

	var txn entity.Transaction
	if err := doc.DataTo(&txn); err != nil {
		return nil, errors.Internal("Failed to parse transaction data", err)
	}

	return &txn, nil
}

func (r *firestoreTransactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	txn.UpdatedAt = time.Now()

	_, err := r.client.Collection("transactions").Doc(txn.ID).Set(ctx, txn)
	if err != nil {
		return errors.Internal("Failed to update transaction", err)
	}

	return nil
}

func (r *firestoreTransactionRepository) List(ctx context.Context, filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, int64, error) {
	query := r.client.Collection("transactions").Query
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.VendorID != "" {
		query = query.Where("vendorId", "==", filter.VendorID)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count transactions", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var txns []*entity.Transaction

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate transactions", err)
		}

		var txn entity.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, 0, errors.Internal("Failed to parse transaction data", err)
		}

		txns = append(txns, &txn)
	}

	return txns, total, nil
}
