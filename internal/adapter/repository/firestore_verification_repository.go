package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
)

type firestoreVerificationRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &firestoreVerificationRepository{
		client: client,
	}
}

func (r *firestoreVerificationRepository) GetByID(ctx context.Context, id string) (*entity.VerificationDocument, error) {
	doc, err := r.client.Collection("verification_documents").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Verification document", err)
		}
		return nil, errors.Internal("Failed to get verification document", err)
	}

	var vd entity.VerificationDocument
	if err := doc.DataTo(&vd); err != nil {
		return nil, errors.Internal("Failed to parse verification document", err)
	}

	return &vd, nil
}

func (r *firestoreVerificationRepository) Update(ctx context.Context, vd *entity.VerificationDocument) error {
	_, err := r.client.Collection("verification_documents").Doc(vd.ID).Set(ctx, vd)
	if err != nil {
		return errors.Internal("Failed to update verification document", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) ListByStatus(ctx context.Context, docStatus string, limit, offset int) ([]*entity.VerificationDocument, int64, error) {
	query := r.client.Collection("verification_documents").Query
	if docStatus != "" {
		query = query.Where("status", "==", docStatus)
	}
	query = query.OrderBy("submittedAt", firestore.Asc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count verification documents", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var docs []*entity.VerificationDocument

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate verification documents", err)
		}

		var vd entity.VerificationDocument
		if err := doc.DataTo(&vd); err != nil {
			return nil, 0, errors.Internal("Failed to parse verification document", err)
		}

		docs = append(docs, &vd)
	}

	return docs, total, nil
}
