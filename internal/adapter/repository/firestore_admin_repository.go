package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.client.Collection("admins").Doc(admin.ID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to create admin", err)
	}

	return nil
}

func (r *firestoreAdminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	doc, err := r.client.Collection("admins").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin", err)
	}

	var admin entity.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}

	return &admin, nil
}

func (r *firestoreAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := r.client.Collection("admins").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to query admin by email", err)
	}

	var admin entity.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}

	return &admin, nil
}

func (r *firestoreAdminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	admin.UpdatedAt = time.Now()

	_, err := r.client.Collection("admins").Doc(admin.ID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to update admin", err)
	}

	return nil
}

func (r *firestoreAdminRepository) List(ctx context.Context, limit, offset int) ([]*entity.Admin, int64, error) {
	query := r.client.Collection("admins").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count admins", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var admins []*entity.Admin

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate admins", err)
		}

		var admin entity.Admin
		if err := doc.DataTo(&admin); err != nil {
			return nil, 0, errors.Internal("Failed to parse admin data", err)
		}

		admins = append(admins, &admin)
	}

	return admins, total, nil
}

func (r *firestoreAdminRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("admins").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete admin", err)
	}
	return nil
}
