package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	query := r.filteredQuery(filter)

	// Search needs a scan: Firestore has no substring queries, so the
	// filtered set is matched in memory before pagination is applied.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list users", err)
	}

	var matched []*entity.User
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}
		if filter.Search != "" && !matchesSearch(&user, filter.Search) {
			continue
		}
		matched = append(matched, &user)
	}

	total := int64(len(matched))

	if offset > len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

func (r *firestoreUserRepository) Count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	docs, err := r.filteredQuery(filter).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreUserRepository) filteredQuery(filter repository.UserFilter) firestore.Query {
	query := r.client.Collection("users").Query
	if filter.Role != "" {
		query = query.Where("role", "==", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	return query.OrderBy("createdAt", firestore.Desc)
}

func matchesSearch(user *entity.User, search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(user.Username), search) ||
		strings.Contains(strings.ToLower(user.Email), search) ||
		strings.Contains(strings.ToLower(user.StoreName), search)
}
