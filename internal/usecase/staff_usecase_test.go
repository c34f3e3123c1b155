package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadmin/internal/domain/entity"
	apperrors "marketadmin/pkg/errors"
)

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func newFakeAdminRepo(admins ...*entity.Admin) *fakeAdminRepo {
	repo := &fakeAdminRepo{admins: map[string]*entity.Admin{}}
	for _, admin := range admins {
		repo.admins[admin.ID] = admin
	}
	return repo
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, apperrors.NotFound("Admin", nil)
	}
	return admin, nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, apperrors.NotFound("Admin", nil)
}

func (r *fakeAdminRepo) Update(ctx context.Context, admin *entity.Admin) error {
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) List(ctx context.Context, limit, offset int) ([]*entity.Admin, int64, error) {
	var out []*entity.Admin
	for _, admin := range r.admins {
		out = append(out, admin)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAdminRepo) Delete(ctx context.Context, id string) error {
	delete(r.admins, id)
	return nil
}

type fakeAuthProvider struct {
	createdUID  string
	deletedUIDs []string
}

func (f *fakeAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return f.createdUID, nil
}

func (f *fakeAuthProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	return "", nil
}

func (f *fakeAuthProvider) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (f *fakeAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	f.deletedUIDs = append(f.deletedUIDs, uid)
	return nil
}

func (f *fakeAuthProvider) SignInWithPassword(ctx context.Context, email, password string) (string, string, error) {
	return "", "", nil
}

func TestCreateStaffNormalizesGrants(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := NewStaffUseCase(repo, &fakeAuthProvider{createdUID: "staff-1"})

	admin, err := uc.Create(context.Background(), CreateStaffInput{
		Email:       "staff@example.com",
		Password:    "secret-pass",
		FullName:    "Budi",
		Role:        entity.RoleStaff,
		RouteGrants: []string{" /orders ", "/orders/:id", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "staff-1", admin.ID)
	assert.Equal(t, "active", admin.Status)
	assert.Equal(t, []string{"/orders", "/orders/:id"}, admin.RouteGrants)
}

func TestCreateStaffRejectsBadInput(t *testing.T) {
	uc := NewStaffUseCase(newFakeAdminRepo(), &fakeAuthProvider{})

	_, err := uc.Create(context.Background(), CreateStaffInput{Role: "moderator"})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"), "unknown role")

	_, err = uc.Create(context.Background(), CreateStaffInput{
		Role:        entity.RoleStaff,
		RouteGrants: []string{"orders"},
	})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"), "grant without leading slash")

	_, err = uc.Create(context.Background(), CreateStaffInput{
		Role:        entity.RoleStaff,
		RouteGrants: []string{"/orders", "/orders"},
	})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"), "duplicate grant")
}

func TestCreateStaffRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo(&entity.Admin{ID: "existing", Email: "staff@example.com"})
	uc := NewStaffUseCase(repo, &fakeAuthProvider{})

	_, err := uc.Create(context.Background(), CreateStaffInput{
		Email: "staff@example.com",
		Role:  entity.RoleStaff,
	})
	assert.True(t, apperrors.Is(err, "CONFLICT"))
}

func TestUpdateGrantsRejectedForSuperAdmin(t *testing.T) {
	repo := newFakeAdminRepo(&entity.Admin{ID: "root-1", Role: entity.RoleSuperAdmin})
	uc := NewStaffUseCase(repo, &fakeAuthProvider{})

	_, err := uc.UpdateGrants(context.Background(), "root-1", []string{"/orders"})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestUpdateGrantsReplacesSet(t *testing.T) {
	repo := newFakeAdminRepo(&entity.Admin{
		ID:          "staff-1",
		Role:        entity.RoleStaff,
		RouteGrants: []string{"/orders"},
	})
	uc := NewStaffUseCase(repo, &fakeAuthProvider{})

	admin, err := uc.UpdateGrants(context.Background(), "staff-1", []string{"/users", "/users/:id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/users", "/users/:id"}, admin.RouteGrants)
}

func TestDeleteRemovesAuthAccount(t *testing.T) {
	repo := newFakeAdminRepo(&entity.Admin{ID: "staff-1", Role: entity.RoleStaff})
	auth := &fakeAuthProvider{}
	uc := NewStaffUseCase(repo, auth)

	require.NoError(t, uc.Delete(context.Background(), "staff-1"))
	assert.Equal(t, []string{"staff-1"}, auth.deletedUIDs)
	assert.Empty(t, repo.admins)
}
