package usecase

import (
	"context"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/logger"
)

type AuthUseCase struct {
	adminRepo repository.AdminRepository
	auth      AuthProvider
}

func NewAuthUseCase(adminRepo repository.AdminRepository, auth AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		auth:      auth,
	}
}

type AuthResult struct {
	Admin *entity.Admin `json:"admin"`
	Token string        `json:"token"`
}

// Login exchanges operator credentials for a bearer token plus the
// principal record the client persists for session restore.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, uid, err := uc.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	admin, err := uc.adminRepo.GetByID(ctx, uid)
	if err != nil {
		// A valid identity without an admin record is not an operator.
		return nil, errors.Forbidden("Account is not an admin account", err)
	}

	if admin.Status != "active" {
		return nil, errors.Forbidden("Account is suspended", nil)
	}

	return &AuthResult{
		Admin: admin,
		Token: token,
	}, nil
}

// GetPrincipal resolves an authenticated account ID to its admin record.
func (uc *AuthUseCase) GetPrincipal(ctx context.Context, uid string) (*entity.Admin, error) {
	return uc.adminRepo.GetByID(ctx, uid)
}

func (uc *AuthUseCase) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.BadRequest("Password must be at least 8 characters", nil)
	}

	if err := uc.auth.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}
