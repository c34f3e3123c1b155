package usecase

import (
	"context"
	"strings"
	"time"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/logger"
)

// StaffUseCase manages admin accounts and their route grants.
type StaffUseCase struct {
	adminRepo repository.AdminRepository
	auth      AuthProvider
}

func NewStaffUseCase(adminRepo repository.AdminRepository, auth AuthProvider) *StaffUseCase {
	return &StaffUseCase{
		adminRepo: adminRepo,
		auth:      auth,
	}
}

type CreateStaffInput struct {
	Email       string
	Password    string
	FullName    string
	Role        string
	RouteGrants []string
}

func (uc *StaffUseCase) Create(ctx context.Context, input CreateStaffInput) (*entity.Admin, error) {
	if input.Role != entity.RoleSuperAdmin && input.Role != entity.RoleAdmin && input.Role != entity.RoleStaff {
		return nil, errors.BadRequest("Unknown role", nil)
	}

	grants, err := normalizeGrants(input.RouteGrants)
	if err != nil {
		return nil, err
	}

	existing, err := uc.adminRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use")
	}

	uid, err := uc.auth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to create account in authentication provider", err)
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:          uid,
		Email:       input.Email,
		FullName:    input.FullName,
		Role:        input.Role,
		Status:      "active",
		RouteGrants: grants,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Internal("Failed to create admin record", err)
	}

	logger.Info("Created staff account %s (%s)", admin.ID, admin.Role)
	return admin, nil
}

func (uc *StaffUseCase) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	return uc.adminRepo.GetByID(ctx, id)
}

func (uc *StaffUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Admin, int64, error) {
	return uc.adminRepo.List(ctx, limit, offset)
}

// UpdateGrants replaces a staff account's route grant set. Duplicates are
// rejected: the grant set is unique per principal.
func (uc *StaffUseCase) UpdateGrants(ctx context.Context, id string, routeGrants []string) (*entity.Admin, error) {
	admin, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if admin.Unrestricted() {
		return nil, errors.BadRequest("Super admin access is unconditional and carries no grant list", nil)
	}

	grants, err := normalizeGrants(routeGrants)
	if err != nil {
		return nil, err
	}

	admin.RouteGrants = grants
	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (uc *StaffUseCase) SetStatus(ctx context.Context, id, newStatus string) (*entity.Admin, error) {
	if newStatus != "active" && newStatus != "suspended" {
		return nil, errors.BadRequest("Status must be active or suspended", nil)
	}

	admin, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.Status = newStatus
	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (uc *StaffUseCase) Delete(ctx context.Context, id string) error {
	admin, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.auth.DeleteUser(ctx, admin.ID); err != nil {
		logger.Warn("Failed to delete auth account for %s: %v", admin.ID, err)
	}

	return uc.adminRepo.Delete(ctx, admin.ID)
}

func normalizeGrants(routeGrants []string) ([]string, error) {
	seen := make(map[string]bool, len(routeGrants))
	grants := make([]string, 0, len(routeGrants))
	for _, grant := range routeGrants {
		grant = strings.TrimSpace(grant)
		if grant == "" {
			continue
		}
		if !strings.HasPrefix(grant, "/") {
			return nil, errors.BadRequest("Route grants must start with /", nil)
		}
		if seen[grant] {
			return nil, errors.BadRequest("Duplicate route grant: "+grant, nil)
		}
		seen[grant] = true
		grants = append(grants, grant)
	}
	return grants, nil
}
